// Command reset-usage starts a new monthly quota period for every usage
// counter. It is intended to be invoked by an external cron job at the
// start of each month, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/trendcurator-backend/internal/adapter/metrics"
	"github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres"
	usagerepo "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres/usage"
	"github.com/heartmarshall/trendcurator-backend/internal/app"
	"github.com/heartmarshall/trendcurator-backend/internal/config"
	"github.com/heartmarshall/trendcurator-backend/internal/service/usage"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := usage.NewService(logger, usagerepo.New(pool), metrics.New(), cfg.Usage.MonthlyLimit)

	reset, err := svc.ResetAll(ctx)
	if err != nil {
		logger.Error("usage reset failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("usage reset completed", slog.Int64("reset", reset))
}

package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/trendcurator-backend/internal/adapter/metrics"
	"github.com/heartmarshall/trendcurator-backend/internal/transport/middleware"
)

// maxEnvelopeBytes bounds a voice platform request body.
const maxEnvelopeBytes = 1 << 20

func newRouter(logger *slog.Logger, deps *dependencies, collectors *metrics.Collectors) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/skill", middleware.MaxBody(maxEnvelopeBytes)(deps.skill))
	mux.HandleFunc("GET /live", deps.health.Live)
	mux.HandleFunc("GET /ready", deps.health.Ready)
	mux.HandleFunc("GET /health", deps.health.Health)
	mux.Handle("GET /metrics", collectors.Handler())

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)
}

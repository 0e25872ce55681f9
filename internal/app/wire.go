package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/trendcurator-backend/internal/adapter/llm"
	"github.com/heartmarshall/trendcurator-backend/internal/adapter/metrics"
	"github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres"
	accessrepo "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres/access"
	conversationrepo "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres/conversation"
	newsrepo "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres/news"
	topicrepo "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres/topic"
	trendrepo "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres/trend"
	usagerepo "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres/usage"
	"github.com/heartmarshall/trendcurator-backend/internal/adapter/scratch"
	"github.com/heartmarshall/trendcurator-backend/internal/config"
	"github.com/heartmarshall/trendcurator-backend/internal/service/access"
	"github.com/heartmarshall/trendcurator-backend/internal/service/article"
	"github.com/heartmarshall/trendcurator-backend/internal/service/conversation"
	"github.com/heartmarshall/trendcurator-backend/internal/service/grounding"
	"github.com/heartmarshall/trendcurator-backend/internal/service/topic"
	"github.com/heartmarshall/trendcurator-backend/internal/service/trend"
	"github.com/heartmarshall/trendcurator-backend/internal/service/usage"
	"github.com/heartmarshall/trendcurator-backend/internal/transport/rest"
	"github.com/heartmarshall/trendcurator-backend/internal/transport/skill"
)

// dependencies holds the wired handlers and the resources to release.
type dependencies struct {
	skill  *skill.Handler
	health *rest.HealthHandler
	close  func()
}

func wire(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	collectors *metrics.Collectors,
	gens generators,
) (*dependencies, error) {
	closers := []func(){}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// Repositories
	txm := postgres.NewTxManager(pool)
	topics := topicrepo.New(pool)
	histories := conversationrepo.New(pool)
	counters := usagerepo.New(pool)
	news := newsrepo.New(pool)
	trends := trendrepo.New(pool)
	accesses := accessrepo.New(pool)

	// Health
	components := []rest.Component{{
		Name:     "database",
		Check:    rest.CheckFunc(pool.Ping),
		Critical: true,
	}, {
		Name: "llm",
		Check: rest.CheckFunc(func(context.Context) error {
			if gens.state() == "open" {
				return errors.New("generation circuit open")
			}
			return nil
		}),
	}}

	// Session scratch
	scratchOpts := []scratch.Option{scratch.WithTTL(cfg.Session.TTL)}
	if scratch.Driver(cfg.Session.Driver) == scratch.DriverRedis {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		closers = append(closers, func() { _ = rdb.Close() })
		scratchOpts = append(scratchOpts, scratch.WithRedisClient(rdb))
		components = append(components, rest.Component{
			Name:  "session",
			Check: rest.CheckFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		})
	}
	store, err := scratch.NewStore(scratch.Driver(cfg.Session.Driver), scratchOpts...)
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("create session store: %w", err)
	}

	// Services
	usageSvc := usage.NewService(logger, counters, collectors, cfg.Usage.MonthlyLimit)
	historySvc := conversation.NewService(logger, histories, collectors)
	articleSvc := article.NewService(logger, news, cfg.Grounding.ArticleBodyLimit)
	topicSvc := topic.NewService(logger,
		topic.Config{
			Strict:    cfg.Grounding.StrictNormalization,
			CacheSize: cfg.Grounding.NormalizeCacheSize,
		},
		topics, news, histories, trends, usageSvc, gens.normalize, txm,
	)
	groundingSvc := grounding.NewService(logger,
		grounding.Config{
			HistoryTurns: cfg.Grounding.HistoryTurns,
			ArticleLimit: cfg.Grounding.ArticleLimit,
			AnswerLength: cfg.Grounding.AnswerLength,
		},
		usageSvc, historySvc, articleSvc, gens.answer,
	)
	trendSvc := trend.NewService(logger, trends)
	accessSvc := access.NewService(logger, accesses)

	return &dependencies{
		skill: skill.NewHandler(logger, cfg.Skill.ApplicationID,
			topicSvc, groundingSvc, trendSvc, articleSvc, accessSvc, store, collectors),
		health: rest.NewHealthHandler(BuildVersion(), components...),
		close:  closeAll,
	}, nil
}

// generators are the model clients used by the services. state reports the
// answer circuit state for health checks.
type generators struct {
	answer    llm.Generator
	normalize llm.Generator
	state     func() string
}

// newGenerators builds the answer chain and, when a separate normalizer
// model is configured, a second chain for it.
func newGenerators(cfg config.LLMConfig, logger *slog.Logger, collectors *metrics.Collectors) generators {
	answer, breaker := newGenerator(cfg, cfg.Model, logger, collectors)
	gens := generators{answer: answer, normalize: answer, state: breaker.State}
	if m := cfg.NormalizerModelOrDefault(); m != cfg.Model {
		gens.normalize, _ = newGenerator(cfg, m, logger, collectors)
	}
	return gens
}

// newGenerator builds provider -> circuit breaker -> metrics for model.
func newGenerator(
	cfg config.LLMConfig,
	model string,
	logger *slog.Logger,
	collectors *metrics.Collectors,
) (llm.Generator, *llm.BreakerGenerator) {
	var provider llm.Generator
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		provider = llm.NewOpenAIGenerator(cfg.APIKey, cfg.BaseURL, model, cfg.MaxTokens)
	default:
		provider = llm.NewAnthropicGenerator(cfg.APIKey, cfg.BaseURL, model, cfg.MaxTokens)
	}

	breaker := llm.NewBreakerGenerator(provider, llm.BreakerConfig{
		FailureThreshold: cfg.BreakerFailures,
		OpenTimeout:      cfg.BreakerOpenTimeout,
		HalfOpenRequests: cfg.BreakerHalfOpen,
	}, logger)

	return llm.NewInstrumentedGenerator(breaker, collectors), breaker
}

// Package grounding composes conversation history, recent articles and a
// question into a single generation request and records the exchange.
package grounding

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/trendcurator-backend/internal/adapter/llm"
	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

type usageTracker interface {
	Gate(ctx context.Context, userID string) (*domain.UsageCounter, error)
	Increment(ctx context.Context, userID string) (*domain.UsageCounter, error)
}

type historyStore interface {
	Recent(ctx context.Context, userID string, limit int) ([]domain.ConversationTurn, error)
	Append(ctx context.Context, userID string, turn domain.ConversationTurn) error
}

type articleProvider interface {
	RecentArticles(ctx context.Context, userID string, limit int) ([]domain.Article, error)
}

type generator interface {
	Generate(ctx context.Context, req llm.Request) (string, error)
}

// Config bounds the context fed into a generation request.
type Config struct {
	HistoryTurns int
	ArticleLimit int
	// AnswerLength is the approximate character budget of a spoken answer.
	AnswerLength int
}

// DefaultConfig returns the window sizes used in production.
func DefaultConfig() Config {
	return Config{
		HistoryTurns: domain.ReplayTurns,
		ArticleLimit: 5,
		AnswerLength: 200,
	}
}

// Service is the answer grounding engine.
type Service struct {
	usage    usageTracker
	history  historyStore
	articles articleProvider
	gen      generator
	cfg      Config
	log      *slog.Logger
}

// NewService creates a new grounding service.
func NewService(
	log *slog.Logger,
	cfg Config,
	usage usageTracker,
	history historyStore,
	articles articleProvider,
	gen generator,
) *Service {
	return &Service{
		usage:    usage,
		history:  history,
		articles: articles,
		gen:      gen,
		cfg:      cfg,
		log:      log.With("service", "grounding"),
	}
}

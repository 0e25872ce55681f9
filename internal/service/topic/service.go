// Package topic normalizes spoken topic phrases and manages the single topic
// a user follows.
package topic

import (
	"context"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/trendcurator-backend/internal/adapter/llm"
	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

type topicRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Topic, error)
	Replace(ctx context.Context, t domain.Topic) error
}

type newsRepo interface {
	Save(ctx context.Context, n domain.NewsContext) error
}

type historyRepo interface {
	Delete(ctx context.Context, userID string) error
}

type trendRepo interface {
	Delete(ctx context.Context, userID string) error
}

type usageTracker interface {
	Ensure(ctx context.Context, userID string) (*domain.UsageCounter, error)
	Gate(ctx context.Context, userID string) (*domain.UsageCounter, error)
	Increment(ctx context.Context, userID string) (*domain.UsageCounter, error)
}

type generator interface {
	Generate(ctx context.Context, req llm.Request) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config tunes normalization.
type Config struct {
	// Strict rejects incomplete normalizer output with
	// domain.ErrMalformedResponse instead of filling defaults.
	Strict bool
	// CacheSize bounds the normalization cache. Zero disables caching.
	CacheSize int
}

// Service provides topic normalization and follow operations.
type Service struct {
	topics  topicRepo
	news    newsRepo
	history historyRepo
	trends  trendRepo
	usage   usageTracker
	gen     generator
	tx      txManager
	cfg     Config
	cache   *lru.Cache[string, domain.NormalizedTopic]
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new topic service.
func NewService(
	log *slog.Logger,
	cfg Config,
	topics topicRepo,
	news newsRepo,
	history historyRepo,
	trends trendRepo,
	usage usageTracker,
	gen generator,
	tx txManager,
) *Service {
	s := &Service{
		topics:  topics,
		news:    news,
		history: history,
		trends:  trends,
		usage:   usage,
		gen:     gen,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
		log:     log.With("service", "topic"),
	}
	if cfg.CacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		s.cache, _ = lru.New[string, domain.NormalizedTopic](cfg.CacheSize)
	}
	return s
}

// GetTopic returns the user's followed topic, or domain.ErrNotFound.
func (s *Service) GetTopic(ctx context.Context, userID string) (*domain.Topic, error) {
	return s.topics.GetByUserID(ctx, userID)
}

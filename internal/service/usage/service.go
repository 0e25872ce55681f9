// Package usage enforces the monthly usage quota.
package usage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

type usageRepo interface {
	Get(ctx context.Context, userID string) (*domain.UsageCounter, error)
	Ensure(ctx context.Context, userID string, limit int, now time.Time) (*domain.UsageCounter, error)
	Increment(ctx context.Context, userID string) (*domain.UsageCounter, error)
	ResetAll(ctx context.Context, now time.Time) (int64, error)
}

type refusalRecorder interface {
	QuotaRefused()
}

// Service tracks per-user monthly usage.
type Service struct {
	repo    usageRepo
	metrics refusalRecorder
	limit   int
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new usage service. limit is the per-period quota.
func NewService(log *slog.Logger, repo usageRepo, metrics refusalRecorder, limit int) *Service {
	if limit <= 0 {
		limit = domain.MonthlyLimit
	}
	return &Service{
		repo:    repo,
		metrics: metrics,
		limit:   limit,
		now:     time.Now,
		log:     log.With("service", "usage"),
	}
}

// Get returns the user's counter, or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, userID string) (*domain.UsageCounter, error) {
	c, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get usage: %w", err)
	}
	return c, nil
}

// Ensure returns the user's counter, creating one with the full limit on first use.
func (s *Service) Ensure(ctx context.Context, userID string) (*domain.UsageCounter, error) {
	c, err := s.repo.Ensure(ctx, userID, s.limit, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("ensure usage: %w", err)
	}
	return c, nil
}

// Gate returns the user's counter if it still has balance. An exhausted
// counter yields domain.ErrQuotaExceeded; nothing is charged either way.
func (s *Service) Gate(ctx context.Context, userID string) (*domain.UsageCounter, error) {
	c, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.Exhausted() {
		s.refused(ctx, userID)
		return c, fmt.Errorf("gate usage: %w", domain.ErrQuotaExceeded)
	}
	return c, nil
}

// Increment charges one unit. A storage conflict is retried once; a second
// conflict yields domain.ErrGenerationFailed.
func (s *Service) Increment(ctx context.Context, userID string) (*domain.UsageCounter, error) {
	c, err := s.repo.Increment(ctx, userID)
	if errors.Is(err, domain.ErrConflict) {
		s.log.WarnContext(ctx, "usage increment conflict, retrying", slog.String("user_id", userID))
		c, err = s.repo.Increment(ctx, userID)
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("increment usage: %w: %w", domain.ErrGenerationFailed, err)
		}
	}
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			s.refused(ctx, userID)
		}
		return nil, fmt.Errorf("increment usage: %w", err)
	}
	return c, nil
}

// ResetAll starts a new quota period for every counter.
func (s *Service) ResetAll(ctx context.Context) (int64, error) {
	n, err := s.repo.ResetAll(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("reset usage: %w", err)
	}
	s.log.InfoContext(ctx, "usage counters reset", slog.Int64("count", n))
	return n, nil
}

func (s *Service) refused(ctx context.Context, userID string) {
	s.metrics.QuotaRefused()
	s.log.InfoContext(ctx, "quota exhausted", slog.String("user_id", userID))
}

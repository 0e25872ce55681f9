// Package access records when a user last entered the skill.
package access

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

type accessRepo interface {
	Touch(ctx context.Context, userID string, now time.Time) (*domain.AccessRecord, error)
}

// Service maintains the access audit trail.
type Service struct {
	repo accessRepo
	now  func() time.Time
	log  *slog.Logger
}

// NewService creates a new access service.
func NewService(log *slog.Logger, repo accessRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		log:  log.With("service", "access"),
	}
}

// Touch shifts last_accessed into previous_accessed and stamps now.
func (s *Service) Touch(ctx context.Context, userID string) error {
	rec, err := s.repo.Touch(ctx, userID, s.now().UTC())
	if err != nil {
		return fmt.Errorf("touch access: %w", err)
	}

	attrs := []any{slog.String("user_id", userID)}
	if rec.PreviousAccessed != nil {
		attrs = append(attrs, slog.Duration("since_previous", rec.LastAccessed.Sub(*rec.PreviousAccessed)))
	}
	s.log.DebugContext(ctx, "access recorded", attrs...)
	return nil
}

// Package conversation manages the bounded per-user dialogue history that
// grounds follow-up answers.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

type historyRepo interface {
	Get(ctx context.Context, userID string) (domain.ConversationHistory, error)
	Transact(ctx context.Context, userID string, fn func(domain.ConversationHistory) (domain.ConversationHistory, error)) (domain.ConversationHistory, error)
	Delete(ctx context.Context, userID string) error
}

type conflictRecorder interface {
	HistoryConflict()
}

// Service provides the conversation history store operations.
type Service struct {
	repo    historyRepo
	metrics conflictRecorder
	log     *slog.Logger
}

// NewService creates a new conversation service.
func NewService(log *slog.Logger, repo historyRepo, metrics conflictRecorder) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		log:     log.With("service", "conversation"),
	}
}

// Recent returns the last limit turns, oldest first. A user without history
// gets an empty slice.
func (s *Service) Recent(ctx context.Context, userID string, limit int) ([]domain.ConversationTurn, error) {
	h, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return h.Recent(limit), nil
}

// Append adds turn to the user's history, keeping the most recent
// domain.MaxHistoryTurns. A concurrent writer is tolerated once; losing the
// race twice yields domain.ErrGenerationFailed.
func (s *Service) Append(ctx context.Context, userID string, turn domain.ConversationTurn) error {
	appendTurn := func(h domain.ConversationHistory) (domain.ConversationHistory, error) {
		return h.Append(turn), nil
	}

	_, err := s.repo.Transact(ctx, userID, appendTurn)
	if errors.Is(err, domain.ErrConflict) {
		s.metrics.HistoryConflict()
		s.log.WarnContext(ctx, "history write conflict, retrying", slog.String("user_id", userID))
		_, err = s.repo.Transact(ctx, userID, appendTurn)
		if errors.Is(err, domain.ErrConflict) {
			s.metrics.HistoryConflict()
			return fmt.Errorf("append history: %w: %w", domain.ErrGenerationFailed, err)
		}
	}
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// Clear deletes the user's history so stale context cannot leak into the
// next news cycle.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	s.log.InfoContext(ctx, "history cleared", slog.String("user_id", userID))
	return nil
}

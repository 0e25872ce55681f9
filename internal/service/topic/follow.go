package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
	"github.com/heartmarshall/trendcurator-backend/internal/service/article"
)

// FollowResult is the outcome of a successful follow.
type FollowResult struct {
	Topic domain.Topic
	// RemainingUsage is the balance after the follow was charged.
	RemainingUsage int
}

// Follow replaces the user's topic with the normalization of in.RawTopic.
// It costs one usage unit, like a question. The previous topic, its news
// context, its trend and the conversation history are discarded in the same
// transaction that charges the unit.
func (s *Service) Follow(ctx context.Context, in FollowInput) (*FollowResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	loc, _ := domain.ParseLocale(in.Locale)
	raw := domain.NormalizeText(in.RawTopic)

	if _, err := s.usage.Ensure(ctx, in.UserID); err != nil {
		return nil, fmt.Errorf("follow: %w", err)
	}
	if _, err := s.usage.Gate(ctx, in.UserID); err != nil {
		return nil, fmt.Errorf("follow: %w", err)
	}

	normalized, err := s.Normalize(ctx, raw, loc.Region)
	if err != nil {
		return nil, fmt.Errorf("follow: %w", err)
	}

	now := s.now().UTC()
	t := domain.NewTopic(in.UserID, raw, normalized, loc, now)

	var remaining int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.topics.Replace(txCtx, t); err != nil {
			return fmt.Errorf("replace topic: %w", err)
		}
		if err := s.news.Save(txCtx, article.ResetContext(in.UserID, t.Topic, loc.Language, now)); err != nil {
			return fmt.Errorf("reset news context: %w", err)
		}
		if err := s.trends.Delete(txCtx, in.UserID); err != nil {
			return fmt.Errorf("delete trend: %w", err)
		}
		if err := s.history.Delete(txCtx, in.UserID); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		c, err := s.usage.Increment(txCtx, in.UserID)
		if err != nil {
			return fmt.Errorf("charge usage: %w", err)
		}
		remaining = c.RemainingUsage
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("follow: %w", err)
	}

	s.log.InfoContext(ctx, "topic followed",
		slog.String("user_id", in.UserID),
		slog.String("raw_topic", raw),
		slog.String("topic", t.Topic),
		slog.Bool("is_technical_term", t.IsTechnicalTerm),
		slog.Int("remaining_usage", remaining),
	)

	return &FollowResult{Topic: t, RemainingUsage: remaining}, nil
}

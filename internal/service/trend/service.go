// Package trend serves numbered trend digests for the followed topic.
package trend

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

type trendRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Trend, error)
}

// Service provides trend summary and detail reads.
type Service struct {
	trends trendRepo
	log    *slog.Logger
}

// NewService creates a new trend service.
func NewService(log *slog.Logger, trends trendRepo) *Service {
	return &Service{
		trends: trends,
		log:    log.With("service", "trend"),
	}
}

// Summary is the list of digest headlines offered to the user.
type Summary struct {
	Topic   string
	Digests []domain.TrendDigest
	// ValidIndexes are the indexes the user may ask details for.
	ValidIndexes []int
}

// Summary returns the user's trend digests ordered by index.
func (s *Service) Summary(ctx context.Context, userID string) (*Summary, error) {
	t, err := s.trends.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("trend summary: %w", err)
	}

	indexes := t.Indexes()
	digests := make([]domain.TrendDigest, 0, len(indexes))
	for _, i := range indexes {
		d, _ := t.Digest(i)
		digests = append(digests, d)
	}

	return &Summary{Topic: t.Topic, Digests: digests, ValidIndexes: indexes}, nil
}

// Detail is one digest body plus the indexes still unread.
type Detail struct {
	Digest    domain.TrendDigest
	Remaining []int
}

// Done reports whether every offered digest has been read.
func (d Detail) Done() bool {
	return len(d.Remaining) == 0
}

// Detail returns digest index if it is among valid. The returned Remaining
// is valid without index. An index outside valid, or one no longer present
// in the stored trend, yields a *domain.ValidationError.
func (s *Service) Detail(ctx context.Context, userID string, index int, valid []int) (*Detail, error) {
	if !slices.Contains(valid, index) {
		return nil, domain.NewValidationError("index", "not offered: "+strconv.Itoa(index))
	}

	t, err := s.trends.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("trend detail: %w", err)
	}

	d, ok := t.Digest(index)
	if !ok {
		s.log.WarnContext(ctx, "offered digest missing from trend",
			slog.String("user_id", userID), slog.Int("index", index))
		return nil, domain.NewValidationError("index", "not found: "+strconv.Itoa(index))
	}

	remaining := slices.DeleteFunc(slices.Clone(valid), func(i int) bool { return i == index })
	return &Detail{Digest: d, Remaining: remaining}, nil
}

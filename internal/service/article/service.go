// Package article supplies the article snippets that ground answers.
package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

type newsRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.NewsContext, error)
}

// Service reads the user's curated news context.
type Service struct {
	repo      newsRepo
	bodyLimit int
	log       *slog.Logger
}

// NewService creates a new article service. bodyLimit is the per-article
// character budget; non-positive values fall back to domain.ArticleBodyLimit.
func NewService(log *slog.Logger, repo newsRepo, bodyLimit int) *Service {
	if bodyLimit <= 0 {
		bodyLimit = domain.ArticleBodyLimit
	}
	return &Service{
		repo:      repo,
		bodyLimit: bodyLimit,
		log:       log.With("service", "article"),
	}
}

// RecentArticles returns up to limit articles in curation order, each with
// its body truncated to the character budget. A user without a news context
// gets an empty slice.
func (s *Service) RecentArticles(ctx context.Context, userID string, limit int) ([]domain.Article, error) {
	n, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.Article{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get news context: %w", err)
	}

	if limit < 0 {
		limit = 0
	}
	if limit > len(n.Articles) {
		limit = len(n.Articles)
	}
	out := make([]domain.Article, limit)
	for i := 0; i < limit; i++ {
		out[i] = n.Articles[i].Truncated(s.bodyLimit)
	}
	return out, nil
}

// Context returns the user's news context, or domain.ErrNotFound.
func (s *Service) Context(ctx context.Context, userID string) (*domain.NewsContext, error) {
	n, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get news context: %w", err)
	}
	return n, nil
}

// ResetContext returns the empty news context written when a user follows
// keyword. The curation pipeline fills in articles later.
func ResetContext(userID, keyword, languageCode string, now time.Time) domain.NewsContext {
	return domain.NewsContext{
		UserID:       userID,
		Keyword:      keyword,
		LanguageCode: languageCode,
		Articles:     []domain.Article{},
		UpdatedAt:    now,
	}
}

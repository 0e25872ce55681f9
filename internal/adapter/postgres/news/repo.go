// Package news implements the news context repository using PostgreSQL.
// Contexts are curated by an external pipeline; this service reads them and
// resets them when the user follows a new topic.
package news

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

const table = "news_contexts"

var columns = []string{"user_id", "keyword", "language_code", "introduction", "articles", "updated_at"}

// Repo provides news context persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new news repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// articleRow is the stored JSON shape of an article. Missing fields decode
// to empty strings.
type articleRow struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Body  string `json:"body"`
}

// GetByUserID returns the user's news context.
// Returns domain.ErrNotFound if none has been created.
func (r *Repo) GetByUserID(ctx context.Context, userID string) (*domain.NewsContext, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build news query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	n, err := scanNews(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "news", userID)
	}
	return &n, nil
}

// Save upserts the whole news context for n.UserID.
func (r *Repo) Save(ctx context.Context, n domain.NewsContext) error {
	articles, err := encodeArticles(n.Articles)
	if err != nil {
		return fmt.Errorf("news %s: %w", n.UserID, err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(n.UserID, n.Keyword, n.LanguageCode, n.Introduction, articles, n.UpdatedAt).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			keyword = EXCLUDED.keyword,
			language_code = EXCLUDED.language_code,
			introduction = EXCLUDED.introduction,
			articles = EXCLUDED.articles,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build news upsert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "news", n.UserID)
	}
	return nil
}

func scanNews(row pgx.Row) (domain.NewsContext, error) {
	var (
		n   domain.NewsContext
		raw []byte
	)
	if err := row.Scan(&n.UserID, &n.Keyword, &n.LanguageCode, &n.Introduction, &raw, &n.UpdatedAt); err != nil {
		return domain.NewsContext{}, fmt.Errorf("scan news: %w", err)
	}

	var rows []articleRow
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rows); err != nil {
			return domain.NewsContext{}, fmt.Errorf("decode articles: %w", err)
		}
	}
	n.Articles = make([]domain.Article, len(rows))
	for i, a := range rows {
		n.Articles[i] = domain.Article{Title: a.Title, URL: a.URL, Body: a.Body}
	}
	return n, nil
}

func encodeArticles(articles []domain.Article) ([]byte, error) {
	rows := make([]articleRow, len(articles))
	for i, a := range articles {
		rows[i] = articleRow{Title: a.Title, URL: a.URL, Body: a.Body}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode articles: %w", err)
	}
	return b, nil
}

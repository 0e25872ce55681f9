// Package trend implements the trend digest repository using PostgreSQL.
package trend

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

const table = "trends"

// Repo provides trend persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new trend repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type digestRow struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GetByUserID returns the user's latest trend digests.
// Returns domain.ErrNotFound if the pipeline has not produced any yet.
func (r *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Trend, error) {
	query, args, err := postgres.Builder().
		Select("user_id", "topic", "digests", "updated_at").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trend query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	t, err := scanTrend(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "trend", userID)
	}
	return &t, nil
}

// Delete removes the user's trend. Deleting a missing trend is not an error.
func (r *Repo) Delete(ctx context.Context, userID string) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build trend delete: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "trend", userID)
	}
	return nil
}

func scanTrend(row pgx.Row) (domain.Trend, error) {
	var (
		t   domain.Trend
		raw []byte
	)
	if err := row.Scan(&t.UserID, &t.Topic, &raw, &t.UpdatedAt); err != nil {
		return domain.Trend{}, fmt.Errorf("scan trend: %w", err)
	}

	var rows []digestRow
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rows); err != nil {
			return domain.Trend{}, fmt.Errorf("decode digests: %w", err)
		}
	}
	t.Digests = make([]domain.TrendDigest, len(rows))
	for i, d := range rows {
		idx := d.Index
		if idx == 0 {
			// Digests without an explicit index are numbered by position.
			idx = i + 1
		}
		t.Digests[i] = domain.TrendDigest{Index: idx, Title: d.Title, Body: d.Body}
	}
	return t, nil
}

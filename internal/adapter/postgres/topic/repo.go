// Package topic implements the followed-topic repository using PostgreSQL.
// A user follows at most one topic; following a new one replaces the row.
package topic

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const getByUserIDSQL = `
SELECT user_id, raw_topic, topic, reading, is_technical_term, language_code, region_code, created_at
FROM topics
WHERE user_id = $1`

const deleteSQL = `DELETE FROM topics WHERE user_id = $1`

const insertSQL = `
INSERT INTO topics (user_id, raw_topic, topic, reading, is_technical_term, language_code, region_code, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByUserID returns the user's followed topic.
// Returns domain.ErrNotFound if the user has not followed anything yet.
func (r *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(q.QueryRow(ctx, getByUserIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "topic", userID)
	}
	return &t, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Replace deletes the user's previous topic and writes t in its place.
// No fields are merged from the old row. Call inside a transaction so that
// readers never observe the gap between the two statements.
func (r *Repo) Replace(ctx context.Context, t domain.Topic) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteSQL, t.UserID); err != nil {
		return postgres.MapError(err, "topic", t.UserID)
	}

	_, err := q.Exec(ctx, insertSQL,
		t.UserID, t.RawTopic, t.Topic, t.Reading, t.IsTechnicalTerm,
		t.Locale.Language, t.Locale.Region, t.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "topic", t.UserID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanTopic(row pgx.Row) (domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(
		&t.UserID, &t.RawTopic, &t.Topic, &t.Reading, &t.IsTechnicalTerm,
		&t.Locale.Language, &t.Locale.Region, &t.CreatedAt,
	)
	if err != nil {
		return domain.Topic{}, fmt.Errorf("scan topic: %w", err)
	}
	return t, nil
}

// Package access implements the access audit repository using PostgreSQL.
package access

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

const table = "accesses"

// Repo provides access audit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new access repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Touch records an access at now, shifting the previous last_accessed into
// previous_accessed, and returns the updated record.
func (r *Repo) Touch(ctx context.Context, userID string, now time.Time) (*domain.AccessRecord, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "last_accessed", "previous_accessed").
		Values(userID, now, nil).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			previous_accessed = accesses.last_accessed,
			last_accessed = EXCLUDED.last_accessed
		RETURNING user_id, last_accessed, previous_accessed`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build access upsert: %w", err)
	}

	var a domain.AccessRecord
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, query, args...).Scan(&a.UserID, &a.LastAccessed, &a.PreviousAccessed); err != nil {
		return nil, postgres.MapError(err, "access", userID)
	}
	return &a, nil
}

// Package usage implements the monthly usage counter repository using PostgreSQL.
package usage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

// Repo provides usage counter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new usage repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const counterColumns = `user_id, monthly_usage, remaining_usage, monthly_limit, last_reset_date`

const getSQL = `
SELECT ` + counterColumns + `
FROM usage_counters
WHERE user_id = $1`

const createIfAbsentSQL = `
INSERT INTO usage_counters (` + counterColumns + `)
VALUES ($1, 0, $2, $2, $3)
ON CONFLICT (user_id) DO NOTHING`

// incrementSQL charges one unit only while balance remains. The row lock
// taken by UPDATE serializes concurrent charges for the same user.
const incrementSQL = `
UPDATE usage_counters
SET monthly_usage = monthly_usage + 1,
    remaining_usage = remaining_usage - 1
WHERE user_id = $1 AND remaining_usage > 0
RETURNING ` + counterColumns

const resetAllSQL = `
UPDATE usage_counters
SET monthly_usage = 0,
    remaining_usage = monthly_limit,
    last_reset_date = $1
WHERE last_reset_date < $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the user's counter.
// Returns domain.ErrNotFound if no counter exists.
func (r *Repo) Get(ctx context.Context, userID string) (*domain.UsageCounter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCounter(q.QueryRow(ctx, getSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "usage", userID)
	}
	return &c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Ensure creates a counter with the full limit if the user has none, and
// returns the stored counter either way. Existing balances are never touched.
func (r *Repo) Ensure(ctx context.Context, userID string, limit int, now time.Time) (*domain.UsageCounter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, createIfAbsentSQL, userID, limit, now); err != nil {
		return nil, postgres.MapError(err, "usage", userID)
	}
	return r.Get(ctx, userID)
}

// Increment atomically charges one usage unit and returns the updated counter.
// Returns domain.ErrQuotaExceeded (leaving the row untouched) when the balance
// is already zero, and domain.ErrNotFound when the user has no counter.
func (r *Repo) Increment(ctx context.Context, userID string) (*domain.UsageCounter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCounter(q.QueryRow(ctx, incrementSQL, userID))
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "usage", userID)
	}

	// No row updated: either missing or exhausted.
	if _, getErr := r.Get(ctx, userID); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("usage %s: %w", userID, domain.ErrQuotaExceeded)
}

// ResetAll starts a new quota period for every counter last reset before now.
// It returns the number of counters reset.
func (r *Repo) ResetAll(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, resetAllSQL, now)
	if err != nil {
		return 0, fmt.Errorf("reset usage counters: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanCounter(row pgx.Row) (domain.UsageCounter, error) {
	var c domain.UsageCounter
	err := row.Scan(&c.UserID, &c.MonthlyUsage, &c.RemainingUsage, &c.MonthlyLimit, &c.LastResetDate)
	if err != nil {
		return domain.UsageCounter{}, fmt.Errorf("scan usage counter: %w", err)
	}
	return c, nil
}

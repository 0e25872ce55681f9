// Package conversation implements the per-user conversation history store
// using PostgreSQL. History is a JSONB array guarded by an optimistic version.
package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/trendcurator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

// Repo provides conversation history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// New creates a new conversation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, now: time.Now}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const getSQL = `
SELECT history, version, updated_at
FROM conversations
WHERE user_id = $1`

const insertIfAbsentSQL = `
INSERT INTO conversations (user_id, history, version, updated_at)
VALUES ($1, $2, nextval('conversation_version_seq'), $3)
ON CONFLICT (user_id) DO NOTHING
RETURNING version`

const updateIfVersionSQL = `
UPDATE conversations
SET history = $2, version = nextval('conversation_version_seq'), updated_at = $3
WHERE user_id = $1 AND version = $4
RETURNING version`

const deleteSQL = `DELETE FROM conversations WHERE user_id = $1`

// turnRow is the stored JSON shape of a turn.
type turnRow struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the user's history. A user without a stored history gets an
// empty history at version 0; this never returns domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID string) (domain.ConversationHistory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		raw []byte
		h   = domain.ConversationHistory{UserID: userID}
	)
	err := q.QueryRow(ctx, getSQL, userID).Scan(&raw, &h.Version, &h.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		h.Turns = []domain.ConversationTurn{}
		return h, nil
	}
	if err != nil {
		return domain.ConversationHistory{}, postgres.MapError(err, "conversation", userID)
	}

	turns, err := decodeTurns(raw)
	if err != nil {
		return domain.ConversationHistory{}, fmt.Errorf("conversation %s: %w", userID, err)
	}
	h.Turns = turns
	return h, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Transact reads the current history, applies fn and writes the result back
// only if no other writer committed in between. The written history is
// truncated to domain.MaxHistoryTurns. A lost race returns domain.ErrConflict
// and leaves the stored history untouched; callers retry with a fresh read.
func (r *Repo) Transact(
	ctx context.Context,
	userID string,
	fn func(domain.ConversationHistory) (domain.ConversationHistory, error),
) (domain.ConversationHistory, error) {
	cur, err := r.Get(ctx, userID)
	if err != nil {
		return domain.ConversationHistory{}, err
	}

	next, err := fn(cur)
	if err != nil {
		return domain.ConversationHistory{}, err
	}
	next.UserID = userID
	next.Turns = domain.TruncateTurns(next.Turns, domain.MaxHistoryTurns)
	next.UpdatedAt = r.now().UTC()

	payload, err := encodeTurns(next.Turns)
	if err != nil {
		return domain.ConversationHistory{}, fmt.Errorf("conversation %s: %w", userID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var row pgx.Row
	if cur.Version == 0 {
		row = q.QueryRow(ctx, insertIfAbsentSQL, userID, payload, next.UpdatedAt)
	} else {
		row = q.QueryRow(ctx, updateIfVersionSQL, userID, payload, next.UpdatedAt, cur.Version)
	}

	if err := row.Scan(&next.Version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ConversationHistory{}, fmt.Errorf("conversation %s: %w", userID, domain.ErrConflict)
		}
		return domain.ConversationHistory{}, postgres.MapError(err, "conversation", userID)
	}
	return next, nil
}

// Delete removes the user's history record. Deleting a missing record is not an error.
func (r *Repo) Delete(ctx context.Context, userID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteSQL, userID); err != nil {
		return postgres.MapError(err, "conversation", userID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

func decodeTurns(raw []byte) ([]domain.ConversationTurn, error) {
	var rows []turnRow
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
	}
	turns := make([]domain.ConversationTurn, len(rows))
	for i, r := range rows {
		turns[i] = domain.ConversationTurn{Question: r.Question, Answer: r.Answer}
	}
	return turns, nil
}

func encodeTurns(turns []domain.ConversationTurn) ([]byte, error) {
	rows := make([]turnRow, len(turns))
	for i, t := range turns {
		rows[i] = turnRow{Question: t.Question, Answer: t.Answer}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	return b, nil
}

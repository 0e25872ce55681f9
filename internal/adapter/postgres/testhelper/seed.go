package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

// UserID returns a unique platform-style user id for non-conflicting test data.
func UserID() string {
	return "amzn1.ask.account." + uuid.New().String()
}

// SeedUsage inserts a usage counter with the given remaining balance
// (out of domain.MonthlyLimit).
func SeedUsage(t *testing.T, pool *pgxpool.Pool, userID string, remaining int) domain.UsageCounter {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.UsageCounter{
		UserID:         userID,
		MonthlyUsage:   domain.MonthlyLimit - remaining,
		RemainingUsage: remaining,
		MonthlyLimit:   domain.MonthlyLimit,
		LastResetDate:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO usage_counters (user_id, monthly_usage, remaining_usage, monthly_limit, last_reset_date)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.UserID, c.MonthlyUsage, c.RemainingUsage, c.MonthlyLimit, c.LastResetDate,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUsage: %v", err)
	}
	return c
}

// SeedNews inserts a news context with the given articles.
func SeedNews(t *testing.T, pool *pgxpool.Pool, userID, keyword string, articlesJSON string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO news_contexts (user_id, keyword, language_code, introduction, articles, updated_at)
		 VALUES ($1, $2, 'ja', '', $3::jsonb, now())`,
		userID, keyword, articlesJSON,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNews: %v", err)
	}
}

// SeedTrend inserts a trend with the given digests.
func SeedTrend(t *testing.T, pool *pgxpool.Pool, userID, topic string, digestsJSON string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO trends (user_id, topic, digests, updated_at) VALUES ($1, $2, $3::jsonb, now())`,
		userID, topic, digestsJSON,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrend: %v", err)
	}
}

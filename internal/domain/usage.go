package domain

import "time"

// MonthlyLimit is the number of grounded interactions allowed per quota period.
const MonthlyLimit = 100

// UsageCounter tracks a user's consumption within the current quota period.
// RemainingUsage = MonthlyLimit - MonthlyUsage and never goes below zero.
type UsageCounter struct {
	UserID         string
	MonthlyUsage   int
	RemainingUsage int
	MonthlyLimit   int
	LastResetDate  time.Time
}

// NewUsageCounter returns a fresh counter with the full limit available.
func NewUsageCounter(userID string, limit int, now time.Time) UsageCounter {
	return UsageCounter{
		UserID:         userID,
		MonthlyUsage:   0,
		RemainingUsage: limit,
		MonthlyLimit:   limit,
		LastResetDate:  now,
	}
}

// Exhausted reports whether grounding must be refused.
func (u UsageCounter) Exhausted() bool {
	return u.RemainingUsage <= 0
}

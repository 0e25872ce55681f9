package domain

import "time"

// AccessRecord is an audit trail of a user's entry points.
type AccessRecord struct {
	UserID           string
	LastAccessed     time.Time
	PreviousAccessed *time.Time
}

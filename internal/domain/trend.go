package domain

import (
	"slices"
	"time"
)

// TrendDigest is one numbered headline of a trend report.
type TrendDigest struct {
	Index int
	Title string
	Body  string
}

// Trend is a curated digest list for the user's topic.
type Trend struct {
	UserID    string
	Topic     string
	Digests   []TrendDigest
	UpdatedAt time.Time
}

// Indexes returns the digest indexes in ascending order.
func (t Trend) Indexes() []int {
	idx := make([]int, 0, len(t.Digests))
	for _, d := range t.Digests {
		idx = append(idx, d.Index)
	}
	slices.Sort(idx)
	return idx
}

// Digest looks up a digest by its index.
func (t Trend) Digest(index int) (TrendDigest, bool) {
	for _, d := range t.Digests {
		if d.Index == index {
			return d, true
		}
	}
	return TrendDigest{}, false
}

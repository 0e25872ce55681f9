package domain

import "time"

const (
	// MaxHistoryTurns is the number of turns kept in a stored history.
	MaxHistoryTurns = 10
	// ReplayTurns is the number of most recent turns replayed into a prompt.
	ReplayTurns = 5
)

// ConversationTurn is one question/answer exchange. Immutable once appended.
type ConversationTurn struct {
	Question string
	Answer   string
}

// ConversationHistory is a user's bounded dialogue log, newest last.
// Version is bumped on every successful write and drives optimistic updates.
type ConversationHistory struct {
	UserID    string
	Turns     []ConversationTurn
	Version   int64
	UpdatedAt time.Time
}

// Append returns a copy of h with turn added and the oldest turns dropped
// so that at most MaxHistoryTurns remain.
func (h ConversationHistory) Append(turn ConversationTurn) ConversationHistory {
	turns := make([]ConversationTurn, 0, len(h.Turns)+1)
	turns = append(turns, h.Turns...)
	turns = append(turns, turn)
	h.Turns = TruncateTurns(turns, MaxHistoryTurns)
	return h
}

// Recent returns the last limit turns, oldest first. A non-positive limit
// yields an empty slice.
func (h ConversationHistory) Recent(limit int) []ConversationTurn {
	return TruncateTurns(h.Turns, limit)
}

// TruncateTurns keeps the last limit turns of turns. The result never
// aliases the input.
func TruncateTurns(turns []ConversationTurn, limit int) []ConversationTurn {
	if limit <= 0 {
		return []ConversationTurn{}
	}
	start := 0
	if len(turns) > limit {
		start = len(turns) - limit
	}
	out := make([]ConversationTurn, len(turns)-start)
	copy(out, turns[start:])
	return out
}

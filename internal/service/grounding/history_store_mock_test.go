package grounding

import (
	"context"
	"sync"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

var _ historyStore = &historyStoreMock{}

type historyStoreMock struct {
	AppendFunc func(ctx context.Context, userID string, turn domain.ConversationTurn) error
	RecentFunc func(ctx context.Context, userID string, limit int) ([]domain.ConversationTurn, error)

	calls struct {
		Append []struct {
			Ctx    context.Context
			UserID string
			Turn   domain.ConversationTurn
		}
		Recent []struct {
			Ctx    context.Context
			UserID string
			Limit  int
		}
	}
	lockAppend sync.RWMutex
	lockRecent sync.RWMutex
}

func (mock *historyStoreMock) Append(ctx context.Context, userID string, turn domain.ConversationTurn) error {
	if mock.AppendFunc == nil {
		panic("historyStoreMock.AppendFunc: method is nil but historyStore.Append was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Turn   domain.ConversationTurn
	}{
		Ctx:    ctx,
		UserID: userID,
		Turn:   turn,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, userID, turn)
}

func (mock *historyStoreMock) AppendCalls() []struct {
	Ctx    context.Context
	UserID string
	Turn   domain.ConversationTurn
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *historyStoreMock) Recent(ctx context.Context, userID string, limit int) ([]domain.ConversationTurn, error) {
	if mock.RecentFunc == nil {
		panic("historyStoreMock.RecentFunc: method is nil but historyStore.Recent was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Limit  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
	}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, userID, limit)
}

func (mock *historyStoreMock) RecentCalls() []struct {
	Ctx    context.Context
	UserID string
	Limit  int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}

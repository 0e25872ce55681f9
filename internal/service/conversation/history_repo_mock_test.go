package conversation

import (
	"context"
	"sync"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	DeleteFunc   func(ctx context.Context, userID string) error
	GetFunc      func(ctx context.Context, userID string) (domain.ConversationHistory, error)
	TransactFunc func(ctx context.Context, userID string, fn func(domain.ConversationHistory) (domain.ConversationHistory, error)) (domain.ConversationHistory, error)

	calls struct {
		Delete []struct {
			Ctx    context.Context
			UserID string
		}
		Get []struct {
			Ctx    context.Context
			UserID string
		}
		Transact []struct {
			Ctx    context.Context
			UserID string
			Fn     func(domain.ConversationHistory) (domain.ConversationHistory, error)
		}
	}
	lockDelete   sync.RWMutex
	lockGet      sync.RWMutex
	lockTransact sync.RWMutex
}

func (mock *historyRepoMock) Delete(ctx context.Context, userID string) error {
	if mock.DeleteFunc == nil {
		panic("historyRepoMock.DeleteFunc: method is nil but historyRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID)
}

func (mock *historyRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *historyRepoMock) Get(ctx context.Context, userID string) (domain.ConversationHistory, error) {
	if mock.GetFunc == nil {
		panic("historyRepoMock.GetFunc: method is nil but historyRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *historyRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *historyRepoMock) Transact(ctx context.Context, userID string, fn func(domain.ConversationHistory) (domain.ConversationHistory, error)) (domain.ConversationHistory, error) {
	if mock.TransactFunc == nil {
		panic("historyRepoMock.TransactFunc: method is nil but historyRepo.Transact was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Fn     func(domain.ConversationHistory) (domain.ConversationHistory, error)
	}{
		Ctx:    ctx,
		UserID: userID,
		Fn:     fn,
	}
	mock.lockTransact.Lock()
	mock.calls.Transact = append(mock.calls.Transact, callInfo)
	mock.lockTransact.Unlock()
	return mock.TransactFunc(ctx, userID, fn)
}

func (mock *historyRepoMock) TransactCalls() []struct {
	Ctx    context.Context
	UserID string
	Fn     func(domain.ConversationHistory) (domain.ConversationHistory, error)
} {
	mock.lockTransact.RLock()
	calls := mock.calls.Transact
	mock.lockTransact.RUnlock()
	return calls
}

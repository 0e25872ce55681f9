package topic

import (
	"context"
	"sync"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	DeleteFunc func(ctx context.Context, userID string) error

	calls struct {
		Delete []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockDelete sync.RWMutex
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

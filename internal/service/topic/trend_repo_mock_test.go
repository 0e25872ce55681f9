package topic

import (
	"context"
	"sync"
)

var _ trendRepo = &trendRepoMock{}

type trendRepoMock struct {
	DeleteFunc func(ctx context.Context, userID string) error

	calls struct {
		Delete []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockDelete sync.RWMutex
}

func (mock *trendRepoMock) Delete(ctx context.Context, userID string) error {
	if mock.DeleteFunc == nil {
		panic("trendRepoMock.DeleteFunc: method is nil but trendRepo.Delete was just called")
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

func (mock *trendRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

package access

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

var _ accessRepo = &accessRepoMock{}

type accessRepoMock struct {
	TouchFunc func(ctx context.Context, userID string, now time.Time) (*domain.AccessRecord, error)

	calls struct {
		Touch []struct {
			Ctx    context.Context
			UserID string
			Now    time.Time
		}
	}
	lockTouch sync.RWMutex
}

func (mock *accessRepoMock) Touch(ctx context.Context, userID string, now time.Time) (*domain.AccessRecord, error) {
	if mock.TouchFunc == nil {
		panic("accessRepoMock.TouchFunc: method is nil but accessRepo.Touch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Now    time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		Now:    now,
	}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, userID, now)
}

func (mock *accessRepoMock) TouchCalls() []struct {
	Ctx    context.Context
	UserID string
	Now    time.Time
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}

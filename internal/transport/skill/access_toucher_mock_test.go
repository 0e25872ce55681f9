package skill

import (
	"context"
	"sync"
)

var _ accessToucher = &accessToucherMock{}

type accessToucherMock struct {
	TouchFunc func(ctx context.Context, userID string) error

	calls struct {
		Touch []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockTouch sync.RWMutex
}

func (mock *accessToucherMock) Touch(ctx context.Context, userID string) error {
	if mock.TouchFunc == nil {
		panic("accessToucherMock.TouchFunc: method is nil but accessToucher.Touch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, userID)
}

func (mock *accessToucherMock) TouchCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}

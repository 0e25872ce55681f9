package usage

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

var _ usageRepo = &usageRepoMock{}

type usageRepoMock struct {
	EnsureFunc    func(ctx context.Context, userID string, limit int, now time.Time) (*domain.UsageCounter, error)
	GetFunc       func(ctx context.Context, userID string) (*domain.UsageCounter, error)
	IncrementFunc func(ctx context.Context, userID string) (*domain.UsageCounter, error)
	ResetAllFunc  func(ctx context.Context, now time.Time) (int64, error)

	calls struct {
		Ensure []struct {
			Ctx    context.Context
			UserID string
			Limit  int
			Now    time.Time
		}
		Get []struct {
			Ctx    context.Context
			UserID string
		}
		Increment []struct {
			Ctx    context.Context
			UserID string
		}
		ResetAll []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockEnsure    sync.RWMutex
	lockGet       sync.RWMutex
	lockIncrement sync.RWMutex
	lockResetAll  sync.RWMutex
}

func (mock *usageRepoMock) Ensure(ctx context.Context, userID string, limit int, now time.Time) (*domain.UsageCounter, error) {
	if mock.EnsureFunc == nil {
		panic("usageRepoMock.EnsureFunc: method is nil but usageRepo.Ensure was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Limit  int
		Now    time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
		Now:    now,
	}
	mock.lockEnsure.Lock()
	mock.calls.Ensure = append(mock.calls.Ensure, callInfo)
	mock.lockEnsure.Unlock()
	return mock.EnsureFunc(ctx, userID, limit, now)
}

func (mock *usageRepoMock) EnsureCalls() []struct {
	Ctx    context.Context
	UserID string
	Limit  int
	Now    time.Time
} {
	mock.lockEnsure.RLock()
	calls := mock.calls.Ensure
	mock.lockEnsure.RUnlock()
	return calls
}

func (mock *usageRepoMock) Get(ctx context.Context, userID string) (*domain.UsageCounter, error) {
	if mock.GetFunc == nil {
		panic("usageRepoMock.GetFunc: method is nil but usageRepo.Get was just called")
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

func (mock *usageRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *usageRepoMock) Increment(ctx context.Context, userID string) (*domain.UsageCounter, error) {
	if mock.IncrementFunc == nil {
		panic("usageRepoMock.IncrementFunc: method is nil but usageRepo.Increment was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockIncrement.Lock()
	mock.calls.Increment = append(mock.calls.Increment, callInfo)
	mock.lockIncrement.Unlock()
	return mock.IncrementFunc(ctx, userID)
}

func (mock *usageRepoMock) IncrementCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockIncrement.RLock()
	calls := mock.calls.Increment
	mock.lockIncrement.RUnlock()
	return calls
}

func (mock *usageRepoMock) ResetAll(ctx context.Context, now time.Time) (int64, error) {
	if mock.ResetAllFunc == nil {
		panic("usageRepoMock.ResetAllFunc: method is nil but usageRepo.ResetAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{
		Ctx: ctx,
		Now: now,
	}
	mock.lockResetAll.Lock()
	mock.calls.ResetAll = append(mock.calls.ResetAll, callInfo)
	mock.lockResetAll.Unlock()
	return mock.ResetAllFunc(ctx, now)
}

func (mock *usageRepoMock) ResetAllCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockResetAll.RLock()
	calls := mock.calls.ResetAll
	mock.lockResetAll.RUnlock()
	return calls
}

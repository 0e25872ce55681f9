package grounding

import (
	"context"
	"sync"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

var _ usageTracker = &usageTrackerMock{}

type usageTrackerMock struct {
	GateFunc      func(ctx context.Context, userID string) (*domain.UsageCounter, error)
	IncrementFunc func(ctx context.Context, userID string) (*domain.UsageCounter, error)

	calls struct {
		Gate []struct {
			Ctx    context.Context
			UserID string
		}
		Increment []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockGate      sync.RWMutex
	lockIncrement sync.RWMutex
}

func (mock *usageTrackerMock) Gate(ctx context.Context, userID string) (*domain.UsageCounter, error) {
	if mock.GateFunc == nil {
		panic("usageTrackerMock.GateFunc: method is nil but usageTracker.Gate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGate.Lock()
	mock.calls.Gate = append(mock.calls.Gate, callInfo)
	mock.lockGate.Unlock()
	return mock.GateFunc(ctx, userID)
}

func (mock *usageTrackerMock) GateCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGate.RLock()
	calls := mock.calls.Gate
	mock.lockGate.RUnlock()
	return calls
}

func (mock *usageTrackerMock) Increment(ctx context.Context, userID string) (*domain.UsageCounter, error) {
	if mock.IncrementFunc == nil {
		panic("usageTrackerMock.IncrementFunc: method is nil but usageTracker.Increment was just called")
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

func (mock *usageTrackerMock) IncrementCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockIncrement.RLock()
	calls := mock.calls.Increment
	mock.lockIncrement.RUnlock()
	return calls
}

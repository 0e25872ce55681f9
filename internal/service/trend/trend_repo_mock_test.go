package trend

import (
	"context"
	"sync"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

var _ trendRepo = &trendRepoMock{}

type trendRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID string) (*domain.Trend, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockGetByUserID sync.RWMutex
}

func (mock *trendRepoMock) GetByUserID(ctx context.Context, userID string) (*domain.Trend, error) {
	if mock.GetByUserIDFunc == nil {
		panic("trendRepoMock.GetByUserIDFunc: method is nil but trendRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *trendRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

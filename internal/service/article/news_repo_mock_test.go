package article

import (
	"context"
	"sync"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

var _ newsRepo = &newsRepoMock{}

type newsRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID string) (*domain.NewsContext, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockGetByUserID sync.RWMutex
}

func (mock *newsRepoMock) GetByUserID(ctx context.Context, userID string) (*domain.NewsContext, error) {
	if mock.GetByUserIDFunc == nil {
		panic("newsRepoMock.GetByUserIDFunc: method is nil but newsRepo.GetByUserID was just called")
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

func (mock *newsRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

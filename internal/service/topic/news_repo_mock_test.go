package topic

import (
	"context"
	"sync"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

var _ newsRepo = &newsRepoMock{}

type newsRepoMock struct {
	SaveFunc func(ctx context.Context, n domain.NewsContext) error

	calls struct {
		Save []struct {
			Ctx context.Context
			N   domain.NewsContext
		}
	}
	lockSave sync.RWMutex
}

func (mock *newsRepoMock) Save(ctx context.Context, n domain.NewsContext) error {
	if mock.SaveFunc == nil {
		panic("newsRepoMock.SaveFunc: method is nil but newsRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.NewsContext
	}{
		Ctx: ctx,
		N:   n,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, n)
}

func (mock *newsRepoMock) SaveCalls() []struct {
	Ctx context.Context
	N   domain.NewsContext
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

package skill

import (
	"context"
	"sync"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

var _ newsReader = &newsReaderMock{}

type newsReaderMock struct {
	ContextFunc func(ctx context.Context, userID string) (*domain.NewsContext, error)

	calls struct {
		Context []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockContext sync.RWMutex
}

func (mock *newsReaderMock) Context(ctx context.Context, userID string) (*domain.NewsContext, error) {
	if mock.ContextFunc == nil {
		panic("newsReaderMock.ContextFunc: method is nil but newsReader.Context was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockContext.Lock()
	mock.calls.Context = append(mock.calls.Context, callInfo)
	mock.lockContext.Unlock()
	return mock.ContextFunc(ctx, userID)
}

func (mock *newsReaderMock) ContextCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockContext.RLock()
	calls := mock.calls.Context
	mock.lockContext.RUnlock()
	return calls
}

package topic

import (
	"context"
	"sync"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID string) (*domain.Topic, error)
	ReplaceFunc     func(ctx context.Context, t domain.Topic) error

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID string
		}
		Replace []struct {
			Ctx context.Context
			T   domain.Topic
		}
	}
	lockGetByUserID sync.RWMutex
	lockReplace     sync.RWMutex
}

func (mock *topicRepoMock) GetByUserID(ctx context.Context, userID string) (*domain.Topic, error) {
	if mock.GetByUserIDFunc == nil {
		panic("topicRepoMock.GetByUserIDFunc: method is nil but topicRepo.GetByUserID was just called")
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

func (mock *topicRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *topicRepoMock) Replace(ctx context.Context, t domain.Topic) error {
	if mock.ReplaceFunc == nil {
		panic("topicRepoMock.ReplaceFunc: method is nil but topicRepo.Replace was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Topic
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, t)
}

func (mock *topicRepoMock) ReplaceCalls() []struct {
	Ctx context.Context
	T   domain.Topic
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}

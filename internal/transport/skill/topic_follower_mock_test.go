package skill

import (
	"context"
	"sync"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
	"github.com/heartmarshall/trendcurator-backend/internal/service/topic"
)

var _ topicFollower = &topicFollowerMock{}

type topicFollowerMock struct {
	FollowFunc   func(ctx context.Context, in topic.FollowInput) (*topic.FollowResult, error)
	GetTopicFunc func(ctx context.Context, userID string) (*domain.Topic, error)

	calls struct {
		Follow []struct {
			Ctx context.Context
			In  topic.FollowInput
		}
		GetTopic []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockFollow   sync.RWMutex
	lockGetTopic sync.RWMutex
}

func (mock *topicFollowerMock) Follow(ctx context.Context, in topic.FollowInput) (*topic.FollowResult, error) {
	if mock.FollowFunc == nil {
		panic("topicFollowerMock.FollowFunc: method is nil but topicFollower.Follow was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  topic.FollowInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockFollow.Lock()
	mock.calls.Follow = append(mock.calls.Follow, callInfo)
	mock.lockFollow.Unlock()
	return mock.FollowFunc(ctx, in)
}

func (mock *topicFollowerMock) FollowCalls() []struct {
	Ctx context.Context
	In  topic.FollowInput
} {
	mock.lockFollow.RLock()
	calls := mock.calls.Follow
	mock.lockFollow.RUnlock()
	return calls
}

func (mock *topicFollowerMock) GetTopic(ctx context.Context, userID string) (*domain.Topic, error) {
	if mock.GetTopicFunc == nil {
		panic("topicFollowerMock.GetTopicFunc: method is nil but topicFollower.GetTopic was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetTopic.Lock()
	mock.calls.GetTopic = append(mock.calls.GetTopic, callInfo)
	mock.lockGetTopic.Unlock()
	return mock.GetTopicFunc(ctx, userID)
}

func (mock *topicFollowerMock) GetTopicCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetTopic.RLock()
	calls := mock.calls.GetTopic
	mock.lockGetTopic.RUnlock()
	return calls
}

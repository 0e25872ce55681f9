package skill

import (
	"context"
	"sync"

	"github.com/heartmarshall/trendcurator-backend/internal/service/grounding"
)

var _ answerer = &answererMock{}

type answererMock struct {
	AnswerFunc func(ctx context.Context, in grounding.AnswerInput) (*grounding.Answer, error)

	calls struct {
		Answer []struct {
			Ctx context.Context
			In  grounding.AnswerInput
		}
	}
	lockAnswer sync.RWMutex
}

func (mock *answererMock) Answer(ctx context.Context, in grounding.AnswerInput) (*grounding.Answer, error) {
	if mock.AnswerFunc == nil {
		panic("answererMock.AnswerFunc: method is nil but answerer.Answer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  grounding.AnswerInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockAnswer.Lock()
	mock.calls.Answer = append(mock.calls.Answer, callInfo)
	mock.lockAnswer.Unlock()
	return mock.AnswerFunc(ctx, in)
}

func (mock *answererMock) AnswerCalls() []struct {
	Ctx context.Context
	In  grounding.AnswerInput
} {
	mock.lockAnswer.RLock()
	calls := mock.calls.Answer
	mock.lockAnswer.RUnlock()
	return calls
}

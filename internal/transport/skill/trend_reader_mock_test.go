package skill

import (
	"context"
	"sync"

	"github.com/heartmarshall/trendcurator-backend/internal/service/trend"
)

var _ trendReader = &trendReaderMock{}

type trendReaderMock struct {
	DetailFunc  func(ctx context.Context, userID string, index int, valid []int) (*trend.Detail, error)
	SummaryFunc func(ctx context.Context, userID string) (*trend.Summary, error)

	calls struct {
		Detail []struct {
			Ctx    context.Context
			UserID string
			Index  int
			Valid  []int
		}
		Summary []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockDetail  sync.RWMutex
	lockSummary sync.RWMutex
}

func (mock *trendReaderMock) Detail(ctx context.Context, userID string, index int, valid []int) (*trend.Detail, error) {
	if mock.DetailFunc == nil {
		panic("trendReaderMock.DetailFunc: method is nil but trendReader.Detail was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Index  int
		Valid  []int
	}{
		Ctx:    ctx,
		UserID: userID,
		Index:  index,
		Valid:  valid,
	}
	mock.lockDetail.Lock()
	mock.calls.Detail = append(mock.calls.Detail, callInfo)
	mock.lockDetail.Unlock()
	return mock.DetailFunc(ctx, userID, index, valid)
}

func (mock *trendReaderMock) DetailCalls() []struct {
	Ctx    context.Context
	UserID string
	Index  int
	Valid  []int
} {
	mock.lockDetail.RLock()
	calls := mock.calls.Detail
	mock.lockDetail.RUnlock()
	return calls
}

func (mock *trendReaderMock) Summary(ctx context.Context, userID string) (*trend.Summary, error) {
	if mock.SummaryFunc == nil {
		panic("trendReaderMock.SummaryFunc: method is nil but trendReader.Summary was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, userID)
}

func (mock *trendReaderMock) SummaryCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}

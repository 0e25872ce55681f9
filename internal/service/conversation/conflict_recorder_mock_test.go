package conversation

import (
	"sync"
)

var _ conflictRecorder = &conflictRecorderMock{}

type conflictRecorderMock struct {
	HistoryConflictFunc func()

	calls struct {
		HistoryConflict []struct{}
	}
	lockHistoryConflict sync.RWMutex
}

func (mock *conflictRecorderMock) HistoryConflict() {
	if mock.HistoryConflictFunc == nil {
		panic("conflictRecorderMock.HistoryConflictFunc: method is nil but conflictRecorder.HistoryConflict was just called")
	}
	mock.lockHistoryConflict.Lock()
	mock.calls.HistoryConflict = append(mock.calls.HistoryConflict, struct{}{})
	mock.lockHistoryConflict.Unlock()
	mock.HistoryConflictFunc()
}

func (mock *conflictRecorderMock) HistoryConflictCalls() []struct{} {
	mock.lockHistoryConflict.RLock()
	calls := mock.calls.HistoryConflict
	mock.lockHistoryConflict.RUnlock()
	return calls
}

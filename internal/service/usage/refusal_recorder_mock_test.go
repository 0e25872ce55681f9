package usage

import (
	"sync"
)

var _ refusalRecorder = &refusalRecorderMock{}

type refusalRecorderMock struct {
	QuotaRefusedFunc func()

	calls struct {
		QuotaRefused []struct{}
	}
	lockQuotaRefused sync.RWMutex
}

func (mock *refusalRecorderMock) QuotaRefused() {
	if mock.QuotaRefusedFunc == nil {
		panic("refusalRecorderMock.QuotaRefusedFunc: method is nil but refusalRecorder.QuotaRefused was just called")
	}
	mock.lockQuotaRefused.Lock()
	mock.calls.QuotaRefused = append(mock.calls.QuotaRefused, struct{}{})
	mock.lockQuotaRefused.Unlock()
	mock.QuotaRefusedFunc()
}

func (mock *refusalRecorderMock) QuotaRefusedCalls() []struct{} {
	mock.lockQuotaRefused.RLock()
	calls := mock.calls.QuotaRefused
	mock.lockQuotaRefused.RUnlock()
	return calls
}

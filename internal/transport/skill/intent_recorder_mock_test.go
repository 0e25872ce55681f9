package skill

import (
	"sync"
)

var _ intentRecorder = &intentRecorderMock{}

type intentRecorderMock struct {
	IntentFunc func(name string)

	calls struct {
		Intent []struct {
			Name string
		}
	}
	lockIntent sync.RWMutex
}

func (mock *intentRecorderMock) Intent(name string) {
	if mock.IntentFunc == nil {
		panic("intentRecorderMock.IntentFunc: method is nil but intentRecorder.Intent was just called")
	}
	callInfo := struct {
		Name string
	}{
		Name: name,
	}
	mock.lockIntent.Lock()
	mock.calls.Intent = append(mock.calls.Intent, callInfo)
	mock.lockIntent.Unlock()
	mock.IntentFunc(name)
}

func (mock *intentRecorderMock) IntentCalls() []struct {
	Name string
} {
	mock.lockIntent.RLock()
	calls := mock.calls.Intent
	mock.lockIntent.RUnlock()
	return calls
}

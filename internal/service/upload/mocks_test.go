package upload

import (
	"context"
	"sync"
)

var _ presigner = &presignerMock{}

type presignerMock struct {
	PresignPutFunc func(ctx context.Context, objectName string) (string, error)
	PublicURLFunc  func(objectName string) string

	calls struct {
		PresignPut []struct {
			Ctx        context.Context
			ObjectName string
		}
		PublicURL []struct {
			ObjectName string
		}
	}
	lockPresignPut sync.RWMutex
	lockPublicURL  sync.RWMutex
}

func (mock *presignerMock) PresignPut(ctx context.Context, objectName string) (string, error) {
	if mock.PresignPutFunc == nil {
		panic("presignerMock.PresignPutFunc: method is nil but presigner.PresignPut was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ObjectName string
	}{Ctx: ctx, ObjectName: objectName}
	mock.lockPresignPut.Lock()
	mock.calls.PresignPut = append(mock.calls.PresignPut, callInfo)
	mock.lockPresignPut.Unlock()
	return mock.PresignPutFunc(ctx, objectName)
}

func (mock *presignerMock) PresignPutCalls() []struct {
	Ctx        context.Context
	ObjectName string
} {
	mock.lockPresignPut.RLock()
	calls := mock.calls.PresignPut
	mock.lockPresignPut.RUnlock()
	return calls
}

func (mock *presignerMock) PublicURL(objectName string) string {
	if mock.PublicURLFunc == nil {
		panic("presignerMock.PublicURLFunc: method is nil but presigner.PublicURL was just called")
	}
	callInfo := struct {
		ObjectName string
	}{ObjectName: objectName}
	mock.lockPublicURL.Lock()
	mock.calls.PublicURL = append(mock.calls.PublicURL, callInfo)
	mock.lockPublicURL.Unlock()
	return mock.PublicURLFunc(objectName)
}

func (mock *presignerMock) PublicURLCalls() []struct {
	ObjectName string
} {
	mock.lockPublicURL.RLock()
	calls := mock.calls.PublicURL
	mock.lockPublicURL.RUnlock()
	return calls
}

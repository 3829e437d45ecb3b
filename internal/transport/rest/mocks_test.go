package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
	"github.com/heartmarshall/gis-admissions-backend/internal/service/application"
	"github.com/heartmarshall/gis-admissions-backend/internal/service/upload"
)

var _ applicationService = &applicationServiceMock{}

type applicationServiceMock struct {
	GetFunc                func(ctx context.Context, id uuid.UUID) (*domain.NormalizedApplication, error)
	MineFunc               func(ctx context.Context) ([]domain.NormalizedApplication, error)
	DraftFunc              func(ctx context.Context) (*domain.NormalizedApplication, error)
	SearchFunc             func(ctx context.Context, input application.SearchInput) ([]domain.ApplicationGroup, error)
	SaveFunc               func(ctx context.Context, input application.SaveInput) (*domain.NormalizedApplication, error)
	UpdateStatusFunc       func(ctx context.Context, input application.UpdateStatusInput) (*domain.NormalizedApplication, error)
	GetDocumentCommentFunc func(ctx context.Context, input application.DocumentRefInput) (*string, error)
	GetDocumentStatusFunc  func(ctx context.Context, input application.DocumentRefInput) (*domain.DocumentStatus, error)
	SetDocumentCommentFunc func(ctx context.Context, input application.SetDocumentCommentInput) (string, error)
	SetDocumentStatusFunc  func(ctx context.Context, input application.SetDocumentStatusInput) (domain.DocumentStatus, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Mine []struct {
			Ctx context.Context
		}
		Draft []struct {
			Ctx context.Context
		}
		Search []struct {
			Ctx   context.Context
			Input application.SearchInput
		}
		Save []struct {
			Ctx   context.Context
			Input application.SaveInput
		}
		UpdateStatus []struct {
			Ctx   context.Context
			Input application.UpdateStatusInput
		}
		GetDocumentComment []struct {
			Ctx   context.Context
			Input application.DocumentRefInput
		}
		GetDocumentStatus []struct {
			Ctx   context.Context
			Input application.DocumentRefInput
		}
		SetDocumentComment []struct {
			Ctx   context.Context
			Input application.SetDocumentCommentInput
		}
		SetDocumentStatus []struct {
			Ctx   context.Context
			Input application.SetDocumentStatusInput
		}
	}
	lockGet                sync.RWMutex
	lockMine               sync.RWMutex
	lockDraft              sync.RWMutex
	lockSearch             sync.RWMutex
	lockSave               sync.RWMutex
	lockUpdateStatus       sync.RWMutex
	lockGetDocumentComment sync.RWMutex
	lockGetDocumentStatus  sync.RWMutex
	lockSetDocumentComment sync.RWMutex
	lockSetDocumentStatus  sync.RWMutex
}

func (mock *applicationServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.NormalizedApplication, error) {
	if mock.GetFunc == nil {
		panic("applicationServiceMock.GetFunc: method is nil but applicationService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *applicationServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Mine(ctx context.Context) ([]domain.NormalizedApplication, error) {
	if mock.MineFunc == nil {
		panic("applicationServiceMock.MineFunc: method is nil but applicationService.Mine was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMine.Lock()
	mock.calls.Mine = append(mock.calls.Mine, callInfo)
	mock.lockMine.Unlock()
	return mock.MineFunc(ctx)
}

func (mock *applicationServiceMock) MineCalls() []struct {
	Ctx context.Context
} {
	mock.lockMine.RLock()
	calls := mock.calls.Mine
	mock.lockMine.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Draft(ctx context.Context) (*domain.NormalizedApplication, error) {
	if mock.DraftFunc == nil {
		panic("applicationServiceMock.DraftFunc: method is nil but applicationService.Draft was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDraft.Lock()
	mock.calls.Draft = append(mock.calls.Draft, callInfo)
	mock.lockDraft.Unlock()
	return mock.DraftFunc(ctx)
}

func (mock *applicationServiceMock) DraftCalls() []struct {
	Ctx context.Context
} {
	mock.lockDraft.RLock()
	calls := mock.calls.Draft
	mock.lockDraft.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Search(ctx context.Context, input application.SearchInput) ([]domain.ApplicationGroup, error) {
	if mock.SearchFunc == nil {
		panic("applicationServiceMock.SearchFunc: method is nil but applicationService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.SearchInput
	}{Ctx: ctx, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *applicationServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input application.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Save(ctx context.Context, input application.SaveInput) (*domain.NormalizedApplication, error) {
	if mock.SaveFunc == nil {
		panic("applicationServiceMock.SaveFunc: method is nil but applicationService.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.SaveInput
	}{Ctx: ctx, Input: input}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, input)
}

func (mock *applicationServiceMock) SaveCalls() []struct {
	Ctx   context.Context
	Input application.SaveInput
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *applicationServiceMock) UpdateStatus(ctx context.Context, input application.UpdateStatusInput) (*domain.NormalizedApplication, error) {
	if mock.UpdateStatusFunc == nil {
		panic("applicationServiceMock.UpdateStatusFunc: method is nil but applicationService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.UpdateStatusInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, input)
}

func (mock *applicationServiceMock) UpdateStatusCalls() []struct {
	Ctx   context.Context
	Input application.UpdateStatusInput
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *applicationServiceMock) GetDocumentComment(ctx context.Context, input application.DocumentRefInput) (*string, error) {
	if mock.GetDocumentCommentFunc == nil {
		panic("applicationServiceMock.GetDocumentCommentFunc: method is nil but applicationService.GetDocumentComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.DocumentRefInput
	}{Ctx: ctx, Input: input}
	mock.lockGetDocumentComment.Lock()
	mock.calls.GetDocumentComment = append(mock.calls.GetDocumentComment, callInfo)
	mock.lockGetDocumentComment.Unlock()
	return mock.GetDocumentCommentFunc(ctx, input)
}

func (mock *applicationServiceMock) GetDocumentCommentCalls() []struct {
	Ctx   context.Context
	Input application.DocumentRefInput
} {
	mock.lockGetDocumentComment.RLock()
	calls := mock.calls.GetDocumentComment
	mock.lockGetDocumentComment.RUnlock()
	return calls
}

func (mock *applicationServiceMock) GetDocumentStatus(ctx context.Context, input application.DocumentRefInput) (*domain.DocumentStatus, error) {
	if mock.GetDocumentStatusFunc == nil {
		panic("applicationServiceMock.GetDocumentStatusFunc: method is nil but applicationService.GetDocumentStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.DocumentRefInput
	}{Ctx: ctx, Input: input}
	mock.lockGetDocumentStatus.Lock()
	mock.calls.GetDocumentStatus = append(mock.calls.GetDocumentStatus, callInfo)
	mock.lockGetDocumentStatus.Unlock()
	return mock.GetDocumentStatusFunc(ctx, input)
}

func (mock *applicationServiceMock) GetDocumentStatusCalls() []struct {
	Ctx   context.Context
	Input application.DocumentRefInput
} {
	mock.lockGetDocumentStatus.RLock()
	calls := mock.calls.GetDocumentStatus
	mock.lockGetDocumentStatus.RUnlock()
	return calls
}

func (mock *applicationServiceMock) SetDocumentComment(ctx context.Context, input application.SetDocumentCommentInput) (string, error) {
	if mock.SetDocumentCommentFunc == nil {
		panic("applicationServiceMock.SetDocumentCommentFunc: method is nil but applicationService.SetDocumentComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.SetDocumentCommentInput
	}{Ctx: ctx, Input: input}
	mock.lockSetDocumentComment.Lock()
	mock.calls.SetDocumentComment = append(mock.calls.SetDocumentComment, callInfo)
	mock.lockSetDocumentComment.Unlock()
	return mock.SetDocumentCommentFunc(ctx, input)
}

func (mock *applicationServiceMock) SetDocumentCommentCalls() []struct {
	Ctx   context.Context
	Input application.SetDocumentCommentInput
} {
	mock.lockSetDocumentComment.RLock()
	calls := mock.calls.SetDocumentComment
	mock.lockSetDocumentComment.RUnlock()
	return calls
}

func (mock *applicationServiceMock) SetDocumentStatus(ctx context.Context, input application.SetDocumentStatusInput) (domain.DocumentStatus, error) {
	if mock.SetDocumentStatusFunc == nil {
		panic("applicationServiceMock.SetDocumentStatusFunc: method is nil but applicationService.SetDocumentStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.SetDocumentStatusInput
	}{Ctx: ctx, Input: input}
	mock.lockSetDocumentStatus.Lock()
	mock.calls.SetDocumentStatus = append(mock.calls.SetDocumentStatus, callInfo)
	mock.lockSetDocumentStatus.Unlock()
	return mock.SetDocumentStatusFunc(ctx, input)
}

func (mock *applicationServiceMock) SetDocumentStatusCalls() []struct {
	Ctx   context.Context
	Input application.SetDocumentStatusInput
} {
	mock.lockSetDocumentStatus.RLock()
	calls := mock.calls.SetDocumentStatus
	mock.lockSetDocumentStatus.RUnlock()
	return calls
}

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	SendBatchFunc func(ctx context.Context, status domain.ApplicationStatus) (domain.BatchResult, error)

	calls struct {
		SendBatch []struct {
			Ctx    context.Context
			Status domain.ApplicationStatus
		}
	}
	lockSendBatch sync.RWMutex
}

func (mock *notificationServiceMock) SendBatch(ctx context.Context, status domain.ApplicationStatus) (domain.BatchResult, error) {
	if mock.SendBatchFunc == nil {
		panic("notificationServiceMock.SendBatchFunc: method is nil but notificationService.SendBatch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.ApplicationStatus
	}{Ctx: ctx, Status: status}
	mock.lockSendBatch.Lock()
	mock.calls.SendBatch = append(mock.calls.SendBatch, callInfo)
	mock.lockSendBatch.Unlock()
	return mock.SendBatchFunc(ctx, status)
}

func (mock *notificationServiceMock) SendBatchCalls() []struct {
	Ctx    context.Context
	Status domain.ApplicationStatus
} {
	mock.lockSendBatch.RLock()
	calls := mock.calls.SendBatch
	mock.lockSendBatch.RUnlock()
	return calls
}

var _ uploadService = &uploadServiceMock{}

type uploadServiceMock struct {
	PresignFunc func(ctx context.Context, input upload.PresignInput) (*domain.PresignedUpload, error)

	calls struct {
		Presign []struct {
			Ctx   context.Context
			Input upload.PresignInput
		}
	}
	lockPresign sync.RWMutex
}

func (mock *uploadServiceMock) Presign(ctx context.Context, input upload.PresignInput) (*domain.PresignedUpload, error) {
	if mock.PresignFunc == nil {
		panic("uploadServiceMock.PresignFunc: method is nil but uploadService.Presign was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input upload.PresignInput
	}{Ctx: ctx, Input: input}
	mock.lockPresign.Lock()
	mock.calls.Presign = append(mock.calls.Presign, callInfo)
	mock.lockPresign.Unlock()
	return mock.PresignFunc(ctx, input)
}

func (mock *uploadServiceMock) PresignCalls() []struct {
	Ctx   context.Context
	Input upload.PresignInput
} {
	mock.lockPresign.RLock()
	calls := mock.calls.Presign
	mock.lockPresign.RUnlock()
	return calls
}

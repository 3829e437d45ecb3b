package application

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.ApplicationRow, error)
	GetOwnedFunc              func(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*domain.ApplicationRow, error)
	GetActionableByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID) (*domain.ApplicationRow, error)
	ListSubmittedByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID) ([]domain.ApplicationRow, error)
	SearchFunc                func(ctx context.Context, filter domain.SearchFilter) ([]domain.ApplicationRow, error)
	GetStatusForUpdateFunc    func(ctx context.Context, id uuid.UUID) (domain.ApplicationStatus, error)
	CreateFunc                func(ctx context.Context, app domain.Application) (*domain.Application, error)
	UpdateFunc                func(ctx context.Context, app domain.Application) (*domain.Application, error)
	UpdateStatusFunc          func(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error
	TouchFunc                 func(ctx context.Context, id uuid.UUID) error
	ListDocumentMetaFunc      func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.DocumentMetaEntry, error)
	GetDocumentMetaFunc       func(ctx context.Context, applicationID uuid.UUID, publicURL string, purpose domain.DocumentMetaPurpose) (*domain.DocumentMetaEntry, error)
	UpsertDocumentMetaFunc    func(ctx context.Context, entry domain.DocumentMetaEntry) (*domain.DocumentMetaEntry, error)
	MirrorDocumentStatusFunc  func(ctx context.Context, applicationID uuid.UUID, publicURL string, status domain.DocumentStatus) error
	MirrorDocumentCommentFunc func(ctx context.Context, applicationID uuid.UUID, publicURL string, comment string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetOwned []struct {
			Ctx     context.Context
			ID      uuid.UUID
			OwnerID *uuid.UUID
		}
		GetActionableByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		ListSubmittedByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Search []struct {
			Ctx    context.Context
			Filter domain.SearchFilter
		}
		GetStatusForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			App domain.Application
		}
		Update []struct {
			Ctx context.Context
			App domain.Application
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.ApplicationStatus
		}
		Touch []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListDocumentMeta []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		GetDocumentMeta []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
			PublicURL     string
			Purpose       domain.DocumentMetaPurpose
		}
		UpsertDocumentMeta []struct {
			Ctx   context.Context
			Entry domain.DocumentMetaEntry
		}
		MirrorDocumentStatus []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
			PublicURL     string
			Status        domain.DocumentStatus
		}
		MirrorDocumentComment []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
			PublicURL     string
			Comment       string
		}
	}
	lockGetByID               sync.RWMutex
	lockGetOwned              sync.RWMutex
	lockGetActionableByOwner  sync.RWMutex
	lockListSubmittedByOwner  sync.RWMutex
	lockSearch                sync.RWMutex
	lockGetStatusForUpdate    sync.RWMutex
	lockCreate                sync.RWMutex
	lockUpdate                sync.RWMutex
	lockUpdateStatus          sync.RWMutex
	lockTouch                 sync.RWMutex
	lockListDocumentMeta      sync.RWMutex
	lockGetDocumentMeta       sync.RWMutex
	lockUpsertDocumentMeta    sync.RWMutex
	lockMirrorDocumentStatus  sync.RWMutex
	lockMirrorDocumentComment sync.RWMutex
}

func (mock *applicationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ApplicationRow, error) {
	if mock.GetByIDFunc == nil {
		panic("applicationRepoMock.GetByIDFunc: method is nil but applicationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *applicationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *applicationRepoMock) GetOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*domain.ApplicationRow, error) {
	if mock.GetOwnedFunc == nil {
		panic("applicationRepoMock.GetOwnedFunc: method is nil but applicationRepo.GetOwned was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		OwnerID *uuid.UUID
	}{Ctx: ctx, ID: id, OwnerID: ownerID}
	mock.lockGetOwned.Lock()
	mock.calls.GetOwned = append(mock.calls.GetOwned, callInfo)
	mock.lockGetOwned.Unlock()
	return mock.GetOwnedFunc(ctx, id, ownerID)
}

func (mock *applicationRepoMock) GetOwnedCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	OwnerID *uuid.UUID
} {
	mock.lockGetOwned.RLock()
	calls := mock.calls.GetOwned
	mock.lockGetOwned.RUnlock()
	return calls
}

func (mock *applicationRepoMock) GetActionableByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.ApplicationRow, error) {
	if mock.GetActionableByOwnerFunc == nil {
		panic("applicationRepoMock.GetActionableByOwnerFunc: method is nil but applicationRepo.GetActionableByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockGetActionableByOwner.Lock()
	mock.calls.GetActionableByOwner = append(mock.calls.GetActionableByOwner, callInfo)
	mock.lockGetActionableByOwner.Unlock()
	return mock.GetActionableByOwnerFunc(ctx, ownerID)
}

func (mock *applicationRepoMock) GetActionableByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockGetActionableByOwner.RLock()
	calls := mock.calls.GetActionableByOwner
	mock.lockGetActionableByOwner.RUnlock()
	return calls
}

func (mock *applicationRepoMock) ListSubmittedByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ApplicationRow, error) {
	if mock.ListSubmittedByOwnerFunc == nil {
		panic("applicationRepoMock.ListSubmittedByOwnerFunc: method is nil but applicationRepo.ListSubmittedByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListSubmittedByOwner.Lock()
	mock.calls.ListSubmittedByOwner = append(mock.calls.ListSubmittedByOwner, callInfo)
	mock.lockListSubmittedByOwner.Unlock()
	return mock.ListSubmittedByOwnerFunc(ctx, ownerID)
}

func (mock *applicationRepoMock) ListSubmittedByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListSubmittedByOwner.RLock()
	calls := mock.calls.ListSubmittedByOwner
	mock.lockListSubmittedByOwner.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.ApplicationRow, error) {
	if mock.SearchFunc == nil {
		panic("applicationRepoMock.SearchFunc: method is nil but applicationRepo.Search was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SearchFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, filter)
}

func (mock *applicationRepoMock) SearchCalls() []struct {
	Ctx    context.Context
	Filter domain.SearchFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *applicationRepoMock) GetStatusForUpdate(ctx context.Context, id uuid.UUID) (domain.ApplicationStatus, error) {
	if mock.GetStatusForUpdateFunc == nil {
		panic("applicationRepoMock.GetStatusForUpdateFunc: method is nil but applicationRepo.GetStatusForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetStatusForUpdate.Lock()
	mock.calls.GetStatusForUpdate = append(mock.calls.GetStatusForUpdate, callInfo)
	mock.lockGetStatusForUpdate.Unlock()
	return mock.GetStatusForUpdateFunc(ctx, id)
}

func (mock *applicationRepoMock) GetStatusForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetStatusForUpdate.RLock()
	calls := mock.calls.GetStatusForUpdate
	mock.lockGetStatusForUpdate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Create(ctx context.Context, app domain.Application) (*domain.Application, error) {
	if mock.CreateFunc == nil {
		panic("applicationRepoMock.CreateFunc: method is nil but applicationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		App domain.Application
	}{Ctx: ctx, App: app}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, app)
}

func (mock *applicationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	App domain.Application
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Update(ctx context.Context, app domain.Application) (*domain.Application, error) {
	if mock.UpdateFunc == nil {
		panic("applicationRepoMock.UpdateFunc: method is nil but applicationRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		App domain.Application
	}{Ctx: ctx, App: app}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, app)
}

func (mock *applicationRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	App domain.Application
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("applicationRepoMock.UpdateStatusFunc: method is nil but applicationRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.ApplicationStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *applicationRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.ApplicationStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Touch(ctx context.Context, id uuid.UUID) error {
	if mock.TouchFunc == nil {
		panic("applicationRepoMock.TouchFunc: method is nil but applicationRepo.Touch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, id)
}

func (mock *applicationRepoMock) TouchCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}

func (mock *applicationRepoMock) ListDocumentMeta(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.DocumentMetaEntry, error) {
	if mock.ListDocumentMetaFunc == nil {
		panic("applicationRepoMock.ListDocumentMetaFunc: method is nil but applicationRepo.ListDocumentMeta was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockListDocumentMeta.Lock()
	mock.calls.ListDocumentMeta = append(mock.calls.ListDocumentMeta, callInfo)
	mock.lockListDocumentMeta.Unlock()
	return mock.ListDocumentMetaFunc(ctx, ids)
}

func (mock *applicationRepoMock) ListDocumentMetaCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockListDocumentMeta.RLock()
	calls := mock.calls.ListDocumentMeta
	mock.lockListDocumentMeta.RUnlock()
	return calls
}

func (mock *applicationRepoMock) GetDocumentMeta(ctx context.Context, applicationID uuid.UUID, publicURL string, purpose domain.DocumentMetaPurpose) (*domain.DocumentMetaEntry, error) {
	if mock.GetDocumentMetaFunc == nil {
		panic("applicationRepoMock.GetDocumentMetaFunc: method is nil but applicationRepo.GetDocumentMeta was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
		PublicURL     string
		Purpose       domain.DocumentMetaPurpose
	}{Ctx: ctx, ApplicationID: applicationID, PublicURL: publicURL, Purpose: purpose}
	mock.lockGetDocumentMeta.Lock()
	mock.calls.GetDocumentMeta = append(mock.calls.GetDocumentMeta, callInfo)
	mock.lockGetDocumentMeta.Unlock()
	return mock.GetDocumentMetaFunc(ctx, applicationID, publicURL, purpose)
}

func (mock *applicationRepoMock) GetDocumentMetaCalls() []struct {
	Ctx           context.Context
	ApplicationID uuid.UUID
	PublicURL     string
	Purpose       domain.DocumentMetaPurpose
} {
	mock.lockGetDocumentMeta.RLock()
	calls := mock.calls.GetDocumentMeta
	mock.lockGetDocumentMeta.RUnlock()
	return calls
}

func (mock *applicationRepoMock) UpsertDocumentMeta(ctx context.Context, entry domain.DocumentMetaEntry) (*domain.DocumentMetaEntry, error) {
	if mock.UpsertDocumentMetaFunc == nil {
		panic("applicationRepoMock.UpsertDocumentMetaFunc: method is nil but applicationRepo.UpsertDocumentMeta was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.DocumentMetaEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockUpsertDocumentMeta.Lock()
	mock.calls.UpsertDocumentMeta = append(mock.calls.UpsertDocumentMeta, callInfo)
	mock.lockUpsertDocumentMeta.Unlock()
	return mock.UpsertDocumentMetaFunc(ctx, entry)
}

func (mock *applicationRepoMock) UpsertDocumentMetaCalls() []struct {
	Ctx   context.Context
	Entry domain.DocumentMetaEntry
} {
	mock.lockUpsertDocumentMeta.RLock()
	calls := mock.calls.UpsertDocumentMeta
	mock.lockUpsertDocumentMeta.RUnlock()
	return calls
}

func (mock *applicationRepoMock) MirrorDocumentStatus(ctx context.Context, applicationID uuid.UUID, publicURL string, status domain.DocumentStatus) error {
	if mock.MirrorDocumentStatusFunc == nil {
		panic("applicationRepoMock.MirrorDocumentStatusFunc: method is nil but applicationRepo.MirrorDocumentStatus was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
		PublicURL     string
		Status        domain.DocumentStatus
	}{Ctx: ctx, ApplicationID: applicationID, PublicURL: publicURL, Status: status}
	mock.lockMirrorDocumentStatus.Lock()
	mock.calls.MirrorDocumentStatus = append(mock.calls.MirrorDocumentStatus, callInfo)
	mock.lockMirrorDocumentStatus.Unlock()
	return mock.MirrorDocumentStatusFunc(ctx, applicationID, publicURL, status)
}

func (mock *applicationRepoMock) MirrorDocumentStatusCalls() []struct {
	Ctx           context.Context
	ApplicationID uuid.UUID
	PublicURL     string
	Status        domain.DocumentStatus
} {
	mock.lockMirrorDocumentStatus.RLock()
	calls := mock.calls.MirrorDocumentStatus
	mock.lockMirrorDocumentStatus.RUnlock()
	return calls
}

func (mock *applicationRepoMock) MirrorDocumentComment(ctx context.Context, applicationID uuid.UUID, publicURL string, comment string) error {
	if mock.MirrorDocumentCommentFunc == nil {
		panic("applicationRepoMock.MirrorDocumentCommentFunc: method is nil but applicationRepo.MirrorDocumentComment was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
		PublicURL     string
		Comment       string
	}{Ctx: ctx, ApplicationID: applicationID, PublicURL: publicURL, Comment: comment}
	mock.lockMirrorDocumentComment.Lock()
	mock.calls.MirrorDocumentComment = append(mock.calls.MirrorDocumentComment, callInfo)
	mock.lockMirrorDocumentComment.Unlock()
	return mock.MirrorDocumentCommentFunc(ctx, applicationID, publicURL, comment)
}

func (mock *applicationRepoMock) MirrorDocumentCommentCalls() []struct {
	Ctx           context.Context
	ApplicationID uuid.UUID
	PublicURL     string
	Comment       string
} {
	mock.lockMirrorDocumentComment.RLock()
	calls := mock.calls.MirrorDocumentComment
	mock.lockMirrorDocumentComment.RUnlock()
	return calls
}

var _ relationRepo = &relationRepoMock{}

type relationRepoMock struct {
	LoadByApplicationIDsFunc func(ctx context.Context, ids []uuid.UUID) (domain.Relations, error)
	ReplaceAllFunc           func(ctx context.Context, applicationID uuid.UUID, children domain.ApplicationChildren) error
	AppendStatusHistoryFunc  func(ctx context.Context, entry domain.StatusHistory) (domain.StatusHistory, error)

	calls struct {
		LoadByApplicationIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		ReplaceAll []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
			Children      domain.ApplicationChildren
		}
		AppendStatusHistory []struct {
			Ctx   context.Context
			Entry domain.StatusHistory
		}
	}
	lockLoadByApplicationIDs sync.RWMutex
	lockReplaceAll           sync.RWMutex
	lockAppendStatusHistory  sync.RWMutex
}

func (mock *relationRepoMock) LoadByApplicationIDs(ctx context.Context, ids []uuid.UUID) (domain.Relations, error) {
	if mock.LoadByApplicationIDsFunc == nil {
		panic("relationRepoMock.LoadByApplicationIDsFunc: method is nil but relationRepo.LoadByApplicationIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockLoadByApplicationIDs.Lock()
	mock.calls.LoadByApplicationIDs = append(mock.calls.LoadByApplicationIDs, callInfo)
	mock.lockLoadByApplicationIDs.Unlock()
	return mock.LoadByApplicationIDsFunc(ctx, ids)
}

func (mock *relationRepoMock) LoadByApplicationIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockLoadByApplicationIDs.RLock()
	calls := mock.calls.LoadByApplicationIDs
	mock.lockLoadByApplicationIDs.RUnlock()
	return calls
}

func (mock *relationRepoMock) ReplaceAll(ctx context.Context, applicationID uuid.UUID, children domain.ApplicationChildren) error {
	if mock.ReplaceAllFunc == nil {
		panic("relationRepoMock.ReplaceAllFunc: method is nil but relationRepo.ReplaceAll was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
		Children      domain.ApplicationChildren
	}{Ctx: ctx, ApplicationID: applicationID, Children: children}
	mock.lockReplaceAll.Lock()
	mock.calls.ReplaceAll = append(mock.calls.ReplaceAll, callInfo)
	mock.lockReplaceAll.Unlock()
	return mock.ReplaceAllFunc(ctx, applicationID, children)
}

func (mock *relationRepoMock) ReplaceAllCalls() []struct {
	Ctx           context.Context
	ApplicationID uuid.UUID
	Children      domain.ApplicationChildren
} {
	mock.lockReplaceAll.RLock()
	calls := mock.calls.ReplaceAll
	mock.lockReplaceAll.RUnlock()
	return calls
}

func (mock *relationRepoMock) AppendStatusHistory(ctx context.Context, entry domain.StatusHistory) (domain.StatusHistory, error) {
	if mock.AppendStatusHistoryFunc == nil {
		panic("relationRepoMock.AppendStatusHistoryFunc: method is nil but relationRepo.AppendStatusHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.StatusHistory
	}{Ctx: ctx, Entry: entry}
	mock.lockAppendStatusHistory.Lock()
	mock.calls.AppendStatusHistory = append(mock.calls.AppendStatusHistory, callInfo)
	mock.lockAppendStatusHistory.Unlock()
	return mock.AppendStatusHistoryFunc(ctx, entry)
}

func (mock *relationRepoMock) AppendStatusHistoryCalls() []struct {
	Ctx   context.Context
	Entry domain.StatusHistory
} {
	mock.lockAppendStatusHistory.RLock()
	calls := mock.calls.AppendStatusHistory
	mock.lockAppendStatusHistory.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

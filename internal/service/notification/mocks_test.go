package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	ListByStatusFunc func(ctx context.Context, status domain.ApplicationStatus) ([]domain.ApplicationRow, error)
	MarkInvitedFunc  func(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error

	calls struct {
		ListByStatus []struct {
			Ctx    context.Context
			Status domain.ApplicationStatus
		}
		MarkInvited []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.ApplicationStatus
		}
	}
	lockListByStatus sync.RWMutex
	lockMarkInvited  sync.RWMutex
}

func (mock *applicationRepoMock) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.ApplicationRow, error) {
	if mock.ListByStatusFunc == nil {
		panic("applicationRepoMock.ListByStatusFunc: method is nil but applicationRepo.ListByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.ApplicationStatus
	}{Ctx: ctx, Status: status}
	mock.lockListByStatus.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, callInfo)
	mock.lockListByStatus.Unlock()
	return mock.ListByStatusFunc(ctx, status)
}

func (mock *applicationRepoMock) ListByStatusCalls() []struct {
	Ctx    context.Context
	Status domain.ApplicationStatus
} {
	mock.lockListByStatus.RLock()
	calls := mock.calls.ListByStatus
	mock.lockListByStatus.RUnlock()
	return calls
}

func (mock *applicationRepoMock) MarkInvited(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	if mock.MarkInvitedFunc == nil {
		panic("applicationRepoMock.MarkInvitedFunc: method is nil but applicationRepo.MarkInvited was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.ApplicationStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockMarkInvited.Lock()
	mock.calls.MarkInvited = append(mock.calls.MarkInvited, callInfo)
	mock.lockMarkInvited.Unlock()
	return mock.MarkInvitedFunc(ctx, id, status)
}

func (mock *applicationRepoMock) MarkInvitedCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.ApplicationStatus
} {
	mock.lockMarkInvited.RLock()
	calls := mock.calls.MarkInvited
	mock.lockMarkInvited.RUnlock()
	return calls
}

var _ mailSender = &mailSenderMock{}

type mailSenderMock struct {
	SendFunc func(ctx context.Context, msg domain.MailMessage) error

	calls struct {
		Send []struct {
			Ctx context.Context
			Msg domain.MailMessage
		}
	}
	lockSend sync.RWMutex
}

func (mock *mailSenderMock) Send(ctx context.Context, msg domain.MailMessage) error {
	if mock.SendFunc == nil {
		panic("mailSenderMock.SendFunc: method is nil but mailSender.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg domain.MailMessage
	}{Ctx: ctx, Msg: msg}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, msg)
}

func (mock *mailSenderMock) SendCalls() []struct {
	Ctx context.Context
	Msg domain.MailMessage
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}

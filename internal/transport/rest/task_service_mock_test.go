package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/task"
)

var _ taskService = &taskServiceMock{}

type taskServiceMock struct {
	ListTodayFunc func(ctx context.Context) ([]domain.Task, error)
	CreateFunc    func(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	CompleteFunc  func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		ListToday []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx   context.Context
			Input task.CreateTaskInput
		}
		Complete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListToday sync.RWMutex
	lockCreate    sync.RWMutex
	lockComplete  sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *taskServiceMock) ListToday(ctx context.Context) ([]domain.Task, error) {
	if mock.ListTodayFunc == nil {
		panic("taskServiceMock.ListTodayFunc: method is nil but taskService.ListToday was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListToday.Lock()
	mock.calls.ListToday = append(mock.calls.ListToday, callInfo)
	mock.lockListToday.Unlock()
	return mock.ListTodayFunc(ctx)
}

func (mock *taskServiceMock) ListTodayCalls() []struct {
	Ctx context.Context
} {
	mock.lockListToday.RLock()
	calls := mock.calls.ListToday
	mock.lockListToday.RUnlock()
	return calls
}

func (mock *taskServiceMock) Create(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskServiceMock.CreateFunc: method is nil but taskService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.CreateTaskInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *taskServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input task.CreateTaskInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *taskServiceMock) Complete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.CompleteFunc == nil {
		panic("taskServiceMock.CompleteFunc: method is nil but taskService.Complete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, id)
}

func (mock *taskServiceMock) CompleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *taskServiceMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("taskServiceMock.DeleteFunc: method is nil but taskService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *taskServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

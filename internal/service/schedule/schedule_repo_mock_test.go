package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var _ scheduleRepo = &scheduleRepoMock{}

type scheduleRepoMock struct {
	ListInstancesByDateFunc    func(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.ScheduleBlockInstance, error)
	CreateInstanceFunc         func(ctx context.Context, b domain.ScheduleBlockInstance) (*domain.ScheduleBlockInstance, error)
	UpdateInstanceFunc         func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, patch domain.ScheduleBlockPatch, now time.Time) (*domain.ScheduleBlockInstance, error)
	DeleteInstanceFunc         func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (bool, error)
	CreateDefinitionFunc       func(ctx context.Context, d domain.ScheduleBlockDefinition) (*domain.ScheduleBlockDefinition, error)
	ListEnabledDefinitionsFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.ScheduleBlockDefinition, error)

	calls struct {
		ListInstancesByDate []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Date    time.Time
		}
		CreateInstance []struct {
			Ctx context.Context
			B   domain.ScheduleBlockInstance
		}
		UpdateInstance []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
			Patch   domain.ScheduleBlockPatch
			Now     time.Time
		}
		DeleteInstance []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		CreateDefinition []struct {
			Ctx context.Context
			D   domain.ScheduleBlockDefinition
		}
		ListEnabledDefinitions []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockListInstancesByDate    sync.RWMutex
	lockCreateInstance         sync.RWMutex
	lockUpdateInstance         sync.RWMutex
	lockDeleteInstance         sync.RWMutex
	lockCreateDefinition       sync.RWMutex
	lockListEnabledDefinitions sync.RWMutex
}

func (mock *scheduleRepoMock) ListInstancesByDate(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.ScheduleBlockInstance, error) {
	if mock.ListInstancesByDateFunc == nil {
		panic("scheduleRepoMock.ListInstancesByDateFunc: method is nil but scheduleRepo.ListInstancesByDate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Date    time.Time
	}{Ctx: ctx, OwnerID: ownerID, Date: date}
	mock.lockListInstancesByDate.Lock()
	mock.calls.ListInstancesByDate = append(mock.calls.ListInstancesByDate, callInfo)
	mock.lockListInstancesByDate.Unlock()
	return mock.ListInstancesByDateFunc(ctx, ownerID, date)
}

func (mock *scheduleRepoMock) ListInstancesByDateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Date    time.Time
} {
	mock.lockListInstancesByDate.RLock()
	calls := mock.calls.ListInstancesByDate
	mock.lockListInstancesByDate.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) CreateInstance(ctx context.Context, b domain.ScheduleBlockInstance) (*domain.ScheduleBlockInstance, error) {
	if mock.CreateInstanceFunc == nil {
		panic("scheduleRepoMock.CreateInstanceFunc: method is nil but scheduleRepo.CreateInstance was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   domain.ScheduleBlockInstance
	}{Ctx: ctx, B: b}
	mock.lockCreateInstance.Lock()
	mock.calls.CreateInstance = append(mock.calls.CreateInstance, callInfo)
	mock.lockCreateInstance.Unlock()
	return mock.CreateInstanceFunc(ctx, b)
}

func (mock *scheduleRepoMock) CreateInstanceCalls() []struct {
	Ctx context.Context
	B   domain.ScheduleBlockInstance
} {
	mock.lockCreateInstance.RLock()
	calls := mock.calls.CreateInstance
	mock.lockCreateInstance.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) UpdateInstance(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, patch domain.ScheduleBlockPatch, now time.Time) (*domain.ScheduleBlockInstance, error) {
	if mock.UpdateInstanceFunc == nil {
		panic("scheduleRepoMock.UpdateInstanceFunc: method is nil but scheduleRepo.UpdateInstance was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Patch   domain.ScheduleBlockPatch
		Now     time.Time
	}{Ctx: ctx, OwnerID: ownerID, ID: id, Patch: patch, Now: now}
	mock.lockUpdateInstance.Lock()
	mock.calls.UpdateInstance = append(mock.calls.UpdateInstance, callInfo)
	mock.lockUpdateInstance.Unlock()
	return mock.UpdateInstanceFunc(ctx, ownerID, id, patch, now)
}

func (mock *scheduleRepoMock) UpdateInstanceCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
	Patch   domain.ScheduleBlockPatch
	Now     time.Time
} {
	mock.lockUpdateInstance.RLock()
	calls := mock.calls.UpdateInstance
	mock.lockUpdateInstance.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) DeleteInstance(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (bool, error) {
	if mock.DeleteInstanceFunc == nil {
		panic("scheduleRepoMock.DeleteInstanceFunc: method is nil but scheduleRepo.DeleteInstance was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockDeleteInstance.Lock()
	mock.calls.DeleteInstance = append(mock.calls.DeleteInstance, callInfo)
	mock.lockDeleteInstance.Unlock()
	return mock.DeleteInstanceFunc(ctx, ownerID, id)
}

func (mock *scheduleRepoMock) DeleteInstanceCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDeleteInstance.RLock()
	calls := mock.calls.DeleteInstance
	mock.lockDeleteInstance.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) CreateDefinition(ctx context.Context, d domain.ScheduleBlockDefinition) (*domain.ScheduleBlockDefinition, error) {
	if mock.CreateDefinitionFunc == nil {
		panic("scheduleRepoMock.CreateDefinitionFunc: method is nil but scheduleRepo.CreateDefinition was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.ScheduleBlockDefinition
	}{Ctx: ctx, D: d}
	mock.lockCreateDefinition.Lock()
	mock.calls.CreateDefinition = append(mock.calls.CreateDefinition, callInfo)
	mock.lockCreateDefinition.Unlock()
	return mock.CreateDefinitionFunc(ctx, d)
}

func (mock *scheduleRepoMock) CreateDefinitionCalls() []struct {
	Ctx context.Context
	D   domain.ScheduleBlockDefinition
} {
	mock.lockCreateDefinition.RLock()
	calls := mock.calls.CreateDefinition
	mock.lockCreateDefinition.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) ListEnabledDefinitions(ctx context.Context, ownerID uuid.UUID) ([]domain.ScheduleBlockDefinition, error) {
	if mock.ListEnabledDefinitionsFunc == nil {
		panic("scheduleRepoMock.ListEnabledDefinitionsFunc: method is nil but scheduleRepo.ListEnabledDefinitions was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListEnabledDefinitions.Lock()
	mock.calls.ListEnabledDefinitions = append(mock.calls.ListEnabledDefinitions, callInfo)
	mock.lockListEnabledDefinitions.Unlock()
	return mock.ListEnabledDefinitionsFunc(ctx, ownerID)
}

func (mock *scheduleRepoMock) ListEnabledDefinitionsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListEnabledDefinitions.RLock()
	calls := mock.calls.ListEnabledDefinitions
	mock.lockListEnabledDefinitions.RUnlock()
	return calls
}

package seed

import (
	"context"
	"sync"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var _ scheduleRepo = &scheduleRepoMock{}

type scheduleRepoMock struct {
	CreateInstanceFunc func(ctx context.Context, b domain.ScheduleBlockInstance) (*domain.ScheduleBlockInstance, error)

	calls struct {
		CreateInstance []struct {
			Ctx context.Context
			B   domain.ScheduleBlockInstance
		}
	}
	lockCreateInstance sync.RWMutex
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

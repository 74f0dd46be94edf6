package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/diet"
)

var _ dietService = &dietServiceMock{}

type dietServiceMock struct {
	GetTodayFunc    func(ctx context.Context) (*domain.DietEntry, error)
	UpdateTodayFunc func(ctx context.Context, input diet.UpdateTodayInput) (*domain.DietEntry, error)

	calls struct {
		GetToday []struct {
			Ctx context.Context
		}
		UpdateToday []struct {
			Ctx   context.Context
			Input diet.UpdateTodayInput
		}
	}
	lockGetToday    sync.RWMutex
	lockUpdateToday sync.RWMutex
}

func (mock *dietServiceMock) GetToday(ctx context.Context) (*domain.DietEntry, error) {
	if mock.GetTodayFunc == nil {
		panic("dietServiceMock.GetTodayFunc: method is nil but dietService.GetToday was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetToday.Lock()
	mock.calls.GetToday = append(mock.calls.GetToday, callInfo)
	mock.lockGetToday.Unlock()
	return mock.GetTodayFunc(ctx)
}

func (mock *dietServiceMock) GetTodayCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetToday.RLock()
	calls := mock.calls.GetToday
	mock.lockGetToday.RUnlock()
	return calls
}

func (mock *dietServiceMock) UpdateToday(ctx context.Context, input diet.UpdateTodayInput) (*domain.DietEntry, error) {
	if mock.UpdateTodayFunc == nil {
		panic("dietServiceMock.UpdateTodayFunc: method is nil but dietService.UpdateToday was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input diet.UpdateTodayInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateToday.Lock()
	mock.calls.UpdateToday = append(mock.calls.UpdateToday, callInfo)
	mock.lockUpdateToday.Unlock()
	return mock.UpdateTodayFunc(ctx, input)
}

func (mock *dietServiceMock) UpdateTodayCalls() []struct {
	Ctx   context.Context
	Input diet.UpdateTodayInput
} {
	mock.lockUpdateToday.RLock()
	calls := mock.calls.UpdateToday
	mock.lockUpdateToday.RUnlock()
	return calls
}

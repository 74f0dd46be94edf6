package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/daily-pos-backend/internal/service/seed"
)

var _ seedService = &seedServiceMock{}

type seedServiceMock struct {
	StatusFunc func(ctx context.Context) (*seed.Status, error)
	SeedFunc   func(ctx context.Context) (*seed.Result, error)
	ResetFunc  func(ctx context.Context) (*seed.ResetResult, error)

	calls struct {
		Status []struct {
			Ctx context.Context
		}
		Seed []struct {
			Ctx context.Context
		}
		Reset []struct {
			Ctx context.Context
		}
	}
	lockStatus sync.RWMutex
	lockSeed   sync.RWMutex
	lockReset  sync.RWMutex
}

func (mock *seedServiceMock) Status(ctx context.Context) (*seed.Status, error) {
	if mock.StatusFunc == nil {
		panic("seedServiceMock.StatusFunc: method is nil but seedService.Status was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStatus.Lock()
	mock.calls.Status = append(mock.calls.Status, callInfo)
	mock.lockStatus.Unlock()
	return mock.StatusFunc(ctx)
}

func (mock *seedServiceMock) StatusCalls() []struct {
	Ctx context.Context
} {
	mock.lockStatus.RLock()
	calls := mock.calls.Status
	mock.lockStatus.RUnlock()
	return calls
}

func (mock *seedServiceMock) Seed(ctx context.Context) (*seed.Result, error) {
	if mock.SeedFunc == nil {
		panic("seedServiceMock.SeedFunc: method is nil but seedService.Seed was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSeed.Lock()
	mock.calls.Seed = append(mock.calls.Seed, callInfo)
	mock.lockSeed.Unlock()
	return mock.SeedFunc(ctx)
}

func (mock *seedServiceMock) SeedCalls() []struct {
	Ctx context.Context
} {
	mock.lockSeed.RLock()
	calls := mock.calls.Seed
	mock.lockSeed.RUnlock()
	return calls
}

func (mock *seedServiceMock) Reset(ctx context.Context) (*seed.ResetResult, error) {
	if mock.ResetFunc == nil {
		panic("seedServiceMock.ResetFunc: method is nil but seedService.Reset was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, callInfo)
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx)
}

func (mock *seedServiceMock) ResetCalls() []struct {
	Ctx context.Context
} {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
}

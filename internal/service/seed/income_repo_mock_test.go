package seed

import (
	"context"
	"sync"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var _ incomeRepo = &incomeRepoMock{}

type incomeRepoMock struct {
	CreateFunc func(ctx context.Context, e domain.IncomeEntry) (*domain.IncomeEntry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   domain.IncomeEntry
		}
	}
	lockCreate sync.RWMutex
}

func (mock *incomeRepoMock) Create(ctx context.Context, e domain.IncomeEntry) (*domain.IncomeEntry, error) {
	if mock.CreateFunc == nil {
		panic("incomeRepoMock.CreateFunc: method is nil but incomeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.IncomeEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *incomeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   domain.IncomeEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

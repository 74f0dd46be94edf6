package money

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var _ incomeRepo = &incomeRepoMock{}

type incomeRepoMock struct {
	CreateFunc      func(ctx context.Context, e domain.IncomeEntry) (*domain.IncomeEntry, error)
	ListFunc        func(ctx context.Context, ownerID uuid.UUID) ([]domain.IncomeEntry, error)
	ListBetweenFunc func(ctx context.Context, ownerID uuid.UUID, from time.Time, to time.Time) ([]domain.IncomeEntry, error)
	LatestDateFunc  func(ctx context.Context, ownerID uuid.UUID) (*time.Time, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   domain.IncomeEntry
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		ListBetween []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			From    time.Time
			To      time.Time
		}
		LatestDate []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockList        sync.RWMutex
	lockListBetween sync.RWMutex
	lockLatestDate  sync.RWMutex
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

func (mock *incomeRepoMock) List(ctx context.Context, ownerID uuid.UUID) ([]domain.IncomeEntry, error) {
	if mock.ListFunc == nil {
		panic("incomeRepoMock.ListFunc: method is nil but incomeRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID)
}

func (mock *incomeRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *incomeRepoMock) ListBetween(ctx context.Context, ownerID uuid.UUID, from time.Time, to time.Time) ([]domain.IncomeEntry, error) {
	if mock.ListBetweenFunc == nil {
		panic("incomeRepoMock.ListBetweenFunc: method is nil but incomeRepo.ListBetween was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		From    time.Time
		To      time.Time
	}{Ctx: ctx, OwnerID: ownerID, From: from, To: to}
	mock.lockListBetween.Lock()
	mock.calls.ListBetween = append(mock.calls.ListBetween, callInfo)
	mock.lockListBetween.Unlock()
	return mock.ListBetweenFunc(ctx, ownerID, from, to)
}

func (mock *incomeRepoMock) ListBetweenCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	From    time.Time
	To      time.Time
} {
	mock.lockListBetween.RLock()
	calls := mock.calls.ListBetween
	mock.lockListBetween.RUnlock()
	return calls
}

func (mock *incomeRepoMock) LatestDate(ctx context.Context, ownerID uuid.UUID) (*time.Time, error) {
	if mock.LatestDateFunc == nil {
		panic("incomeRepoMock.LatestDateFunc: method is nil but incomeRepo.LatestDate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockLatestDate.Lock()
	mock.calls.LatestDate = append(mock.calls.LatestDate, callInfo)
	mock.lockLatestDate.Unlock()
	return mock.LatestDateFunc(ctx, ownerID)
}

func (mock *incomeRepoMock) LatestDateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockLatestDate.RLock()
	calls := mock.calls.LatestDate
	mock.lockLatestDate.RUnlock()
	return calls
}

package today

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var _ betterItemRepo = &betterItemRepoMock{}

type betterItemRepoMock struct {
	ListByDateFunc func(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.BetterItem, error)

	calls struct {
		ListByDate []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Date    time.Time
		}
	}
	lockListByDate sync.RWMutex
}

func (mock *betterItemRepoMock) ListByDate(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.BetterItem, error) {
	if mock.ListByDateFunc == nil {
		panic("betterItemRepoMock.ListByDateFunc: method is nil but betterItemRepo.ListByDate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Date    time.Time
	}{Ctx: ctx, OwnerID: ownerID, Date: date}
	mock.lockListByDate.Lock()
	mock.calls.ListByDate = append(mock.calls.ListByDate, callInfo)
	mock.lockListByDate.Unlock()
	return mock.ListByDateFunc(ctx, ownerID, date)
}

func (mock *betterItemRepoMock) ListByDateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Date    time.Time
} {
	mock.lockListByDate.RLock()
	calls := mock.calls.ListByDate
	mock.lockListByDate.RUnlock()
	return calls
}

package today

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var _ scheduleRepo = &scheduleRepoMock{}

type scheduleRepoMock struct {
	ListInstancesByDateFunc func(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.ScheduleBlockInstance, error)

	calls struct {
		ListInstancesByDate []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Date    time.Time
		}
	}
	lockListInstancesByDate sync.RWMutex
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

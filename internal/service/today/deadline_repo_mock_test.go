package today

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var _ deadlineRepo = &deadlineRepoMock{}

type deadlineRepoMock struct {
	ListActiveDueBetweenFunc func(ctx context.Context, ownerID uuid.UUID, from time.Time, to time.Time) ([]domain.Deadline, error)

	calls struct {
		ListActiveDueBetween []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			From    time.Time
			To      time.Time
		}
	}
	lockListActiveDueBetween sync.RWMutex
}

func (mock *deadlineRepoMock) ListActiveDueBetween(ctx context.Context, ownerID uuid.UUID, from time.Time, to time.Time) ([]domain.Deadline, error) {
	if mock.ListActiveDueBetweenFunc == nil {
		panic("deadlineRepoMock.ListActiveDueBetweenFunc: method is nil but deadlineRepo.ListActiveDueBetween was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		From    time.Time
		To      time.Time
	}{Ctx: ctx, OwnerID: ownerID, From: from, To: to}
	mock.lockListActiveDueBetween.Lock()
	mock.calls.ListActiveDueBetween = append(mock.calls.ListActiveDueBetween, callInfo)
	mock.lockListActiveDueBetween.Unlock()
	return mock.ListActiveDueBetweenFunc(ctx, ownerID, from, to)
}

func (mock *deadlineRepoMock) ListActiveDueBetweenCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	From    time.Time
	To      time.Time
} {
	mock.lockListActiveDueBetween.RLock()
	calls := mock.calls.ListActiveDueBetween
	mock.lockListActiveDueBetween.RUnlock()
	return calls
}

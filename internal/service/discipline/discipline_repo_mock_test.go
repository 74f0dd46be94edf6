package discipline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var _ disciplineRepo = &disciplineRepoMock{}

type disciplineRepoMock struct {
	EnsureFunc func(ctx context.Context, ownerID uuid.UUID, date time.Time, now time.Time) (*domain.DisciplineEntry, error)
	UpsertFunc func(ctx context.Context, ownerID uuid.UUID, date time.Time, patch domain.DisciplinePatch, now time.Time) (*domain.DisciplineEntry, error)

	calls struct {
		Ensure []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Date    time.Time
			Now     time.Time
		}
		Upsert []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Date    time.Time
			Patch   domain.DisciplinePatch
			Now     time.Time
		}
	}
	lockEnsure sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *disciplineRepoMock) Ensure(ctx context.Context, ownerID uuid.UUID, date time.Time, now time.Time) (*domain.DisciplineEntry, error) {
	if mock.EnsureFunc == nil {
		panic("disciplineRepoMock.EnsureFunc: method is nil but disciplineRepo.Ensure was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Date    time.Time
		Now     time.Time
	}{Ctx: ctx, OwnerID: ownerID, Date: date, Now: now}
	mock.lockEnsure.Lock()
	mock.calls.Ensure = append(mock.calls.Ensure, callInfo)
	mock.lockEnsure.Unlock()
	return mock.EnsureFunc(ctx, ownerID, date, now)
}

func (mock *disciplineRepoMock) EnsureCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Date    time.Time
	Now     time.Time
} {
	mock.lockEnsure.RLock()
	calls := mock.calls.Ensure
	mock.lockEnsure.RUnlock()
	return calls
}

func (mock *disciplineRepoMock) Upsert(ctx context.Context, ownerID uuid.UUID, date time.Time, patch domain.DisciplinePatch, now time.Time) (*domain.DisciplineEntry, error) {
	if mock.UpsertFunc == nil {
		panic("disciplineRepoMock.UpsertFunc: method is nil but disciplineRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Date    time.Time
		Patch   domain.DisciplinePatch
		Now     time.Time
	}{Ctx: ctx, OwnerID: ownerID, Date: date, Patch: patch, Now: now}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, ownerID, date, patch, now)
}

func (mock *disciplineRepoMock) UpsertCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Date    time.Time
	Patch   domain.DisciplinePatch
	Now     time.Time
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

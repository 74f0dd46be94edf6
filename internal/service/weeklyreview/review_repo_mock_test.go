package weeklyreview

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	EnsureFunc func(ctx context.Context, ownerID uuid.UUID, weekID string, now time.Time) (*domain.WeeklyReview, error)
	SubmitFunc func(ctx context.Context, ownerID uuid.UUID, weekID string, refl domain.WeeklyReflection, now time.Time) (*domain.WeeklyReview, error)

	calls struct {
		Ensure []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			WeekID  string
			Now     time.Time
		}
		Submit []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			WeekID  string
			Refl    domain.WeeklyReflection
			Now     time.Time
		}
	}
	lockEnsure sync.RWMutex
	lockSubmit sync.RWMutex
}

func (mock *reviewRepoMock) Ensure(ctx context.Context, ownerID uuid.UUID, weekID string, now time.Time) (*domain.WeeklyReview, error) {
	if mock.EnsureFunc == nil {
		panic("reviewRepoMock.EnsureFunc: method is nil but reviewRepo.Ensure was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		WeekID  string
		Now     time.Time
	}{Ctx: ctx, OwnerID: ownerID, WeekID: weekID, Now: now}
	mock.lockEnsure.Lock()
	mock.calls.Ensure = append(mock.calls.Ensure, callInfo)
	mock.lockEnsure.Unlock()
	return mock.EnsureFunc(ctx, ownerID, weekID, now)
}

func (mock *reviewRepoMock) EnsureCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	WeekID  string
	Now     time.Time
} {
	mock.lockEnsure.RLock()
	calls := mock.calls.Ensure
	mock.lockEnsure.RUnlock()
	return calls
}

func (mock *reviewRepoMock) Submit(ctx context.Context, ownerID uuid.UUID, weekID string, refl domain.WeeklyReflection, now time.Time) (*domain.WeeklyReview, error) {
	if mock.SubmitFunc == nil {
		panic("reviewRepoMock.SubmitFunc: method is nil but reviewRepo.Submit was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		WeekID  string
		Refl    domain.WeeklyReflection
		Now     time.Time
	}{Ctx: ctx, OwnerID: ownerID, WeekID: weekID, Refl: refl, Now: now}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, ownerID, weekID, refl, now)
}

func (mock *reviewRepoMock) SubmitCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	WeekID  string
	Refl    domain.WeeklyReflection
	Now     time.Time
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

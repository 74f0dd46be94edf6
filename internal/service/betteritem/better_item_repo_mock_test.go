package betteritem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

var _ betterItemRepo = &betterItemRepoMock{}

type betterItemRepoMock struct {
	ListByDateFunc   func(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.BetterItem, error)
	CreateFunc       func(ctx context.Context, item domain.BetterItem) (*domain.BetterItem, error)
	SetCompletedFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, completed bool, now time.Time) (*domain.BetterItem, error)
	UpdateTitleFunc  func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, title string, now time.Time) (*domain.BetterItem, error)
	DeleteFunc       func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (bool, error)

	calls struct {
		ListByDate []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Date    time.Time
		}
		Create []struct {
			Ctx  context.Context
			Item domain.BetterItem
		}
		SetCompleted []struct {
			Ctx       context.Context
			OwnerID   uuid.UUID
			ID        uuid.UUID
			Completed bool
			Now       time.Time
		}
		UpdateTitle []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
			Title   string
			Now     time.Time
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockListByDate   sync.RWMutex
	lockCreate       sync.RWMutex
	lockSetCompleted sync.RWMutex
	lockUpdateTitle  sync.RWMutex
	lockDelete       sync.RWMutex
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

func (mock *betterItemRepoMock) Create(ctx context.Context, item domain.BetterItem) (*domain.BetterItem, error) {
	if mock.CreateFunc == nil {
		panic("betterItemRepoMock.CreateFunc: method is nil but betterItemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.BetterItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *betterItemRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item domain.BetterItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *betterItemRepoMock) SetCompleted(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, completed bool, now time.Time) (*domain.BetterItem, error) {
	if mock.SetCompletedFunc == nil {
		panic("betterItemRepoMock.SetCompletedFunc: method is nil but betterItemRepo.SetCompleted was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OwnerID   uuid.UUID
		ID        uuid.UUID
		Completed bool
		Now       time.Time
	}{Ctx: ctx, OwnerID: ownerID, ID: id, Completed: completed, Now: now}
	mock.lockSetCompleted.Lock()
	mock.calls.SetCompleted = append(mock.calls.SetCompleted, callInfo)
	mock.lockSetCompleted.Unlock()
	return mock.SetCompletedFunc(ctx, ownerID, id, completed, now)
}

func (mock *betterItemRepoMock) SetCompletedCalls() []struct {
	Ctx       context.Context
	OwnerID   uuid.UUID
	ID        uuid.UUID
	Completed bool
	Now       time.Time
} {
	mock.lockSetCompleted.RLock()
	calls := mock.calls.SetCompleted
	mock.lockSetCompleted.RUnlock()
	return calls
}

func (mock *betterItemRepoMock) UpdateTitle(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, title string, now time.Time) (*domain.BetterItem, error) {
	if mock.UpdateTitleFunc == nil {
		panic("betterItemRepoMock.UpdateTitleFunc: method is nil but betterItemRepo.UpdateTitle was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
		Title   string
		Now     time.Time
	}{Ctx: ctx, OwnerID: ownerID, ID: id, Title: title, Now: now}
	mock.lockUpdateTitle.Lock()
	mock.calls.UpdateTitle = append(mock.calls.UpdateTitle, callInfo)
	mock.lockUpdateTitle.Unlock()
	return mock.UpdateTitleFunc(ctx, ownerID, id, title, now)
}

func (mock *betterItemRepoMock) UpdateTitleCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
	Title   string
	Now     time.Time
} {
	mock.lockUpdateTitle.RLock()
	calls := mock.calls.UpdateTitle
	mock.lockUpdateTitle.RUnlock()
	return calls
}

func (mock *betterItemRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("betterItemRepoMock.DeleteFunc: method is nil but betterItemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *betterItemRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

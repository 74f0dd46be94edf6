// Package today assembles the composite view of the owner's current day.
package today

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

type dayRepo interface {
	Ensure(ctx context.Context, ownerID uuid.UUID, date, now time.Time) (*domain.Day, error)
}

type betterItemRepo interface {
	ListByDate(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.BetterItem, error)
}

type taskRepo interface {
	ListByDate(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.Task, error)
}

type disciplineRepo interface {
	Ensure(ctx context.Context, ownerID uuid.UUID, date, now time.Time) (*domain.DisciplineEntry, error)
}

type dietRepo interface {
	Ensure(ctx context.Context, ownerID uuid.UUID, date, now time.Time) (*domain.DietEntry, error)
}

type scheduleRepo interface {
	ListInstancesByDate(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.ScheduleBlockInstance, error)
}

type deadlineRepo interface {
	ListActiveDueBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.Deadline, error)
}

// WarningHorizonDays is how far ahead a deadline can trigger the Today warning.
const WarningHorizonDays = 3

// Service builds the Today view.
type Service struct {
	days        dayRepo
	betterItems betterItemRepo
	tasks       taskRepo
	discipline  disciplineRepo
	diet        dietRepo
	schedule    scheduleRepo
	deadlines   deadlineRepo
	log         *slog.Logger
	clock       func() time.Time
}

// NewService creates a new Today service.
func NewService(
	log *slog.Logger,
	days dayRepo,
	betterItems betterItemRepo,
	tasks taskRepo,
	discipline disciplineRepo,
	diet dietRepo,
	schedule scheduleRepo,
	deadlines deadlineRepo,
) *Service {
	return &Service{
		days:        days,
		betterItems: betterItems,
		tasks:       tasks,
		discipline:  discipline,
		diet:        diet,
		schedule:    schedule,
		deadlines:   deadlines,
		log:         log.With("service", "today"),
		clock:       time.Now,
	}
}

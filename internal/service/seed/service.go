// Package seed fills an owner's workspace with demo data for development.
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

type ownerRepo interface {
	CountOwned(ctx context.Context, ownerID uuid.UUID, table string) (int64, error)
	DeleteOwned(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type taskRepo interface {
	Create(ctx context.Context, t domain.Task) (*domain.Task, error)
}

type scheduleRepo interface {
	CreateInstance(ctx context.Context, b domain.ScheduleBlockInstance) (*domain.ScheduleBlockInstance, error)
}

type incomeRepo interface {
	Create(ctx context.Context, e domain.IncomeEntry) (*domain.IncomeEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service seeds, inspects and resets demo data for the caller's owner.
type Service struct {
	owners   ownerRepo
	tasks    taskRepo
	schedule scheduleRepo
	income   incomeRepo
	tx       txManager
	log      *slog.Logger
	clock    func() time.Time
}

// NewService creates a new Seed service.
func NewService(
	log *slog.Logger,
	owners ownerRepo,
	tasks taskRepo,
	schedule scheduleRepo,
	income incomeRepo,
	tx txManager,
) *Service {
	return &Service{
		owners:   owners,
		tasks:    tasks,
		schedule: schedule,
		income:   income,
		tx:       tx,
		log:      log.With("service", "seed"),
		clock:    time.Now,
	}
}

// Result counts the rows created by one seeding run.
type Result struct {
	Tasks          int
	ScheduleBlocks int
	IncomeEntries  int
}

// Status reports whether the owner already has seeded data.
type Status struct {
	Seeded bool
	Counts map[string]int64
}

// ResetResult is the outcome of wiping and reseeding an owner.
type ResetResult struct {
	Deleted int64
	Seeded  Result
}

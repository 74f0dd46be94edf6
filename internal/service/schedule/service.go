// Package schedule implements schedule definitions and today's time blocks.
package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

type scheduleRepo interface {
	ListInstancesByDate(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.ScheduleBlockInstance, error)
	CreateInstance(ctx context.Context, b domain.ScheduleBlockInstance) (*domain.ScheduleBlockInstance, error)
	UpdateInstance(ctx context.Context, ownerID, id uuid.UUID, patch domain.ScheduleBlockPatch, now time.Time) (*domain.ScheduleBlockInstance, error)
	DeleteInstance(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
	CreateDefinition(ctx context.Context, d domain.ScheduleBlockDefinition) (*domain.ScheduleBlockDefinition, error)
	ListEnabledDefinitions(ctx context.Context, ownerID uuid.UUID) ([]domain.ScheduleBlockDefinition, error)
}

// Service provides schedule operations scoped to the caller's owner.
type Service struct {
	schedule scheduleRepo
	log      *slog.Logger
	clock    func() time.Time
}

// NewService creates a new Schedule service.
func NewService(log *slog.Logger, schedule scheduleRepo) *Service {
	return &Service{
		schedule: schedule,
		log:      log.With("service", "schedule"),
		clock:    time.Now,
	}
}

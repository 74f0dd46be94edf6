// Package task implements today's user-created todo list.
package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

type taskRepo interface {
	ListByDate(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.Task, error)
	Create(ctx context.Context, t domain.Task) (*domain.Task, error)
	SetCompleted(ctx context.Context, ownerID, id uuid.UUID, completed bool, now time.Time) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}

// Service provides task operations scoped to the caller's owner.
type Service struct {
	tasks taskRepo
	log   *slog.Logger
	clock func() time.Time
}

// NewService creates a new Task service.
func NewService(log *slog.Logger, tasks taskRepo) *Service {
	return &Service{
		tasks: tasks,
		log:   log.With("service", "task"),
		clock: time.Now,
	}
}

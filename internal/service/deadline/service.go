// Package deadline implements long-lived goals with a computed days-left.
package deadline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

type deadlineRepo interface {
	ListActive(ctx context.Context, ownerID uuid.UUID) ([]domain.Deadline, error)
	Create(ctx context.Context, d domain.Deadline) (*domain.Deadline, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch domain.DeadlinePatch, now time.Time) (*domain.Deadline, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
	ListAllActive(ctx context.Context) ([]domain.Deadline, error)
	CreateSnapshot(ctx context.Context, s domain.DeadlineStatusSnapshot) (bool, error)
}

// Item is a deadline together with its days-left relative to the request day.
type Item struct {
	domain.Deadline
	DaysLeft int
}

// Service provides deadline operations scoped to the caller's owner.
type Service struct {
	deadlines deadlineRepo
	log       *slog.Logger
	clock     func() time.Time
}

// NewService creates a new Deadline service.
func NewService(log *slog.Logger, deadlines deadlineRepo) *Service {
	return &Service{
		deadlines: deadlines,
		log:       log.With("service", "deadline"),
		clock:     time.Now,
	}
}

func (s *Service) today() time.Time {
	return domain.DateOf(s.clock())
}

func withDaysLeft(d domain.Deadline, today time.Time) Item {
	return Item{Deadline: d, DaysLeft: d.DaysLeft(today)}
}

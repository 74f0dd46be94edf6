// Package betteritem implements the "what makes today better" focus list.
package betteritem

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

const entity = "BetterItem"

type betterItemRepo interface {
	ListByDate(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]domain.BetterItem, error)
	Create(ctx context.Context, item domain.BetterItem) (*domain.BetterItem, error)
	SetCompleted(ctx context.Context, ownerID, id uuid.UUID, completed bool, now time.Time) (*domain.BetterItem, error)
	UpdateTitle(ctx context.Context, ownerID, id uuid.UUID, title string, now time.Time) (*domain.BetterItem, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}

// Service provides better-item operations scoped to the caller's owner.
type Service struct {
	items betterItemRepo
	log   *slog.Logger
	clock func() time.Time
}

// NewService creates a new BetterItem service.
func NewService(log *slog.Logger, items betterItemRepo) *Service {
	return &Service{
		items: items,
		log:   log.With("service", "betteritem"),
		clock: time.Now,
	}
}

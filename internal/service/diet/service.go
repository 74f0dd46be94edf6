// Package diet implements daily diet compliance tracking.
package diet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

type dietRepo interface {
	Ensure(ctx context.Context, ownerID uuid.UUID, date, now time.Time) (*domain.DietEntry, error)
	Upsert(ctx context.Context, ownerID uuid.UUID, date time.Time, patch domain.DietPatch, now time.Time) (*domain.DietEntry, error)
}

// Service provides diet operations scoped to the caller's owner.
type Service struct {
	entries dietRepo
	log     *slog.Logger
	clock   func() time.Time
}

// NewService creates a new Diet service.
func NewService(log *slog.Logger, entries dietRepo) *Service {
	return &Service{
		entries: entries,
		log:     log.With("service", "diet"),
		clock:   time.Now,
	}
}

// GetToday returns today's entry, creating a default one on first access.
func (s *Service) GetToday(ctx context.Context) (*domain.DietEntry, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock().UTC()
	entry, err := s.entries.Ensure(ctx, ownerID, domain.DateOf(now), now)
	if err != nil {
		return nil, fmt.Errorf("get diet entry: %w", err)
	}
	return entry, nil
}

// UpdateToday applies the present fields of input to today's entry.
func (s *Service) UpdateToday(ctx context.Context, input UpdateTodayInput) (*domain.DietEntry, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	entry, err := s.entries.Upsert(ctx, ownerID, domain.DateOf(now), input.Patch, now)
	if err != nil {
		return nil, fmt.Errorf("update diet entry: %w", err)
	}

	s.log.InfoContext(ctx, "diet entry updated",
		slog.String("owner_id", ownerID.String()),
		slog.Bool("compliant", entry.Compliant),
	)

	return entry, nil
}

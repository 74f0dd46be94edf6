// Package discipline implements the daily habit checklist.
package discipline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

type disciplineRepo interface {
	Ensure(ctx context.Context, ownerID uuid.UUID, date, now time.Time) (*domain.DisciplineEntry, error)
	Upsert(ctx context.Context, ownerID uuid.UUID, date time.Time, patch domain.DisciplinePatch, now time.Time) (*domain.DisciplineEntry, error)
}

// Service provides discipline operations scoped to the caller's owner.
type Service struct {
	entries disciplineRepo
	log     *slog.Logger
	clock   func() time.Time
}

// NewService creates a new Discipline service.
func NewService(log *slog.Logger, entries disciplineRepo) *Service {
	return &Service{
		entries: entries,
		log:     log.With("service", "discipline"),
		clock:   time.Now,
	}
}

// GetToday returns today's entry, creating an all-false one on first access.
func (s *Service) GetToday(ctx context.Context) (*domain.DisciplineEntry, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock().UTC()
	entry, err := s.entries.Ensure(ctx, ownerID, domain.DateOf(now), now)
	if err != nil {
		return nil, fmt.Errorf("get discipline entry: %w", err)
	}
	return entry, nil
}

// UpdateToday applies the present fields of input to today's entry.
// Absent fields keep their stored value; explicit false or "" overwrite.
func (s *Service) UpdateToday(ctx context.Context, input UpdateTodayInput) (*domain.DisciplineEntry, error) {
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
		return nil, fmt.Errorf("update discipline entry: %w", err)
	}

	s.log.InfoContext(ctx, "discipline entry updated",
		slog.String("owner_id", ownerID.String()),
		slog.Int("fields", len(input.Patch.Columns())),
	)

	return entry, nil
}

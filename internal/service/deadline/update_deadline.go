package deadline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// Update applies the present fields of input to the caller's deadline.
func (s *Service) Update(ctx context.Context, input UpdateDeadlineInput) (*Item, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock().UTC()
	today := domain.DateOf(now)
	if err := input.Validate(today); err != nil {
		return nil, err
	}

	d, err := s.deadlines.Update(ctx, ownerID, input.ID, input.patch(), now)
	if err != nil {
		return nil, fmt.Errorf("update deadline: %w", err)
	}

	s.log.InfoContext(ctx, "deadline updated",
		slog.String("owner_id", ownerID.String()),
		slog.String("deadline_id", d.ID.String()),
		slog.String("status", d.Status.Wire()),
	)

	item := withDaysLeft(*d, today)
	return &item, nil
}

// Delete removes the caller's deadline and reports whether it existed.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	deleted, err := s.deadlines.Delete(ctx, ownerID, id)
	if err != nil {
		return false, fmt.Errorf("delete deadline: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "deadline deleted",
			slog.String("owner_id", ownerID.String()),
			slog.String("deadline_id", id.String()),
		)
	}
	return deleted, nil
}

package betteritem

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// Complete marks the caller's item as done.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*domain.BetterItem, error) {
	return s.setCompleted(ctx, id, true, "complete", "better item completed")
}

// Accept confirms the item while keeping it pending (completed=false).
func (s *Service) Accept(ctx context.Context, id uuid.UUID) (*domain.BetterItem, error) {
	return s.setCompleted(ctx, id, false, "accept", "better item accepted")
}

// Edit changes only the item's title.
func (s *Service) Edit(ctx context.Context, input EditItemInput) (*domain.BetterItem, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.UpdateTitle(ctx, ownerID, input.ID, strings.TrimSpace(input.Title), s.clock().UTC())
	if err != nil {
		return nil, fmt.Errorf("edit better item: %w", err)
	}

	s.log.InfoContext(ctx, "better item edited",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_id", input.ID.String()),
	)

	return item, nil
}

// Reject deletes the item. Rejecting an unknown item is a not-found error.
func (s *Service) Reject(ctx context.Context, id uuid.UUID) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	deleted, err := s.items.Delete(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("reject better item: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(entity, id)
	}

	s.log.InfoContext(ctx, "better item rejected",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_id", id.String()),
	)

	return nil
}

func (s *Service) setCompleted(ctx context.Context, id uuid.UUID, completed bool, verb, logMsg string) (*domain.BetterItem, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.items.SetCompleted(ctx, ownerID, id, completed, s.clock().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s better item: %w", verb, err)
	}

	s.log.InfoContext(ctx, logMsg,
		slog.String("owner_id", ownerID.String()),
		slog.String("item_id", id.String()),
	)

	return item, nil
}

package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// CreateBlock adds a user block to today's schedule.
func (s *Service) CreateBlock(ctx context.Context, input CreateBlockInput) (*domain.ScheduleBlockInstance, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	b, err := s.schedule.CreateInstance(ctx, domain.ScheduleBlockInstance{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Date:      domain.DateOf(now),
		Title:     strings.TrimSpace(input.Title),
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Source:    domain.SourceUser,
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create schedule block: %w", err)
	}

	s.log.InfoContext(ctx, "schedule block created",
		slog.String("owner_id", ownerID.String()),
		slog.String("block_id", b.ID.String()),
	)

	return b, nil
}

// UpdateBlock applies the present fields of input to the caller's block.
func (s *Service) UpdateBlock(ctx context.Context, input UpdateBlockInput) (*domain.ScheduleBlockInstance, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.schedule.UpdateInstance(ctx, ownerID, input.ID, input.patch(), s.clock().UTC())
	if err != nil {
		return nil, fmt.Errorf("update schedule block: %w", err)
	}

	s.log.InfoContext(ctx, "schedule block updated",
		slog.String("owner_id", ownerID.String()),
		slog.String("block_id", b.ID.String()),
	)

	return b, nil
}

// DeleteBlock removes the caller's block and reports whether it existed.
func (s *Service) DeleteBlock(ctx context.Context, id uuid.UUID) (bool, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	deleted, err := s.schedule.DeleteInstance(ctx, ownerID, id)
	if err != nil {
		return false, fmt.Errorf("delete schedule block: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "schedule block deleted",
			slog.String("owner_id", ownerID.String()),
			slog.String("block_id", id.String()),
		)
	}
	return deleted, nil
}

package schedule

import (
	"context"
	"fmt"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// ListToday returns today's blocks ordered by start time.
func (s *Service) ListToday(ctx context.Context) ([]domain.ScheduleBlockInstance, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	blocks, err := s.schedule.ListInstancesByDate(ctx, ownerID, domain.DateOf(s.clock()))
	if err != nil {
		return nil, fmt.Errorf("list schedule blocks: %w", err)
	}
	return blocks, nil
}

// ListDefinitions returns the caller's enabled definitions, highest priority first.
func (s *Service) ListDefinitions(ctx context.Context) ([]domain.ScheduleBlockDefinition, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	defs, err := s.schedule.ListEnabledDefinitions(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list schedule definitions: %w", err)
	}
	return defs, nil
}

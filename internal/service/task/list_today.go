package task

import (
	"context"
	"fmt"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// ListToday returns the caller's tasks for the current UTC day.
func (s *Service) ListToday(ctx context.Context) ([]domain.Task, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tasks, err := s.tasks.ListByDate(ctx, ownerID, domain.DateOf(s.clock()))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

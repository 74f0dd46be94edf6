package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// Complete marks the caller's task as done.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.tasks.SetCompleted(ctx, ownerID, id, true, s.clock().UTC())
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}

	s.log.InfoContext(ctx, "task completed",
		slog.String("owner_id", ownerID.String()),
		slog.String("task_id", id.String()),
	)

	return t, nil
}

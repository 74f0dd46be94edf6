package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// Delete removes the caller's task and reports whether it existed.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	deleted, err := s.tasks.Delete(ctx, ownerID, id)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "task deleted",
			slog.String("owner_id", ownerID.String()),
			slog.String("task_id", id.String()),
		)
	}

	return deleted, nil
}

package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// Create adds an open, user-sourced task to today.
func (s *Service) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	category, _ := domain.ParseCategory(input.Category)
	now := s.clock().UTC()

	t, err := s.tasks.Create(ctx, domain.Task{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Date:      domain.DateOf(now),
		Title:     strings.TrimSpace(input.Title),
		Category:  category,
		Completed: false,
		Source:    domain.SourceUser,
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("owner_id", ownerID.String()),
		slog.String("task_id", t.ID.String()),
		slog.String("category", string(t.Category)),
	)

	return t, nil
}

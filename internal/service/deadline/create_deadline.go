package deadline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/pkg/ctxutil"
)

// Create adds an on-track deadline. Importance defaults to 3.
func (s *Service) Create(ctx context.Context, input CreateDeadlineInput) (*Item, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock().UTC()
	today := domain.DateOf(now)
	if err := input.Validate(today); err != nil {
		return nil, err
	}

	due, _ := domain.ParseDate(input.DueDate)
	importance := domain.DefaultImportance
	if input.Importance != nil {
		importance = *input.Importance
	}

	d, err := s.deadlines.Create(ctx, domain.Deadline{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Title:      strings.TrimSpace(input.Title),
		DueDate:    due,
		Importance: importance,
		Status:     domain.DeadlineStatusOnTrack,
		CreatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("create deadline: %w", err)
	}

	s.log.InfoContext(ctx, "deadline created",
		slog.String("owner_id", ownerID.String()),
		slog.String("deadline_id", d.ID.String()),
		slog.String("due_date", domain.FormatDate(d.DueDate)),
	)

	item := withDaysLeft(*d, today)
	return &item, nil
}

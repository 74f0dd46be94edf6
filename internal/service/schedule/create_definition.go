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

// CreateDefinition stores a new block template for the caller.
func (s *Service) CreateDefinition(ctx context.Context, input CreateDefinitionInput) (*domain.ScheduleBlockDefinition, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	kind, _ := domain.ParseBlockKind(input.Kind)
	recurrence := domain.RecurrenceNone
	if input.Recurrence != "" {
		recurrence, _ = domain.ParseRecurrence(input.Recurrence)
	}
	energy := domain.EnergyMedium
	if input.Energy != "" {
		energy, _ = domain.ParseEnergy(input.Energy)
	}
	var timeTag *domain.TimeTag
	if input.PreferredTimeTag != nil {
		tag, _ := domain.ParseTimeTag(*input.PreferredTimeTag)
		timeTag = &tag
	}
	priority := defaultPriority
	if input.Priority != nil {
		priority = *input.Priority
	}
	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	d, err := s.schedule.CreateDefinition(ctx, domain.ScheduleBlockDefinition{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Title:            strings.TrimSpace(input.Title),
		Kind:             kind,
		Recurrence:       recurrence,
		DaysOfWeek:       input.DaysOfWeek,
		MinPerWeek:       input.MinPerWeek,
		MaxPerWeek:       input.MaxPerWeek,
		FixedStartTime:   input.FixedStartTime,
		FixedEndTime:     input.FixedEndTime,
		DurationMinutes:  input.DurationMinutes,
		PreferredTimeTag: timeTag,
		Energy:           energy,
		Tags:             input.Tags,
		Priority:         priority,
		Enabled:          enabled,
		CreatedAt:        s.clock().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create schedule definition: %w", err)
	}

	s.log.InfoContext(ctx, "schedule definition created",
		slog.String("owner_id", ownerID.String()),
		slog.String("definition_id", d.ID.String()),
		slog.String("kind", d.Kind.String()),
	)

	return d, nil
}

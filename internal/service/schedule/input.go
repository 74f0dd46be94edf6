package schedule

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

const (
	// MaxTitleLength bounds definition and block titles in characters.
	MaxTitleLength = 200

	defaultPriority = 3
)

// CreateDefinitionInput holds the parameters for a schedule definition.
// Empty Recurrence means "none"; empty Energy means "medium".
type CreateDefinitionInput struct {
	Title            string
	Kind             string
	Recurrence       string
	DaysOfWeek       []int
	MinPerWeek       *int
	MaxPerWeek       *int
	FixedStartTime   *string
	FixedEndTime     *string
	DurationMinutes  int
	PreferredTimeTag *string
	Energy           string
	Tags             []string
	Priority         *int
	Enabled          *bool
}

// Validate checks all fields and collects all errors.
func (i CreateDefinitionInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title)

	kind, kindOK := domain.ParseBlockKind(i.Kind)
	if !kindOK {
		errs = append(errs, enumError("kind", domain.BlockKindValues()))
	}

	recurrence := domain.RecurrenceNone
	if i.Recurrence != "" {
		r, ok := domain.ParseRecurrence(i.Recurrence)
		if !ok {
			errs = append(errs, enumError("recurrence", domain.RecurrenceValues()))
		}
		recurrence = r
	}

	if recurrence == domain.RecurrenceWeekly && len(i.DaysOfWeek) == 0 {
		errs = append(errs, domain.FieldError{Field: "daysOfWeek", Message: "required for weekly recurrence"})
	}
	for _, d := range i.DaysOfWeek {
		if d < 0 || d > 6 {
			errs = append(errs, domain.FieldError{Field: "daysOfWeek", Message: "each day must be between 0 and 6"})
			break
		}
	}

	if kindOK && kind == domain.BlockKindFlexible {
		if i.MinPerWeek == nil {
			errs = append(errs, domain.FieldError{Field: "minPerWeek", Message: "required for flexible blocks"})
		}
		if i.MaxPerWeek == nil {
			errs = append(errs, domain.FieldError{Field: "maxPerWeek", Message: "required for flexible blocks"})
		}
	}
	if i.MinPerWeek != nil && *i.MinPerWeek < 0 {
		errs = append(errs, domain.FieldError{Field: "minPerWeek", Message: "must be 0 or greater"})
	}
	if i.MaxPerWeek != nil && *i.MaxPerWeek <= 0 {
		errs = append(errs, domain.FieldError{Field: "maxPerWeek", Message: "must be greater than 0"})
	}
	if i.MinPerWeek != nil && i.MaxPerWeek != nil && *i.MaxPerWeek < *i.MinPerWeek {
		errs = append(errs, domain.FieldError{Field: "maxPerWeek", Message: "must be greater than or equal to minPerWeek"})
	}

	if kindOK && kind == domain.BlockKindFixed {
		if i.FixedStartTime == nil {
			errs = append(errs, domain.FieldError{Field: "fixedStartTime", Message: "required for fixed blocks"})
		}
		if i.FixedEndTime == nil {
			errs = append(errs, domain.FieldError{Field: "fixedEndTime", Message: "required for fixed blocks"})
		}
	}
	errs = validateClock(errs, "fixedStartTime", i.FixedStartTime)
	errs = validateClock(errs, "fixedEndTime", i.FixedEndTime)

	if i.DurationMinutes <= 0 {
		errs = append(errs, domain.FieldError{Field: "durationMinutes", Message: "must be greater than 0"})
	}

	if i.PreferredTimeTag != nil {
		if _, ok := domain.ParseTimeTag(*i.PreferredTimeTag); !ok {
			errs = append(errs, enumError("preferredTimeTag", domain.TimeTagValues()))
		}
	}

	if i.Energy != "" {
		if _, ok := domain.ParseEnergy(i.Energy); !ok {
			errs = append(errs, enumError("energy", domain.EnergyValues()))
		}
	}

	if i.Priority != nil && (*i.Priority < 1 || *i.Priority > 5) {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateBlockInput holds the parameters for a block on today's schedule.
type CreateBlockInput struct {
	Title     string
	StartTime string
	EndTime   string
}

// Validate checks all fields and collects all errors.
func (i CreateBlockInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title)
	errs = validateClock(errs, "startTime", &i.StartTime)
	errs = validateClock(errs, "endTime", &i.EndTime)
	errs = validateOrder(errs, i.StartTime, i.EndTime)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateBlockInput holds a partial update of a block. Nil fields are left unchanged.
type UpdateBlockInput struct {
	ID        uuid.UUID
	Title     *string
	StartTime *string
	EndTime   *string
}

// Validate checks the present fields and collects all errors.
func (i UpdateBlockInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	errs = validateClock(errs, "startTime", i.StartTime)
	errs = validateClock(errs, "endTime", i.EndTime)
	if i.StartTime != nil && i.EndTime != nil {
		errs = validateOrder(errs, *i.StartTime, *i.EndTime)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateBlockInput) patch() domain.ScheduleBlockPatch {
	var p domain.ScheduleBlockPatch
	if i.Title != nil {
		p.Title = domain.Some(strings.TrimSpace(*i.Title))
	}
	p.StartTime = domain.OptionalFromPtr(i.StartTime)
	p.EndTime = domain.OptionalFromPtr(i.EndTime)
	return p
}

func validateTitle(errs []domain.FieldError, raw string) []domain.FieldError {
	title := strings.TrimSpace(raw)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

func validateClock(errs []domain.FieldError, field string, v *string) []domain.FieldError {
	if v == nil {
		return errs
	}
	if *v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if !domain.IsClock(*v) {
		return append(errs, domain.FieldError{Field: field, Message: "must be in HH:mm format", Code: "invalid_format"})
	}
	return errs
}

// validateOrder only reports when both values are well-formed.
func validateOrder(errs []domain.FieldError, start, end string) []domain.FieldError {
	s, err := domain.ParseClock(start)
	if err != nil {
		return errs
	}
	e, err := domain.ParseClock(end)
	if err != nil {
		return errs
	}
	if s >= e {
		return append(errs, domain.FieldError{Field: "endTime", Message: "must be after startTime"})
	}
	return errs
}

func enumError(field string, values []string) domain.FieldError {
	return domain.FieldError{
		Field:   field,
		Message: "must be one of: " + strings.Join(values, ", "),
		Code:    "invalid_enum",
	}
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/schedule"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

type scheduleService interface {
	ListToday(ctx context.Context) ([]domain.ScheduleBlockInstance, error)
	ListDefinitions(ctx context.Context) ([]domain.ScheduleBlockDefinition, error)
	CreateDefinition(ctx context.Context, input schedule.CreateDefinitionInput) (*domain.ScheduleBlockDefinition, error)
	CreateBlock(ctx context.Context, input schedule.CreateBlockInput) (*domain.ScheduleBlockInstance, error)
	UpdateBlock(ctx context.Context, input schedule.UpdateBlockInput) (*domain.ScheduleBlockInstance, error)
	DeleteBlock(ctx context.Context, id uuid.UUID) (bool, error)
}

// ScheduleHandler serves /api/schedule.
type ScheduleHandler struct {
	svc scheduleService
	log *slog.Logger
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: logger.With("handler", "schedule")}
}

type createDefinitionRequest struct {
	Title            string   `json:"title"`
	Kind             string   `json:"kind"`
	Recurrence       string   `json:"recurrence"`
	DaysOfWeek       []int    `json:"daysOfWeek"`
	MinPerWeek       *int     `json:"minPerWeek"`
	MaxPerWeek       *int     `json:"maxPerWeek"`
	FixedStartTime   *string  `json:"fixedStartTime"`
	FixedEndTime     *string  `json:"fixedEndTime"`
	DurationMinutes  int      `json:"durationMinutes"`
	PreferredTimeTag *string  `json:"preferredTimeTag"`
	Energy           string   `json:"energy"`
	Tags             []string `json:"tags"`
	Priority         *int     `json:"priority"`
	Enabled          *bool    `json:"enabled"`
}

type createBlockRequest struct {
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type updateBlockRequest struct {
	ID        *string `json:"id"`
	Title     *string `json:"title"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

type blockResponse struct {
	ID           string  `json:"id"`
	DefinitionID *string `json:"definitionId"`
	Date         string  `json:"date"`
	Title        string  `json:"title"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Locked       bool    `json:"locked"`
	Source       string  `json:"source"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    *string `json:"updatedAt,omitempty"`
}

type definitionResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Kind             string   `json:"kind"`
	Recurrence       string   `json:"recurrence"`
	DaysOfWeek       []int    `json:"daysOfWeek"`
	MinPerWeek       *int     `json:"minPerWeek"`
	MaxPerWeek       *int     `json:"maxPerWeek"`
	FixedStartTime   *string  `json:"fixedStartTime"`
	FixedEndTime     *string  `json:"fixedEndTime"`
	DurationMinutes  int      `json:"durationMinutes"`
	PreferredTimeTag *string  `json:"preferredTimeTag"`
	Energy           string   `json:"energy"`
	Tags             []string `json:"tags"`
	Priority         int      `json:"priority"`
	Enabled          bool     `json:"enabled"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        *string  `json:"updatedAt,omitempty"`
}

// ListToday handles GET /api/schedule.
func (h *ScheduleHandler) ListToday(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.svc.ListToday(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]blockResponse, len(blocks))
	for i, b := range blocks {
		out[i] = toBlockResponse(b)
	}
	envelope.OK(w, http.StatusOK, out, "")
}

// ListDefinitions handles GET /api/schedule/definitions.
func (h *ScheduleHandler) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	defs, err := h.svc.ListDefinitions(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]definitionResponse, len(defs))
	for i, d := range defs {
		out[i] = toDefinitionResponse(d)
	}
	envelope.OK(w, http.StatusOK, out, "")
}

// CreateDefinition handles POST /api/schedule/definitions.
func (h *ScheduleHandler) CreateDefinition(w http.ResponseWriter, r *http.Request) {
	var req createDefinitionRequest
	if !readBody(w, r, &req) {
		return
	}

	def, err := h.svc.CreateDefinition(r.Context(), schedule.CreateDefinitionInput{
		Title:            req.Title,
		Kind:             req.Kind,
		Recurrence:       req.Recurrence,
		DaysOfWeek:       req.DaysOfWeek,
		MinPerWeek:       req.MinPerWeek,
		MaxPerWeek:       req.MaxPerWeek,
		FixedStartTime:   req.FixedStartTime,
		FixedEndTime:     req.FixedEndTime,
		DurationMinutes:  req.DurationMinutes,
		PreferredTimeTag: req.PreferredTimeTag,
		Energy:           req.Energy,
		Tags:             req.Tags,
		Priority:         req.Priority,
		Enabled:          req.Enabled,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusCreated, toDefinitionResponse(*def), "Schedule definition created successfully")
}

// CreateBlock handles POST /api/schedule/blocks.
func (h *ScheduleHandler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	var req createBlockRequest
	if !readBody(w, r, &req) {
		return
	}

	block, err := h.svc.CreateBlock(r.Context(), schedule.CreateBlockInput{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusCreated, toBlockResponse(*block), "Schedule block created successfully")
}

// UpdateBlock handles PUT /api/schedule/{id}.
func (h *ScheduleHandler) UpdateBlock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateBlockRequest
	if !readBody(w, r, &req) || !matchesPathID(w, id, req.ID) {
		return
	}

	block, err := h.svc.UpdateBlock(r.Context(), schedule.UpdateBlockInput{
		ID:        id,
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toBlockResponse(*block), "Schedule block updated successfully")
}

// DeleteBlock handles DELETE /api/schedule/{id}.
func (h *ScheduleHandler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.svc.DeleteBlock(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if !deleted {
		envelope.Fail(w, http.StatusNotFound, "Schedule block not found")
		return
	}
	envelope.OK(w, http.StatusOK, nil, "Schedule block deleted successfully")
}

func toBlockResponse(b domain.ScheduleBlockInstance) blockResponse {
	var defID *string
	if b.DefinitionID != nil {
		s := b.DefinitionID.String()
		defID = &s
	}
	return blockResponse{
		ID:           b.ID.String(),
		DefinitionID: defID,
		Date:         domain.FormatDate(b.Date),
		Title:        b.Title,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Locked:       b.Locked,
		Source:       b.Source.String(),
		CreatedAt:    timestamp(b.CreatedAt),
		UpdatedAt:    optTimestamp(b.UpdatedAt),
	}
}

func toDefinitionResponse(d domain.ScheduleBlockDefinition) definitionResponse {
	var tag *string
	if d.PreferredTimeTag != nil {
		s := d.PreferredTimeTag.String()
		tag = &s
	}
	days := d.DaysOfWeek
	if days == nil {
		days = []int{}
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return definitionResponse{
		ID:               d.ID.String(),
		Title:            d.Title,
		Kind:             d.Kind.String(),
		Recurrence:       d.Recurrence.String(),
		DaysOfWeek:       days,
		MinPerWeek:       d.MinPerWeek,
		MaxPerWeek:       d.MaxPerWeek,
		FixedStartTime:   d.FixedStartTime,
		FixedEndTime:     d.FixedEndTime,
		DurationMinutes:  d.DurationMinutes,
		PreferredTimeTag: tag,
		Energy:           d.Energy.String(),
		Tags:             tags,
		Priority:         d.Priority,
		Enabled:          d.Enabled,
		CreatedAt:        timestamp(d.CreatedAt),
		UpdatedAt:        optTimestamp(d.UpdatedAt),
	}
}

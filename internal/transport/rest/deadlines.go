package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/deadline"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

type deadlineService interface {
	List(ctx context.Context) ([]deadline.Item, error)
	Create(ctx context.Context, input deadline.CreateDeadlineInput) (*deadline.Item, error)
	Update(ctx context.Context, input deadline.UpdateDeadlineInput) (*deadline.Item, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// DeadlineHandler serves /api/deadlines.
type DeadlineHandler struct {
	svc deadlineService
	log *slog.Logger
}

// NewDeadlineHandler creates a DeadlineHandler.
func NewDeadlineHandler(svc deadlineService, logger *slog.Logger) *DeadlineHandler {
	return &DeadlineHandler{svc: svc, log: logger.With("handler", "deadline")}
}

type createDeadlineRequest struct {
	Title      string `json:"title"`
	DueDate    string `json:"dueDate"`
	Importance *int   `json:"importance"`
}

type updateDeadlineRequest struct {
	ID         *string `json:"id"`
	Title      *string `json:"title"`
	DueDate    *string `json:"dueDate"`
	Importance *int    `json:"importance"`
	Status     *string `json:"status"`
}

type deadlineResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	DueDate    string  `json:"dueDate"`
	Importance int     `json:"importance"`
	Status     string  `json:"status"`
	DaysLeft   int     `json:"daysLeft"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  *string `json:"updatedAt,omitempty"`
}

// List handles GET /api/deadlines.
func (h *DeadlineHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]deadlineResponse, len(items))
	for i, item := range items {
		out[i] = toDeadlineResponse(item)
	}
	envelope.OK(w, http.StatusOK, out, "")
}

// Create handles POST /api/deadlines.
func (h *DeadlineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDeadlineRequest
	if !readBody(w, r, &req) {
		return
	}

	item, err := h.svc.Create(r.Context(), deadline.CreateDeadlineInput{
		Title:      req.Title,
		DueDate:    req.DueDate,
		Importance: req.Importance,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusCreated, toDeadlineResponse(*item), "Deadline created successfully")
}

// Update handles PUT /api/deadlines/{id}.
func (h *DeadlineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateDeadlineRequest
	if !readBody(w, r, &req) || !matchesPathID(w, id, req.ID) {
		return
	}

	item, err := h.svc.Update(r.Context(), deadline.UpdateDeadlineInput{
		ID:         id,
		Title:      req.Title,
		DueDate:    req.DueDate,
		Importance: req.Importance,
		Status:     req.Status,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toDeadlineResponse(*item), "Deadline updated successfully")
}

// Delete handles DELETE /api/deadlines/{id}.
func (h *DeadlineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if !deleted {
		envelope.Fail(w, http.StatusNotFound, "Deadline not found")
		return
	}
	envelope.OK(w, http.StatusOK, nil, "Deadline deleted successfully")
}

func toDeadlineResponse(item deadline.Item) deadlineResponse {
	return deadlineResponse{
		ID:         item.ID.String(),
		Title:      item.Title,
		DueDate:    domain.FormatDate(item.DueDate),
		Importance: item.Importance,
		Status:     item.Status.Wire(),
		DaysLeft:   item.DaysLeft,
		CreatedAt:  timestamp(item.CreatedAt),
		UpdatedAt:  optTimestamp(item.UpdatedAt),
	}
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/task"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

type taskService interface {
	ListToday(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// TaskHandler serves /api/tasks.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type completeTaskRequest struct {
	ID *string `json:"id"`
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.ListToday(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toTaskResponses(tasks), "")
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if !readBody(w, r, &req) {
		return
	}

	t, err := h.svc.Create(r.Context(), task.CreateTaskInput{Title: req.Title, Category: req.Category})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusCreated, toTaskResponse(*t), "Task created successfully")
}

// Complete handles POST /api/tasks/{id}/complete.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req completeTaskRequest
	if !readOptionalBody(w, r, &req) || !matchesPathID(w, id, req.ID) {
		return
	}

	t, err := h.svc.Complete(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toTaskResponse(*t), "Task completed successfully")
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
		envelope.Fail(w, http.StatusNotFound, "Task not found")
		return
	}
	envelope.OK(w, http.StatusOK, nil, "Task deleted successfully")
}

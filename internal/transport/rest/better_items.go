package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/betteritem"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

type betterItemService interface {
	ListToday(ctx context.Context) ([]domain.BetterItem, error)
	Create(ctx context.Context, input betteritem.CreateItemInput) (*domain.BetterItem, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.BetterItem, error)
	Accept(ctx context.Context, id uuid.UUID) (*domain.BetterItem, error)
	Edit(ctx context.Context, input betteritem.EditItemInput) (*domain.BetterItem, error)
	Reject(ctx context.Context, id uuid.UUID) error
}

// BetterItemHandler serves /api/better-items. The mutating endpoints carry
// the item id in the body rather than the path.
type BetterItemHandler struct {
	svc betterItemService
	log *slog.Logger
}

// NewBetterItemHandler creates a BetterItemHandler.
func NewBetterItemHandler(svc betterItemService, logger *slog.Logger) *BetterItemHandler {
	return &BetterItemHandler{svc: svc, log: logger.With("handler", "better_item")}
}

type createBetterItemRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type betterItemIDRequest struct {
	ID string `json:"id"`
}

type editBetterItemRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// List handles GET /api/better-items.
func (h *BetterItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListToday(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toBetterItemResponses(items), "")
}

// Create handles POST /api/better-items.
func (h *BetterItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBetterItemRequest
	if !readBody(w, r, &req) {
		return
	}

	item, err := h.svc.Create(r.Context(), betteritem.CreateItemInput{Title: req.Title, Category: req.Category})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusCreated, toBetterItemResponse(*item), "Better item created successfully")
}

// Complete handles POST /api/better-items/complete.
func (h *BetterItemHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.Complete, "Better item completed successfully")
}

// Accept handles POST /api/better-items/accept.
func (h *BetterItemHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.Accept, "Better item accepted successfully")
}

func (h *BetterItemHandler) toggle(
	w http.ResponseWriter,
	r *http.Request,
	apply func(context.Context, uuid.UUID) (*domain.BetterItem, error),
	message string,
) {
	var req betterItemIDRequest
	if !readBody(w, r, &req) {
		return
	}
	id, ok := bodyID(w, req.ID)
	if !ok {
		return
	}

	item, err := apply(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toBetterItemResponse(*item), message)
}

// Edit handles POST /api/better-items/edit.
func (h *BetterItemHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req editBetterItemRequest
	if !readBody(w, r, &req) {
		return
	}
	id, ok := bodyID(w, req.ID)
	if !ok {
		return
	}

	item, err := h.svc.Edit(r.Context(), betteritem.EditItemInput{ID: id, Title: req.Title})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toBetterItemResponse(*item), "Better item edited successfully")
}

// Reject handles POST /api/better-items/reject.
func (h *BetterItemHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req betterItemIDRequest
	if !readBody(w, r, &req) {
		return
	}
	id, ok := bodyID(w, req.ID)
	if !ok {
		return
	}

	if err := h.svc.Reject(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, nil, "Better item rejected successfully")
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/weeklyreview"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

type weeklyReviewService interface {
	Current(ctx context.Context) (*domain.WeeklyReview, error)
	Submit(ctx context.Context, input weeklyreview.SubmitInput) (*domain.WeeklyReview, error)
}

// WeeklyReviewHandler serves /api/weekly-review.
type WeeklyReviewHandler struct {
	svc weeklyReviewService
	log *slog.Logger
}

// NewWeeklyReviewHandler creates a WeeklyReviewHandler.
func NewWeeklyReviewHandler(svc weeklyReviewService, logger *slog.Logger) *WeeklyReviewHandler {
	return &WeeklyReviewHandler{svc: svc, log: logger.With("handler", "weekly_review")}
}

type submitReviewRequest struct {
	Shipped   string `json:"shipped"`
	Improved  string `json:"improved"`
	Avoided   string `json:"avoided"`
	NextFocus string `json:"nextFocus"`
}

type weeklyReviewResponse struct {
	ID          string  `json:"id"`
	WeekID      string  `json:"weekId"`
	AISummary   string  `json:"aiSummary"`
	Shipped     string  `json:"shipped"`
	Improved    string  `json:"improved"`
	Avoided     string  `json:"avoided"`
	NextFocus   string  `json:"nextFocus"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completedAt"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
}

// Current handles GET /api/weekly-review.
func (h *WeeklyReviewHandler) Current(w http.ResponseWriter, r *http.Request) {
	review, err := h.svc.Current(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toWeeklyReviewResponse(review), "")
}

// Submit handles POST /api/weekly-review/submit.
func (h *WeeklyReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if !readBody(w, r, &req) {
		return
	}

	review, err := h.svc.Submit(r.Context(), weeklyreview.SubmitInput{
		Shipped:   req.Shipped,
		Improved:  req.Improved,
		Avoided:   req.Avoided,
		NextFocus: req.NextFocus,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toWeeklyReviewResponse(review), "Weekly review submitted successfully")
}

func toWeeklyReviewResponse(r *domain.WeeklyReview) weeklyReviewResponse {
	return weeklyReviewResponse{
		ID:          r.ID.String(),
		WeekID:      r.WeekID,
		AISummary:   r.AISummary,
		Shipped:     r.Shipped,
		Improved:    r.Improved,
		Avoided:     r.Avoided,
		NextFocus:   r.NextFocus,
		Completed:   r.Completed,
		CompletedAt: optTimestamp(r.CompletedAt),
		CreatedAt:   timestamp(r.CreatedAt),
		UpdatedAt:   optTimestamp(r.UpdatedAt),
	}
}

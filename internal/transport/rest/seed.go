package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/daily-pos-backend/internal/service/seed"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

// MsgSeedDisabled is returned by every seed endpoint outside development.
const MsgSeedDisabled = "This endpoint is only available in Development environment"

type seedService interface {
	Status(ctx context.Context) (*seed.Status, error)
	Seed(ctx context.Context) (*seed.Result, error)
	Reset(ctx context.Context) (*seed.ResetResult, error)
}

// SeedHandler serves /api/seed. When disabled every route answers 404.
type SeedHandler struct {
	svc     seedService
	enabled bool
	log     *slog.Logger
}

// NewSeedHandler creates a SeedHandler.
func NewSeedHandler(svc seedService, enabled bool, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{svc: svc, enabled: enabled, log: logger.With("handler", "seed")}
}

type seedCountsResponse struct {
	Tasks          int `json:"tasks"`
	ScheduleBlocks int `json:"scheduleBlocks"`
	IncomeEntries  int `json:"incomeEntries"`
}

type seedStatusResponse struct {
	Seeded bool             `json:"seeded"`
	Counts map[string]int64 `json:"counts,omitempty"`
}

type seedResetResponse struct {
	Deleted int64              `json:"deleted"`
	Seeded  seedCountsResponse `json:"seeded"`
}

// Seed handles POST /api/seed.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if !h.allowed(w) {
		return
	}

	res, err := h.svc.Seed(r.Context())
	if errors.Is(err, seed.ErrAlreadySeeded) {
		envelope.OK(w, http.StatusOK, seedStatusResponse{Seeded: true}, seed.ErrAlreadySeeded.Message)
		return
	}
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toSeedCounts(*res), "Database seeded successfully")
}

// Status handles GET /api/seed.
func (h *SeedHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !h.allowed(w) {
		return
	}

	st, err := h.svc.Status(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, seedStatusResponse{Seeded: st.Seeded, Counts: st.Counts}, "")
}

// Reset handles DELETE /api/seed.
func (h *SeedHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !h.allowed(w) {
		return
	}

	res, err := h.svc.Reset(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, seedResetResponse{
		Deleted: res.Deleted,
		Seeded:  toSeedCounts(res.Seeded),
	}, "Database reset and reseeded successfully")
}

func (h *SeedHandler) allowed(w http.ResponseWriter) bool {
	if !h.enabled {
		envelope.Fail(w, http.StatusNotFound, MsgSeedDisabled)
		return false
	}
	return true
}

func toSeedCounts(r seed.Result) seedCountsResponse {
	return seedCountsResponse{Tasks: r.Tasks, ScheduleBlocks: r.ScheduleBlocks, IncomeEntries: r.IncomeEntries}
}

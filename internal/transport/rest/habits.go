package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/service/diet"
	"github.com/heartmarshall/daily-pos-backend/internal/service/discipline"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

type disciplineService interface {
	GetToday(ctx context.Context) (*domain.DisciplineEntry, error)
	UpdateToday(ctx context.Context, input discipline.UpdateTodayInput) (*domain.DisciplineEntry, error)
}

type dietService interface {
	GetToday(ctx context.Context) (*domain.DietEntry, error)
	UpdateToday(ctx context.Context, input diet.UpdateTodayInput) (*domain.DietEntry, error)
}

// HabitHandler serves the day-scoped /api/discipline and /api/diet records.
type HabitHandler struct {
	discipline disciplineService
	diet       dietService
	log        *slog.Logger
}

// NewHabitHandler creates a HabitHandler.
func NewHabitHandler(disciplineSvc disciplineService, dietSvc dietService, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{
		discipline: disciplineSvc,
		diet:       dietSvc,
		log:        logger.With("handler", "habit"),
	}
}

// Pointer fields tell an explicit false or "" apart from an absent key.
type updateDisciplineRequest struct {
	Gym        *bool   `json:"gym"`
	Walk       *bool   `json:"walk"`
	Cooked     *bool   `json:"cooked"`
	Diet       *bool   `json:"diet"`
	Meditation *bool   `json:"meditation"`
	Water      *bool   `json:"water"`
	Note       *string `json:"note"`
}

type updateDietRequest struct {
	Compliant *bool   `json:"compliant"`
	PhotoURL  *string `json:"photoUrl"`
	Note      *string `json:"note"`
}

type disciplineResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Gym        bool    `json:"gym"`
	Walk       bool    `json:"walk"`
	Cooked     bool    `json:"cooked"`
	Diet       bool    `json:"diet"`
	Meditation bool    `json:"meditation"`
	Water      bool    `json:"water"`
	Note       string  `json:"note"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  *string `json:"updatedAt,omitempty"`
}

type dietResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Compliant bool    `json:"compliant"`
	PhotoURL  string  `json:"photoUrl"`
	Note      string  `json:"note"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

// GetDiscipline handles GET /api/discipline.
func (h *HabitHandler) GetDiscipline(w http.ResponseWriter, r *http.Request) {
	entry, err := h.discipline.GetToday(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toDisciplineResponse(entry), "")
}

// UpdateDiscipline handles PUT /api/discipline.
func (h *HabitHandler) UpdateDiscipline(w http.ResponseWriter, r *http.Request) {
	var req updateDisciplineRequest
	if !readBody(w, r, &req) {
		return
	}

	entry, err := h.discipline.UpdateToday(r.Context(), discipline.UpdateTodayInput{
		Patch: domain.DisciplinePatch{
			Gym:        domain.OptionalFromPtr(req.Gym),
			Walk:       domain.OptionalFromPtr(req.Walk),
			Cooked:     domain.OptionalFromPtr(req.Cooked),
			Diet:       domain.OptionalFromPtr(req.Diet),
			Meditation: domain.OptionalFromPtr(req.Meditation),
			Water:      domain.OptionalFromPtr(req.Water),
			Note:       domain.OptionalFromPtr(req.Note),
		},
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toDisciplineResponse(entry), "Discipline updated successfully")
}

// GetDiet handles GET /api/diet.
func (h *HabitHandler) GetDiet(w http.ResponseWriter, r *http.Request) {
	entry, err := h.diet.GetToday(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toDietResponse(entry), "")
}

// UpdateDiet handles PUT /api/diet.
func (h *HabitHandler) UpdateDiet(w http.ResponseWriter, r *http.Request) {
	var req updateDietRequest
	if !readBody(w, r, &req) {
		return
	}

	entry, err := h.diet.UpdateToday(r.Context(), diet.UpdateTodayInput{
		Patch: domain.DietPatch{
			Compliant: domain.OptionalFromPtr(req.Compliant),
			PhotoURL:  domain.OptionalFromPtr(req.PhotoURL),
			Note:      domain.OptionalFromPtr(req.Note),
		},
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toDietResponse(entry), "Diet updated successfully")
}

func toDisciplineResponse(e *domain.DisciplineEntry) disciplineResponse {
	return disciplineResponse{
		ID:         e.ID.String(),
		Date:       domain.FormatDate(e.Date),
		Gym:        e.Gym,
		Walk:       e.Walk,
		Cooked:     e.Cooked,
		Diet:       e.Diet,
		Meditation: e.Meditation,
		Water:      e.Water,
		Note:       e.Note,
		CreatedAt:  timestamp(e.CreatedAt),
		UpdatedAt:  optTimestamp(e.UpdatedAt),
	}
}

func toDietResponse(e *domain.DietEntry) dietResponse {
	return dietResponse{
		ID:        e.ID.String(),
		Date:      domain.FormatDate(e.Date),
		Compliant: e.Compliant,
		PhotoURL:  e.PhotoURL,
		Note:      e.Note,
		CreatedAt: timestamp(e.CreatedAt),
		UpdatedAt: optTimestamp(e.UpdatedAt),
	}
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

type todayService interface {
	Get(ctx context.Context) (*domain.TodayView, error)
}

// TodayHandler serves /api/today.
type TodayHandler struct {
	svc todayService
	log *slog.Logger
}

// NewTodayHandler creates a TodayHandler.
func NewTodayHandler(svc todayService, logger *slog.Logger) *TodayHandler {
	return &TodayHandler{svc: svc, log: logger.With("handler", "today")}
}

type todayResponse struct {
	Day             todayDay              `json:"day"`
	BetterItems     []todayItem           `json:"betterItems"`
	Tasks           []todayItem           `json:"tasks"`
	Discipline      todayDiscipline       `json:"discipline"`
	Diet            todayDiet             `json:"diet"`
	CurrentBlock    todayBlock            `json:"currentBlock"`
	DeadlineWarning *todayDeadlineWarning `json:"deadlineWarning,omitempty"`
}

type todayDay struct {
	Date string `json:"date"`
}

type todayItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
}

type todayDiscipline struct {
	Gym        bool `json:"gym"`
	Walk       bool `json:"walk"`
	Cooked     bool `json:"cooked"`
	Diet       bool `json:"diet"`
	Meditation bool `json:"meditation"`
	Water      bool `json:"water"`
}

type todayDiet struct {
	Compliant bool   `json:"compliant"`
	PhotoURL  string `json:"photoUrl"`
	Note      string `json:"note"`
}

type todayBlock struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type todayDeadlineWarning struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	DaysLeft int    `json:"daysLeft"`
	Status   string `json:"status"`
}

// Get handles GET /api/today. Any failure in the aggregation is a 500.
func (h *TodayHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Get(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	envelope.OK(w, http.StatusOK, toTodayResponse(view), "")
}

func toTodayResponse(v *domain.TodayView) todayResponse {
	resp := todayResponse{
		Day:         todayDay{Date: domain.FormatDate(v.Date)},
		BetterItems: toTodayItems(v.BetterItems),
		Tasks:       toTodayItems(v.Tasks),
		Discipline: todayDiscipline{
			Gym:        v.Discipline.Gym,
			Walk:       v.Discipline.Walk,
			Cooked:     v.Discipline.Cooked,
			Diet:       v.Discipline.Diet,
			Meditation: v.Discipline.Meditation,
			Water:      v.Discipline.Water,
		},
		Diet: todayDiet{
			Compliant: v.Diet.Compliant,
			PhotoURL:  v.Diet.PhotoURL,
			Note:      v.Diet.Note,
		},
		CurrentBlock: todayBlock{
			ID:        v.CurrentBlock.ID,
			Title:     v.CurrentBlock.Title,
			StartTime: v.CurrentBlock.StartTime,
			EndTime:   v.CurrentBlock.EndTime,
		},
	}
	if dw := v.DeadlineWarning; dw != nil {
		resp.DeadlineWarning = &todayDeadlineWarning{
			ID:       dw.ID,
			Title:    dw.Title,
			DaysLeft: dw.DaysLeft,
			Status:   dw.Status,
		}
	}
	return resp
}

func toTodayItems(items []domain.TodayItem) []todayItem {
	out := make([]todayItem, len(items))
	for i, it := range items {
		out[i] = todayItem{
			ID:        it.ID,
			Title:     it.Title,
			Category:  it.Category.String(),
			Completed: it.Completed,
		}
	}
	return out
}

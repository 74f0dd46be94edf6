package rest

import (
	"time"

	"github.com/heartmarshall/daily-pos-backend/internal/domain"
)

func timestamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func optTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := timestamp(*t)
	return &s
}

// itemResponse is the wire shape shared by tasks and better-items.
type itemResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Completed bool    `json:"completed"`
	Source    string  `json:"source"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

func toTaskResponse(t domain.Task) itemResponse {
	return itemResponse{
		ID:        t.ID.String(),
		Date:      domain.FormatDate(t.Date),
		Title:     t.Title,
		Category:  t.Category.String(),
		Completed: t.Completed,
		Source:    t.Source.String(),
		CreatedAt: timestamp(t.CreatedAt),
		UpdatedAt: optTimestamp(t.UpdatedAt),
	}
}

func toTaskResponses(tasks []domain.Task) []itemResponse {
	out := make([]itemResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}

func toBetterItemResponse(b domain.BetterItem) itemResponse {
	return itemResponse{
		ID:        b.ID.String(),
		Date:      domain.FormatDate(b.Date),
		Title:     b.Title,
		Category:  b.Category.String(),
		Completed: b.Completed,
		Source:    b.Source.String(),
		CreatedAt: timestamp(b.CreatedAt),
		UpdatedAt: optTimestamp(b.UpdatedAt),
	}
}

func toBetterItemResponses(items []domain.BetterItem) []itemResponse {
	out := make([]itemResponse, len(items))
	for i, b := range items {
		out[i] = toBetterItemResponse(b)
	}
	return out
}

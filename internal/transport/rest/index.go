package rest

import (
	"net/http"

	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

// ServiceName is reported by the API index.
const ServiceName = "Personal Operating System API"

type indexResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

var indexEndpoints = map[string]string{
	"health":       "/api/health",
	"today":        "/api/today",
	"tasks":        "/api/tasks",
	"betterItems":  "/api/better-items",
	"schedule":     "/api/schedule",
	"discipline":   "/api/discipline",
	"diet":         "/api/diet",
	"money":        "/api/money/summary",
	"deadlines":    "/api/deadlines",
	"weeklyReview": "/api/weekly-review",
}

// Index handles GET /api and describes the service.
func Index(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		envelope.OK(w, http.StatusOK, indexResponse{
			Name:      ServiceName,
			Version:   version,
			Status:    "running",
			Endpoints: indexEndpoints,
		}, "")
	}
}

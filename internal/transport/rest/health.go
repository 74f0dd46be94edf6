package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the probes and /api/health.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// ProbeResponse is the bare JSON body of /live and /ready.
type ProbeResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse is the data of /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Database  string `json:"database"`
	Latency   string `json:"latency,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ProbeResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, ProbeResponse{Status: "down", Timestamp: time.Now().UTC()})
		return
	}
	writeJSON(w, http.StatusOK, ProbeResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Health handles GET /api/health. It pings the DB with latency measurement
// and answers 503 inside the error envelope when the DB is unreachable.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	resp := HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Database:  "connected",
		Latency:   latency.String(),
		Timestamp: timestamp(time.Now()),
	}
	if err != nil {
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		resp.Latency = ""
		envelope.Write(w, http.StatusServiceUnavailable, envelope.Response{
			Success: false,
			Data:    resp,
			Message: "Database is unreachable",
		})
		return
	}
	envelope.OK(w, http.StatusOK, resp, "")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

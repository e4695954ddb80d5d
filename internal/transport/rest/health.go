package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the status and probe endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	clock   clockwork.Clock
}

// NewHealthHandler creates a HealthHandler. A nil clock means the real clock.
func NewHealthHandler(db dbPinger, version string, clock clockwork.Clock) *HealthHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HealthHandler{db: db, version: version, clock: clock}
}

// HealthResponse is the JSON body of /health, /live and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

type rootResponse struct {
	Status string `json:"status"`
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{Status: "Backend running"})
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now()})
}

// Ready answers 503 until the database responds to a ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.clock.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now()})
}

// Health reports "healthy" with database latency and build version, or
// "unhealthy" with 503 when the database is unreachable.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	start := h.clock.Now()
	err := h.db.Ping(ctx)
	latency := h.clock.Since(start)

	resp := HealthResponse{
		Status:     "healthy",
		Version:    h.version,
		Components: map[string]CompStatus{"database": {Status: "ok", Latency: latency.String()}},
		Timestamp:  h.clock.Now(),
	}
	status := http.StatusOK
	if err != nil {
		resp.Status = "unhealthy"
		resp.Components["database"] = CompStatus{Status: "down"}
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}

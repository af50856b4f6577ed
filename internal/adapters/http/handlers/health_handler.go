package handlers

import (
	"net/http"

	"github.com/eventplanr/task-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It answers 200 whenever the process can
// serve requests at all; dependency state is the readiness probe's concern.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// readinessBody is the JSON shape of the readiness probe response.
type readinessBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Readiness handles GET /health/ready. Every registered checker is consulted;
// a single failure flips the response to 503 so load balancers stop routing
// traffic here, with the failing check named in the body.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	body := readinessBody{
		Status: statusReady,
		Checks: make(map[string]string),
	}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			body.Checks[name] = statusOK
			continue
		}
		body.Checks[name] = err.Error()
		body.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, body)
}

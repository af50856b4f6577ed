package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/eventplanr/task-service/internal/adapters/http/handlers"
	"github.com/eventplanr/task-service/mocks"
)

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// --- Liveness ---

func TestLiveness(t *testing.T) {
	t.Parallel()
	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

// --- Readiness ---

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()
	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"event-service": nil,
		"database":      nil,
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[readinessResponse](t, rec)
	if resp.Status != "ready" {
		t.Errorf("status = %q, want %q", resp.Status, "ready")
	}
	if resp.Checks["database"] != "ok" || resp.Checks["event-service"] != "ok" {
		t.Errorf("checks = %+v, want all ok", resp.Checks)
	}
}

func TestReadiness_OneFailing(t *testing.T) {
	t.Parallel()
	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"event-service": errors.New("event-service: failing (circuit breaker open)"),
		"database":      nil,
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
	resp := decodeJSON[readinessResponse](t, rec)
	if resp.Status != "not_ready" {
		t.Errorf("status = %q, want %q", resp.Status, "not_ready")
	}
	if resp.Checks["database"] != "ok" {
		t.Errorf("database check = %q, want ok", resp.Checks["database"])
	}
	if resp.Checks["event-service"] == "ok" {
		t.Error("event-service check reported ok, want the failure detail")
	}
}

func TestReadiness_NoCheckers(t *testing.T) {
	t.Parallel()
	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

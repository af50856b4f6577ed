package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eventplanr/task-service/internal/adapters/http/middleware"
	"github.com/eventplanr/task-service/internal/domain/epic"
	"github.com/eventplanr/task-service/internal/domain/task"
)

const testCallerID int64 = 42

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func int64Ptr(v int64) *int64 { return &v }

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withCaller stores the caller identity the way the identity middleware does.
func withCaller(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), testCallerID))
}

func validTask() *task.Task {
	return &task.Task{
		ID:        1,
		Title:     "Book catering",
		Status:    task.StatusTodo,
		CreatedAt: testTime,
		AuthorID:  testCallerID,
		EventID:   10,
	}
}

func validEpic() *epic.Epic {
	return &epic.Epic{
		ID:          1,
		Title:       "Venue preparation",
		ExecutiveID: testCallerID,
		EventID:     10,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eventplanr/task-service/internal/adapters/http/dto"
	"github.com/eventplanr/task-service/internal/adapters/http/middleware"
	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/domain/epic"
	"github.com/eventplanr/task-service/internal/domain/task"
)

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid integer"},
		}
	}
	return id, nil
}

// callerID extracts the caller's user id placed in the context by the
// identity middleware. A missing or malformed X-User-Id header surfaces as a
// validation error.
func callerID(r *http.Request) (int64, error) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return 0, &domain.ValidationError{
			Fields: map[string]string{middleware.HeaderUserID: "must be a positive integer header"},
		}
	}
	return id, nil
}

// queryInt parses an integer query parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{name: "must be a valid integer"},
		}
	}
	return v, nil
}

// queryInt64Ptr parses an optional int64 query parameter, returning nil when
// absent.
func queryInt64Ptr(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &domain.ValidationError{
			Fields: map[string]string{name: "must be a valid integer"},
		}
	}
	return &v, nil
}

// mapCreateTaskRequest converts a CreateTaskRequest DTO to a domain Task
// entity. Status defaults to todo when omitted.
func mapCreateTaskRequest(req *dto.CreateTaskRequest) *task.Task {
	t := &task.Task{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Status:      task.StatusTodo,
		EventID:     req.EventID,
		AssigneeID:  req.AssigneeID,
	}
	if req.Status != "" {
		t.Status = task.Status(req.Status)
	}
	return t
}

// mapUpdateTaskRequest converts an UpdateTaskRequest DTO to a domain
// UpdateRequest, preserving the absent-versus-set distinction.
func mapUpdateTaskRequest(req *dto.UpdateTaskRequest) *task.UpdateRequest {
	upd := &task.UpdateRequest{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		EventID:     req.EventID,
		AssigneeID:  req.AssigneeID,
	}
	if req.Status != nil {
		s := task.Status(*req.Status)
		upd.Status = &s
	}
	return upd
}

// mapCreateEpicRequest converts a CreateEpicRequest DTO to a domain Epic entity.
func mapCreateEpicRequest(req *dto.CreateEpicRequest) *epic.Epic {
	return &epic.Epic{
		Title:       req.Title,
		ExecutiveID: req.ExecutiveID,
		EventID:     req.EventID,
		Deadline:    req.Deadline,
	}
}

// mapUpdateEpicRequest converts an UpdateEpicRequest DTO to a domain
// UpdateRequest.
func mapUpdateEpicRequest(req *dto.UpdateEpicRequest) *epic.UpdateRequest {
	return &epic.UpdateRequest{
		Title:       req.Title,
		ExecutiveID: req.ExecutiveID,
		Deadline:    req.Deadline,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

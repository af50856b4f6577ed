// Package handlers provides the inbound HTTP handlers translating between
// the JSON API surface and the service ports.
package handlers

import (
	"net/http"

	"github.com/eventplanr/task-service/internal/adapters/http/dto"
	"github.com/eventplanr/task-service/internal/domain/task"
	"github.com/eventplanr/task-service/internal/ports"
)

// Pagination defaults for task search.
const (
	defaultPage = 0
	defaultSize = 10
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	tasks ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(tasks ports.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.tasks.Create(r.Context(), caller, mapCreateTaskRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.tasks.FindByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// SearchTasks handles GET /api/v1/tasks. Pagination uses the page and size
// query parameters; the filter is built from event_id, assignee_id, and
// author_id, each optional.
func (h *TaskHandler) SearchTasks(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	size, err := queryInt(r, "size", defaultSize)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter, err := parseTaskFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.tasks.Search(r.Context(), page, size, filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.tasks.Update(r.Context(), id, caller, mapUpdateTaskRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.tasks.Delete(r.Context(), id, caller); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseTaskFilter builds a task filter from the search query parameters.
func parseTaskFilter(r *http.Request) (task.Filter, error) {
	eventID, err := queryInt64Ptr(r, "event_id")
	if err != nil {
		return task.Filter{}, err
	}
	assigneeID, err := queryInt64Ptr(r, "assignee_id")
	if err != nil {
		return task.Filter{}, err
	}
	authorID, err := queryInt64Ptr(r, "author_id")
	if err != nil {
		return task.Filter{}, err
	}
	return task.Filter{
		EventID:    eventID,
		AssigneeID: assigneeID,
		AuthorID:   authorID,
	}, nil
}

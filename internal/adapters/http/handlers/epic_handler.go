package handlers

import (
	"net/http"

	"github.com/eventplanr/task-service/internal/adapters/http/dto"
	"github.com/eventplanr/task-service/internal/ports"
)

// EpicHandler handles HTTP requests for epic operations, including the
// composition endpoints that link and unlink tasks.
type EpicHandler struct {
	epics ports.EpicService
}

// NewEpicHandler creates a new EpicHandler with the given service port.
func NewEpicHandler(epics ports.EpicService) *EpicHandler {
	return &EpicHandler{epics: epics}
}

// CreateEpic handles POST /api/v1/epics.
func (h *EpicHandler) CreateEpic(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateEpicRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.epics.Create(r.Context(), caller, mapCreateEpicRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToEpicResponse(created))
}

// GetEpic handles GET /api/v1/epics/{id}. The response includes the epic's
// linked tasks.
func (h *EpicHandler) GetEpic(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	e, err := h.epics.FindByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEpicResponse(e))
}

// UpdateEpic handles PATCH /api/v1/epics/{id}.
func (h *EpicHandler) UpdateEpic(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateEpicRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.epics.Update(r.Context(), caller, id, mapUpdateEpicRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEpicResponse(updated))
}

// DeleteEpic handles DELETE /api/v1/epics/{id}. Linked tasks are detached,
// never deleted.
func (h *EpicHandler) DeleteEpic(w http.ResponseWriter, r *http.Request) {
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

	if err := h.epics.Delete(r.Context(), caller, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AttachTask handles POST /api/v1/epics/{epicId}/tasks/{taskId}. It links the
// task to the epic and returns the updated task.
func (h *EpicHandler) AttachTask(w http.ResponseWriter, r *http.Request) {
	caller, epicID, taskID, ok := h.compositionParams(w, r)
	if !ok {
		return
	}

	t, err := h.epics.AttachTask(r.Context(), caller, epicID, taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// DetachTask handles DELETE /api/v1/epics/{epicId}/tasks/{taskId}. It unlinks
// the task from the epic and returns the updated task.
func (h *EpicHandler) DetachTask(w http.ResponseWriter, r *http.Request) {
	caller, epicID, taskID, ok := h.compositionParams(w, r)
	if !ok {
		return
	}

	t, err := h.epics.DetachTask(r.Context(), caller, epicID, taskID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// compositionParams extracts the caller identity and both path ids shared by
// the attach and detach endpoints. On failure it writes an error response and
// returns ok=false.
func (h *EpicHandler) compositionParams(w http.ResponseWriter, r *http.Request) (caller, epicID, taskID int64, ok bool) {
	caller, err := callerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, 0, false
	}

	epicID, err = parseID(r, "epicId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, 0, false
	}

	taskID, err = parseID(r, "taskId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, 0, false
	}

	return caller, epicID, taskID, true
}

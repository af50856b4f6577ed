// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/eventplanr/task-service/internal/domain/epic"
	"github.com/eventplanr/task-service/internal/domain/task"
)

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	Deadline    string `json:"deadline,omitempty"`
	Status      string `json:"status"`
	AssigneeID  *int64 `json:"assignee_id,omitempty"`
	AuthorID    int64  `json:"author_id"`
	EventID     int64  `json:"event_id"`
	EpicID      *int64 `json:"epic_id,omitempty"`
}

// TaskListResponse represents a page of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a domain Task entity to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		Status:      t.Status.String(),
		AssigneeID:  t.AssigneeID,
		AuthorID:    t.AuthorID,
		EventID:     t.EventID,
		EpicID:      t.EpicID,
	}
	if t.Deadline != nil {
		resp.Deadline = t.Deadline.Format(time.RFC3339)
	}
	return resp
}

// ToTaskListResponse converts a slice of domain Task entities to an HTTP
// list response DTO.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return TaskListResponse{
		Tasks: items,
		Count: len(items),
	}
}

// EpicResponse represents a single epic in HTTP responses. Tasks holds the
// epic's linked tasks when the service resolved them.
type EpicResponse struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	ExecutiveID int64          `json:"executive_id"`
	EventID     int64          `json:"event_id"`
	Deadline    string         `json:"deadline,omitempty"`
	Tasks       []TaskResponse `json:"tasks,omitempty"`
}

// ToEpicResponse converts a domain Epic entity to an HTTP response DTO.
func ToEpicResponse(e *epic.Epic) EpicResponse {
	resp := EpicResponse{
		ID:          e.ID,
		Title:       e.Title,
		ExecutiveID: e.ExecutiveID,
		EventID:     e.EventID,
	}
	if e.Deadline != nil {
		resp.Deadline = e.Deadline.Format(time.RFC3339)
	}
	if len(e.Tasks) > 0 {
		resp.Tasks = make([]TaskResponse, len(e.Tasks))
		for i := range e.Tasks {
			resp.Tasks[i] = ToTaskResponse(&e.Tasks[i])
		}
	}
	return resp
}

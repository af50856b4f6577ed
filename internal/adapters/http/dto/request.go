package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/domain/task"
)

const msgMustNotEmpty = "must not be empty"

// CreateTaskRequest represents the JSON body for creating a new task.
// Deadline uses RFC 3339; status defaults to "todo" when omitted.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      string     `json:"status,omitempty"`
	EventID     int64      `json:"event_id"`
	AssigneeID  *int64     `json:"assignee_id,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
// Time-dependent rules (deadline in the future) are enforced by the service.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if r.Status != "" && !task.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	if r.EventID <= 0 {
		fields["event_id"] = fmt.Sprintf("must be positive, got %d", r.EventID)
	}
	if r.AssigneeID != nil && *r.AssigneeID <= 0 {
		fields["assignee_id"] = fmt.Sprintf("must be positive, got %d", *r.AssigneeID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTaskRequest represents the JSON body for updating an existing task.
// All fields are optional; nil means "do not change this field".
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      *string    `json:"status,omitempty"`
	EventID     *int64     `json:"event_id,omitempty"`
	AssigneeID  *int64     `json:"assignee_id,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.Status != nil && !task.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}
	if r.EventID != nil && *r.EventID <= 0 {
		fields["event_id"] = fmt.Sprintf("must be positive, got %d", *r.EventID)
	}
	if r.AssigneeID != nil && *r.AssigneeID <= 0 {
		fields["assignee_id"] = fmt.Sprintf("must be positive, got %d", *r.AssigneeID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateEpicRequest represents the JSON body for creating a new epic.
type CreateEpicRequest struct {
	Title       string     `json:"title"`
	ExecutiveID int64      `json:"executive_id"`
	EventID     int64      `json:"event_id"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateEpicRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if r.ExecutiveID <= 0 {
		fields["executive_id"] = fmt.Sprintf("must be positive, got %d", r.ExecutiveID)
	}
	if r.EventID <= 0 {
		fields["event_id"] = fmt.Sprintf("must be positive, got %d", r.EventID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateEpicRequest represents the JSON body for updating an existing epic.
// All fields are optional; nil means "do not change this field".
type UpdateEpicRequest struct {
	Title       *string    `json:"title,omitempty"`
	ExecutiveID *int64     `json:"executive_id,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateEpicRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.ExecutiveID != nil && *r.ExecutiveID <= 0 {
		fields["executive_id"] = fmt.Sprintf("must be positive, got %d", *r.ExecutiveID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/eventplanr/task-service/internal/domain"
)

// UpdateRequest carries a partial update for a Task. Nil fields leave the
// stored value unchanged (PATCH semantics). AuthorID and CreatedAt are not
// representable here and therefore can never change after creation.
type UpdateRequest struct {
	Title       *string
	Description *string
	Deadline    *time.Time
	Status      *Status
	EventID     *int64
	AssigneeID  *int64
}

// Validate checks that any supplied fields carry valid values. The deadline
// check is repeated here even though the HTTP boundary also validates it,
// since an update sets the deadline directly on the stored entity.
func (u *UpdateRequest) Validate(now time.Time) error {
	fields := make(map[string]string)

	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		fields["title"] = "must not be empty"
	}
	if u.Status != nil && !u.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *u.Status)
	}
	if u.EventID != nil && *u.EventID <= 0 {
		fields["event_id"] = fmt.Sprintf("must be positive, got %d", *u.EventID)
	}
	if u.AssigneeID != nil && *u.AssigneeID <= 0 {
		fields["assignee_id"] = fmt.Sprintf("must be positive, got %d", *u.AssigneeID)
	}
	if u.Deadline != nil && !u.Deadline.After(now) {
		fields["deadline"] = "must be in the future"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply merges the non-nil fields onto t. Absent fields are untouched.
func (u *UpdateRequest) Apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Deadline != nil {
		t.Deadline = u.Deadline
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.EventID != nil {
		t.EventID = *u.EventID
	}
	if u.AssigneeID != nil {
		t.AssigneeID = u.AssigneeID
	}
}

// ChangesEventScope reports whether applying u to t would change the event
// correlation or the assignee, the two fields that widen who is affected by
// the task and therefore require a fresh membership check.
func (u *UpdateRequest) ChangesEventScope(t *Task) bool {
	if u.EventID != nil && *u.EventID != t.EventID {
		return true
	}
	if u.AssigneeID != nil {
		if t.AssigneeID == nil || *t.AssigneeID != *u.AssigneeID {
			return true
		}
	}
	return false
}

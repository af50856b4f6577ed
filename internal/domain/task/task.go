package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/eventplanr/task-service/internal/domain"
)

// Task is a unit of work created by an author for a specific event. It may be
// delegated to an assignee and may belong to at most one epic. EpicID is the
// single source of truth for the epic association; an epic's task list is
// always derived from it.
type Task struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	Deadline    *time.Time
	Status      Status
	AssigneeID  *int64
	AuthorID    int64
	EventID     int64
	EpicID      *int64
}

// Validate checks business rules for a new Task.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Task) Validate(now time.Time) error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.EventID <= 0 {
		fields["event_id"] = fmt.Sprintf("must be positive, got %d", t.EventID)
	}
	if t.AssigneeID != nil && *t.AssigneeID <= 0 {
		fields["assignee_id"] = fmt.Sprintf("must be positive, got %d", *t.AssigneeID)
	}
	if t.Deadline != nil && !t.Deadline.After(now) {
		fields["deadline"] = "must be in the future"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CanBeModifiedBy reports whether userID is the task's author or assignee.
// These local checks are always enforced, independent of any membership policy.
func (t *Task) CanBeModifiedBy(userID int64) bool {
	if t.AuthorID == userID {
		return true
	}
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// CanBeDeletedBy reports whether userID is the task's author.
// Deletion is author-only.
func (t *Task) CanBeDeletedBy(userID int64) bool {
	return t.AuthorID == userID
}

package epic

import (
	"fmt"
	"strings"
	"time"

	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/domain/task"
)

// Epic is a named collection of tasks under one executive user, scoped to a
// single event. Tasks is a derived view resolved from task.EpicID at read
// time; it is never persisted as a second pointer set, so the two views of
// the association cannot diverge.
type Epic struct {
	ID          int64
	Title       string
	ExecutiveID int64
	EventID     int64
	Deadline    *time.Time
	Tasks       []task.Task
}

// Validate checks business rules for a new Epic.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (e *Epic) Validate(now time.Time) error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if e.ExecutiveID <= 0 {
		fields["executive_id"] = fmt.Sprintf("must be positive, got %d", e.ExecutiveID)
	}
	if e.EventID <= 0 {
		fields["event_id"] = fmt.Sprintf("must be positive, got %d", e.EventID)
	}
	if e.Deadline != nil && !e.Deadline.After(now) {
		fields["deadline"] = "must be in the future"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CanManageTasksBy reports whether userID is the epic's executive, the sole
// user authorized to attach and detach tasks.
func (e *Epic) CanManageTasksBy(userID int64) bool {
	return e.ExecutiveID == userID
}

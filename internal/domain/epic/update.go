package epic

import (
	"fmt"
	"strings"
	"time"

	"github.com/eventplanr/task-service/internal/domain"
)

// UpdateRequest carries a partial update for an Epic. Nil fields leave the
// stored value unchanged. The event correlation of an epic is fixed at
// creation and not representable here.
type UpdateRequest struct {
	Title       *string
	ExecutiveID *int64
	Deadline    *time.Time
}

// Validate checks that any supplied fields carry valid values.
func (u *UpdateRequest) Validate(now time.Time) error {
	fields := make(map[string]string)

	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		fields["title"] = "must not be empty"
	}
	if u.ExecutiveID != nil && *u.ExecutiveID <= 0 {
		fields["executive_id"] = fmt.Sprintf("must be positive, got %d", *u.ExecutiveID)
	}
	if u.Deadline != nil && !u.Deadline.After(now) {
		fields["deadline"] = "must be in the future"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply merges the non-nil fields onto e. Absent fields are untouched.
func (u *UpdateRequest) Apply(e *Epic) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.ExecutiveID != nil {
		e.ExecutiveID = *u.ExecutiveID
	}
	if u.Deadline != nil {
		e.Deadline = u.Deadline
	}
}

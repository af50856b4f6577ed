package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking. Every business rule violation in
// the service layer surfaces as exactly one of these, wrapped with the ids
// involved; nothing is downgraded to a generic error.
var (
	// ErrNotFound indicates a referenced task, epic, or external event does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized indicates the caller lacks the specific permission
	// required: author/assignee for task mutation, author-only for deletion,
	// executive-only for epic composition, or event team membership.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrOperationNotAllowed indicates a cross-entity invariant would be
	// violated: task/epic event mismatch, task already linked to an epic,
	// or task not linked to the target epic.
	ErrOperationNotAllowed = errors.New("operation not allowed")

	// ErrValidation indicates malformed input.
	ErrValidation = errors.New("validation error")

	// ErrUnavailable indicates an unclassified downstream failure.
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation
// failures. Use errors.Is(err, ErrValidation) for simple checks, or
// errors.As(err, &verr) to access verr.Fields for per-field details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

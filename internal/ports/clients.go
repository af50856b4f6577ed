package ports

import (
	"context"

	"github.com/eventplanr/task-service/internal/domain/event"
)

// EventClient defines the client port for the external event service.
// Implemented by the outbound adapter; called by the membership policy.
// Both reads are performed with the requesting user's identity, which the
// event service uses for its own visibility rules.
type EventClient interface {
	// GetEvent returns an event by id.
	// A remote 404 is mapped to domain.ErrNotFound ("event was not found").
	GetEvent(ctx context.Context, callerID, eventID int64) (*event.Event, error)

	// ListTeamMembers returns the staffing records for an event. The
	// event's owner is not part of the list.
	ListTeamMembers(ctx context.Context, callerID, eventID int64) ([]event.TeamMember, error)
}

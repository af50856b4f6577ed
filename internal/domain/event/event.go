// Package event holds read models for the external event service. Events and
// their teams are owned by that service; this package only mirrors the
// attributes the membership check needs.
package event

import "time"

// Event is the read model returned by the external event service.
type Event struct {
	ID        int64
	Name      string
	OwnerID   int64
	StartDate time.Time
	EndDate   time.Time
}

// TeamMember is a single staffing record for an event. The event's owner is
// not included in the member list and must be added separately when building
// the membership set.
type TeamMember struct {
	EventID int64
	UserID  int64
	Role    string
}

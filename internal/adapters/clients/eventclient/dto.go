package eventclient

import (
	"time"

	"github.com/eventplanr/task-service/internal/domain/event"
)

// eventDTO mirrors the event service's event representation. Only the fields
// the membership check needs are translated to the domain read model.
type eventDTO struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	CreatedDateTime time.Time `json:"createdDateTime"`
	StartDateTime   time.Time `json:"startDateTime"`
	EndDateTime     time.Time `json:"endDateTime"`
	Location        string    `json:"location"`
	OwnerID         int64     `json:"ownerId"`
}

func (d *eventDTO) toDomain() event.Event {
	return event.Event{
		ID:        d.ID,
		Name:      d.Name,
		OwnerID:   d.OwnerID,
		StartDate: d.StartDateTime,
		EndDate:   d.EndDateTime,
	}
}

// teamMemberDTO mirrors one staffing record of an event team.
type teamMemberDTO struct {
	EventID int64  `json:"eventId"`
	UserID  int64  `json:"userId"`
	Role    string `json:"role"`
}

func toDomainTeam(dtos []teamMemberDTO) []event.TeamMember {
	members := make([]event.TeamMember, len(dtos))
	for i, d := range dtos {
		members[i] = event.TeamMember{
			EventID: d.EventID,
			UserID:  d.UserID,
			Role:    d.Role,
		}
	}
	return members
}

package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.MembershipPolicy = (*TeamMembershipPolicy)(nil)
	_ ports.MembershipPolicy = OpenMembershipPolicy{}
)

// TeamMembershipPolicy verifies event team membership through the external
// event service. Each check is exactly two outbound reads: the event itself
// (which yields the owner) and its team member list. Failures map directly to
// domain errors; there is no partial-success or compensating path.
type TeamMembershipPolicy struct {
	events ports.EventClient
	logger *slog.Logger
}

// NewTeamMembershipPolicy creates a policy backed by the given event client.
func NewTeamMembershipPolicy(events ports.EventClient, logger *slog.Logger) *TeamMembershipPolicy {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TeamMembershipPolicy{events: events, logger: logger}
}

// CheckMembership asserts that callerID and, when present, otherUserID are
// members of eventID's team or its owner. The caller's identity is used for
// both outbound reads.
func (p *TeamMembershipPolicy) CheckMembership(ctx context.Context, callerID, eventID int64, otherUserID *int64) error {
	ev, err := p.events.GetEvent(ctx, callerID, eventID)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to fetch event",
			slog.String("operation", "CheckMembership"),
			slog.Int64("event_id", eventID),
			slog.Any("error", err),
		)
		return err
	}

	members, err := p.events.ListTeamMembers(ctx, callerID, eventID)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to fetch event team",
			slog.String("operation", "CheckMembership"),
			slog.Int64("event_id", eventID),
			slog.Any("error", err),
		)
		return err
	}

	team := make(map[int64]struct{}, len(members)+1)
	for _, m := range members {
		team[m.UserID] = struct{}{}
	}
	team[ev.OwnerID] = struct{}{}

	if err := requireTeamMember(team, callerID, eventID); err != nil {
		return err
	}
	if otherUserID != nil {
		if err := requireTeamMember(team, *otherUserID, eventID); err != nil {
			return err
		}
	}
	return nil
}

func requireTeamMember(team map[int64]struct{}, userID, eventID int64) error {
	if _, ok := team[userID]; !ok {
		return fmt.Errorf("user with id '%d' is not a team member for event with id '%d': %w",
			userID, eventID, domain.ErrNotAuthorized)
	}
	return nil
}

// OpenMembershipPolicy allows every event-scoped mutation without consulting
// the event service. Deployments select it when only the local
// author/assignee/executive checks should gate mutations; those local checks
// are enforced by the services regardless of the policy in use.
type OpenMembershipPolicy struct{}

// CheckMembership always returns nil.
func (OpenMembershipPolicy) CheckMembership(context.Context, int64, int64, *int64) error {
	return nil
}

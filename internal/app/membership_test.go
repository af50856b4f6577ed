package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/eventplanr/task-service/internal/domain"
	"github.com/eventplanr/task-service/internal/domain/event"
	"github.com/eventplanr/task-service/mocks"
)

func validEvent() *event.Event {
	return &event.Event{ID: 10, Name: "Summer gala", OwnerID: 1}
}

func teamOf(userIDs ...int64) []event.TeamMember {
	members := make([]event.TeamMember, 0, len(userIDs))
	for _, id := range userIDs {
		members = append(members, event.TeamMember{EventID: 10, UserID: id, Role: "member"})
	}
	return members
}

// --- CheckMembership ---

func TestTeamMembershipPolicy_CheckMembership(t *testing.T) {
	t.Parallel()

	t.Run("allows a team member", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockEventClient(t)
		policy := NewTeamMembershipPolicy(client, discardLogger())

		client.EXPECT().GetEvent(mock.Anything, int64(42), int64(10)).Return(validEvent(), nil)
		client.EXPECT().ListTeamMembers(mock.Anything, int64(42), int64(10)).Return(teamOf(42, 7), nil)

		if err := policy.CheckMembership(context.Background(), 42, 10, nil); err != nil {
			t.Fatalf("CheckMembership() error = %v, want nil", err)
		}
	})

	t.Run("treats the event owner as a member", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockEventClient(t)
		policy := NewTeamMembershipPolicy(client, discardLogger())

		// Owner id 1 never appears in the team list but still passes.
		client.EXPECT().GetEvent(mock.Anything, int64(1), int64(10)).Return(validEvent(), nil)
		client.EXPECT().ListTeamMembers(mock.Anything, int64(1), int64(10)).Return(teamOf(42), nil)

		if err := policy.CheckMembership(context.Background(), 1, 10, nil); err != nil {
			t.Fatalf("CheckMembership() error = %v, want nil", err)
		}
	})

	t.Run("rejects a caller outside the team", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockEventClient(t)
		policy := NewTeamMembershipPolicy(client, discardLogger())

		client.EXPECT().GetEvent(mock.Anything, int64(666), int64(10)).Return(validEvent(), nil)
		client.EXPECT().ListTeamMembers(mock.Anything, int64(666), int64(10)).Return(teamOf(42), nil)

		err := policy.CheckMembership(context.Background(), 666, 10, nil)
		if !errors.Is(err, domain.ErrNotAuthorized) {
			t.Fatalf("CheckMembership() error = %v, want ErrNotAuthorized", err)
		}
		want := "user with id '666' is not a team member for event with id '10'"
		if !strings.Contains(err.Error(), want) {
			t.Errorf("CheckMembership() error = %q, want containing %q", err.Error(), want)
		}
	})

	t.Run("rejects an assignee outside the team", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockEventClient(t)
		policy := NewTeamMembershipPolicy(client, discardLogger())

		client.EXPECT().GetEvent(mock.Anything, int64(42), int64(10)).Return(validEvent(), nil)
		client.EXPECT().ListTeamMembers(mock.Anything, int64(42), int64(10)).Return(teamOf(42), nil)

		err := policy.CheckMembership(context.Background(), 42, 10, int64Ptr(666))
		if !errors.Is(err, domain.ErrNotAuthorized) {
			t.Fatalf("CheckMembership() error = %v, want ErrNotAuthorized", err)
		}
		if !strings.Contains(err.Error(), "user with id '666'") {
			t.Errorf("CheckMembership() error = %q, want naming the assignee", err.Error())
		}
	})

	t.Run("propagates a missing event", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockEventClient(t)
		policy := NewTeamMembershipPolicy(client, discardLogger())

		client.EXPECT().GetEvent(mock.Anything, int64(42), int64(10)).Return(nil, domain.ErrNotFound)

		if err := policy.CheckMembership(context.Background(), 42, 10, nil); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("CheckMembership() error = %v, want ErrNotFound", err)
		}
		// No ListTeamMembers expectation: the second read must be skipped.
	})

	t.Run("propagates a team list failure", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockEventClient(t)
		policy := NewTeamMembershipPolicy(client, discardLogger())

		client.EXPECT().GetEvent(mock.Anything, int64(42), int64(10)).Return(validEvent(), nil)
		client.EXPECT().ListTeamMembers(mock.Anything, int64(42), int64(10)).Return(nil, domain.ErrUnavailable)

		if err := policy.CheckMembership(context.Background(), 42, 10, nil); !errors.Is(err, domain.ErrUnavailable) {
			t.Fatalf("CheckMembership() error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("makes exactly one read per endpoint", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockEventClient(t)
		policy := NewTeamMembershipPolicy(client, discardLogger())

		client.EXPECT().GetEvent(mock.Anything, int64(42), int64(10)).Return(validEvent(), nil).Once()
		client.EXPECT().ListTeamMembers(mock.Anything, int64(42), int64(10)).Return(teamOf(42, 7), nil).Once()

		if err := policy.CheckMembership(context.Background(), 42, 10, int64Ptr(7)); err != nil {
			t.Fatalf("CheckMembership() error = %v, want nil", err)
		}
	})
}

// --- OpenMembershipPolicy ---

func TestOpenMembershipPolicy_CheckMembership(t *testing.T) {
	t.Parallel()

	policy := OpenMembershipPolicy{}
	if err := policy.CheckMembership(context.Background(), 666, 10, int64Ptr(667)); err != nil {
		t.Fatalf("CheckMembership() error = %v, want nil", err)
	}
}

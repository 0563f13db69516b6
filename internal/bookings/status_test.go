package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		actor   Actor
		allowed bool
	}{
		{"staff approves pending", StatusPendingApproval, StatusApproved, ActorStaff, true},
		{"system approves pending", StatusPendingApproval, StatusApproved, ActorSystem, true},
		{"customer cannot approve", StatusPendingApproval, StatusApproved, ActorCustomer, false},
		{"staff rejects pending", StatusPendingApproval, StatusRejected, ActorStaff, true},
		{"customer cannot reject", StatusPendingApproval, StatusRejected, ActorCustomer, false},
		{"customer cancels pending", StatusPendingApproval, StatusCancelled, ActorCustomer, true},
		{"staff cancels pending", StatusPendingApproval, StatusCancelled, ActorStaff, true},

		{"staff checks in approved", StatusApproved, StatusCheckedIn, ActorStaff, true},
		{"customer cannot check in", StatusApproved, StatusCheckedIn, ActorCustomer, false},
		{"customer cancels approved", StatusApproved, StatusCancelled, ActorCustomer, true},
		{"approved cannot be rejected", StatusApproved, StatusRejected, ActorStaff, false},
		{"approved cannot skip to completed", StatusApproved, StatusCompleted, ActorStaff, false},

		{"staff completes checked in", StatusCheckedIn, StatusCompleted, ActorStaff, true},
		{"staff cancels checked in", StatusCheckedIn, StatusCancelled, ActorStaff, true},
		{"checked in cannot revert to approved", StatusCheckedIn, StatusApproved, ActorStaff, false},

		{"completed absorbs", StatusCompleted, StatusCancelled, ActorStaff, false},
		{"rejected absorbs", StatusRejected, StatusApproved, ActorStaff, false},
		{"cancelled absorbs", StatusCancelled, StatusApproved, ActorStaff, false},
		{"pending cannot skip to checked in", StatusPendingApproval, StatusCheckedIn, ActorStaff, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to, tt.actor))
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusPendingApproval.IsActive())
	assert.True(t, StatusApproved.IsActive())
	assert.True(t, StatusCheckedIn.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusRejected.IsActive())
	assert.False(t, StatusCancelled.IsActive())

	assert.False(t, StatusPendingApproval.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.False(t, StatusCheckedIn.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{
		StatusPendingApproval, StatusApproved, StatusCheckedIn,
		StatusCompleted, StatusRejected, StatusCancelled,
	} {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}
	assert.False(t, Status("CHECKED_OUT").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestActiveStatuses(t *testing.T) {
	active := ActiveStatuses()
	assert.ElementsMatch(t, []string{"PENDING_APPROVAL", "APPROVED", "CHECKED_IN"}, active)
}

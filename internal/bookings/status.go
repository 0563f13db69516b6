package bookings

import "errors"

// Status is the booking lifecycle state. PENDING_APPROVAL moves forward
// through APPROVED, CHECKED_IN and COMPLETED; REJECTED and CANCELLED
// absorb.
type Status string

const (
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusApproved        Status = "APPROVED"
	StatusCheckedIn       Status = "CHECKED_IN"
	StatusCompleted       Status = "COMPLETED"
	StatusRejected        Status = "REJECTED"
	StatusCancelled       Status = "CANCELLED"
)

// Actor identifies who is driving a transition. Staff covers both
// receptionists and admins.
type Actor string

const (
	ActorCustomer Actor = "CUSTOMER"
	ActorStaff    Actor = "STAFF"
	ActorSystem   Actor = "SYSTEM"
)

var ErrInvalidTransition = errors.New("invalid booking status transition")

// transitions maps each legal (from, to) pair to the actors allowed to
// perform it. Anything absent is illegal and must leave the booking
// untouched.
var transitions = map[Status]map[Status][]Actor{
	StatusPendingApproval: {
		StatusApproved:  {ActorStaff, ActorSystem},
		StatusRejected:  {ActorStaff},
		StatusCancelled: {ActorCustomer, ActorStaff},
	},
	StatusApproved: {
		StatusCheckedIn: {ActorStaff},
		StatusCancelled: {ActorCustomer, ActorStaff},
	},
	StatusCheckedIn: {
		StatusCompleted: {ActorStaff},
		StatusCancelled: {ActorCustomer, ActorStaff},
	},
}

// IsValid checks if the booking status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPendingApproval, StatusApproved, StatusCheckedIn,
		StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected || s == StatusCancelled
}

// IsActive reports whether the booking still occupies rooms.
func (s Status) IsActive() bool {
	return s == StatusPendingApproval || s == StatusApproved || s == StatusCheckedIn
}

// CanTransition validates a (from, to, actor) triple against the
// transition table.
func CanTransition(from, to Status, actor Actor) bool {
	allowed, ok := transitions[from][to]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == actor {
			return true
		}
	}
	return false
}

// ActiveStatuses are the states in which a booking blocks its rooms.
func ActiveStatuses() []string {
	return []string{
		string(StatusPendingApproval),
		string(StatusApproved),
		string(StatusCheckedIn),
	}
}

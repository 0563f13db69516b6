package users

// Role determines which dashboard a user sees and which transitions they may
// drive on a booking.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleCustomer     Role = "CUSTOMER"
)

func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleAdmin, RoleReceptionist, RoleCustomer:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role belongs to hotel personnel.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleReceptionist
}

func (r Role) String() string {
	return string(r)
}

// Status is the account state. Locked accounts cannot log in.
type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusLocked Status = "LOCKED"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusLocked
}

package rooms

// RoomStatus tracks the live occupancy state of a physical room. It is
// mutated by booking operations (approve, check-in, check-out, cancel),
// never directly through the room CRUD endpoints, except for the
// maintenance toggle.
type RoomStatus string

const (
	StatusVacant      RoomStatus = "VACANT"
	StatusReserved    RoomStatus = "RESERVED"
	StatusOccupied    RoomStatus = "OCCUPIED"
	StatusMaintenance RoomStatus = "MAINTENANCE"
)

func (s RoomStatus) IsValid() bool {
	switch s {
	case StatusVacant, StatusReserved, StatusOccupied, StatusMaintenance:
		return true
	}
	return false
}

// IsBookable reports whether new bookings may target the room.
func (s RoomStatus) IsBookable() bool {
	return s != StatusMaintenance
}

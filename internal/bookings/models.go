package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Channel records how a booking entered the system.
type Channel string

const (
	ChannelOnline Channel = "ONLINE"
	ChannelWalkIn Channel = "WALK_IN"
)

// Booking is a stay reservation covering one or more rooms over a
// single [check-in, check-out) date range.
type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	BookingRef string    `gorm:"unique;not null" json:"booking_ref"`
	Channel    Channel   `gorm:"type:varchar(10);default:'ONLINE'" json:"channel"`
	Status     Status    `gorm:"type:varchar(20);default:'PENDING_APPROVAL';index" json:"status"`

	CheckInDate  time.Time `gorm:"not null;index" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"not null;index" json:"check_out_date"`

	// TotalAmount is fixed at creation from the per-room nightly
	// snapshots; change-room fees adjust it afterwards.
	TotalAmount float64 `gorm:"not null;check:total_amount >= 0" json:"total_amount"`
	AmountPaid  float64 `gorm:"default:0;check:amount_paid >= 0" json:"amount_paid"`

	GuestNote    string  `gorm:"size:1000" json:"guest_note"`
	RejectReason *string `gorm:"size:500" json:"reject_reason,omitempty"`

	ActualCheckIn  *time.Time `json:"actual_check_in,omitempty"`
	ActualCheckOut *time.Time `json:"actual_check_out,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Rooms []BookingRoom `json:"rooms,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// BookingRoom is one room-stay inside a booking. NightlyPrice is a
// snapshot of the room type's rate at booking time; later rate edits
// never reprice an existing stay.
type BookingRoom struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	RoomID    uuid.UUID `gorm:"type:uuid;index;not null" json:"room_id"`

	NightlyPrice float64 `gorm:"not null;check:nightly_price >= 0" json:"nightly_price"`
	Nights       int     `gorm:"not null;check:nights > 0" json:"nights"`

	// CancelledAt marks a per-room cancellation after check-in; the row
	// stays for audit but no longer blocks the room.
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Booking *Booking `json:"-" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for BookingRoom
func (BookingRoom) TableName() string {
	return "booking_rooms"
}

func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// ActiveRooms returns the room-stays not yet individually cancelled.
func (b *Booking) ActiveRooms() []BookingRoom {
	active := make([]BookingRoom, 0, len(b.Rooms))
	for _, br := range b.Rooms {
		if br.CancelledAt == nil {
			active = append(active, br)
		}
	}
	return active
}

func (br *BookingRoom) StayAmount() float64 {
	return br.NightlyPrice * float64(br.Nights)
}

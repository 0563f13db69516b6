package bookings

type CreateBookingRequest struct {
	RoomIDs   []string `json:"room_ids" validate:"required,min=1,max=10,dive,uuid"`
	CheckIn   string   `json:"check_in" validate:"required"`  // YYYY-MM-DD
	CheckOut  string   `json:"check_out" validate:"required"` // YYYY-MM-DD
	GuestNote string   `json:"guest_note" validate:"max=1000"`
	HoldID    string   `json:"hold_id" validate:"omitempty"`
}

// WalkInBookingRequest is submitted by a receptionist at the front
// desk; the booking auto-approves.
type WalkInBookingRequest struct {
	CustomerID string   `json:"customer_id" validate:"required,uuid"`
	RoomIDs    []string `json:"room_ids" validate:"required,min=1,max=10,dive,uuid"`
	CheckIn    string   `json:"check_in" validate:"required"`
	CheckOut   string   `json:"check_out" validate:"required"`
	GuestNote  string   `json:"guest_note" validate:"max=1000"`
	AmountPaid float64  `json:"amount_paid" validate:"omitempty,min=0"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

type ChangeRoomRequest struct {
	FromRoomID string `json:"from_room_id" validate:"required,uuid"`
	ToRoomID   string `json:"to_room_id" validate:"required,uuid"`
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type BookingListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status   string `form:"status" binding:"omitempty,oneof=PENDING_APPROVAL APPROVED CHECKED_IN COMPLETED REJECTED CANCELLED"`
	Search   string `form:"search"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

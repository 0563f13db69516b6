package bookings

import "time"

type BookingRoomResponse struct {
	ID           string     `json:"id"`
	RoomID       string     `json:"room_id"`
	RoomNumber   string     `json:"room_number,omitempty"`
	NightlyPrice float64    `json:"nightly_price"`
	Nights       int        `json:"nights"`
	StayAmount   float64    `json:"stay_amount"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
}

type BookingResponse struct {
	ID           string  `json:"id"`
	BookingRef   string  `json:"booking_ref"`
	CustomerID   string  `json:"customer_id"`
	Channel      Channel `json:"channel"`
	Status       Status  `json:"status"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalAmount  float64 `json:"total_amount"`
	AmountPaid   float64 `json:"amount_paid"`
	GuestNote    string  `json:"guest_note,omitempty"`
	RejectReason *string `json:"reject_reason,omitempty"`

	// DueFlag is a display-only overlay (DUE_SOON / OVERDUE) derived
	// from the check-out date; it is never authoritative state.
	DueFlag string `json:"due_flag,omitempty"`

	ActualCheckIn  *time.Time `json:"actual_check_in,omitempty"`
	ActualCheckOut *time.Time `json:"actual_check_out,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`

	Rooms     []BookingRoomResponse `json:"rooms"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type ChangeRoomResponse struct {
	Booking    *BookingResponse `json:"booking"`
	FromRoomID string           `json:"from_room_id"`
	ToRoomID   string           `json:"to_room_id"`
	ChangeFee  float64          `json:"change_fee"`
}

type PaginatedBookings struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

const dateLayout = "2006-01-02"

func (b *Booking) ToResponse() BookingResponse {
	rooms := make([]BookingRoomResponse, len(b.Rooms))
	for i, br := range b.Rooms {
		rooms[i] = BookingRoomResponse{
			ID:           br.ID.String(),
			RoomID:       br.RoomID.String(),
			NightlyPrice: br.NightlyPrice,
			Nights:       br.Nights,
			StayAmount:   br.StayAmount(),
			CancelledAt:  br.CancelledAt,
		}
	}

	return BookingResponse{
		ID:             b.ID.String(),
		BookingRef:     b.BookingRef,
		CustomerID:     b.CustomerID.String(),
		Channel:        b.Channel,
		Status:         b.Status,
		CheckInDate:    b.CheckInDate.Format(dateLayout),
		CheckOutDate:   b.CheckOutDate.Format(dateLayout),
		TotalAmount:    b.TotalAmount,
		AmountPaid:     b.AmountPaid,
		GuestNote:      b.GuestNote,
		RejectReason:   b.RejectReason,
		ActualCheckIn:  b.ActualCheckIn,
		ActualCheckOut: b.ActualCheckOut,
		CancelledAt:    b.CancelledAt,
		Rooms:          rooms,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

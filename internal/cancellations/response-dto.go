package cancellations

import (
	"time"

	"github.com/google/uuid"
)

// QuoteResponse previews the refund split for a would-be cancellation.
type QuoteResponse struct {
	BookingID        uuid.UUID `json:"booking_id"`
	TotalPaid        float64   `json:"total_paid"`
	DaysUntilCheckIn int       `json:"days_until_check_in"`
	HoldbackAmount   float64   `json:"holdback_amount"`
	RefundAmount     float64   `json:"refund_amount"`
}

type CancellationResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	RequesterID uuid.UUID `json:"requester_id"`

	Reason string        `json:"reason"`
	Status RequestStatus `json:"status"`

	HoldbackAmount float64 `json:"holdback_amount"`
	RefundAmount   float64 `json:"refund_amount"`

	RefundStatus      RefundStatus `json:"refund_status"`
	RefundCompletedAt *time.Time   `json:"refund_completed_at,omitempty"`

	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountHolder string `json:"bank_account_holder"`

	ReviewedBy   *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	RejectReason *string    `json:"reject_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// RoomCancellationResult reports the outcome of dropping rooms from a
// checked-in stay.
type RoomCancellationResult struct {
	BookingID        uuid.UUID       `json:"booking_id"`
	CancelledRooms   []CancelledRoom `json:"cancelled_rooms"`
	HoldbackTotal    float64         `json:"holdback_total"`
	RefundTotal      float64         `json:"refund_total"`
	BookingCancelled bool            `json:"booking_cancelled"`
}

type CancelledRoom struct {
	BookingRoomID uuid.UUID `json:"booking_room_id"`
	RoomID        uuid.UUID `json:"room_id"`
	NightlyPrice  float64   `json:"nightly_price"`
	Nights        int       `json:"nights"`
	Holdback      float64   `json:"holdback"`
	Refund        float64   `json:"refund"`
}

type PaginatedCancellations struct {
	Cancellations []CancellationResponse `json:"cancellations"`
	TotalCount    int64                  `json:"total_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
}

func (c *CancellationRequest) ToResponse() *CancellationResponse {
	return &CancellationResponse{
		ID:                c.ID,
		BookingID:         c.BookingID,
		RequesterID:       c.RequesterID,
		Reason:            c.Reason,
		Status:            c.Status,
		HoldbackAmount:    c.HoldbackAmount,
		RefundAmount:      c.RefundAmount,
		RefundStatus:      c.RefundStatus,
		RefundCompletedAt: c.RefundCompletedAt,
		BankName:          c.BankName,
		BankAccountNumber: c.BankAccountNumber,
		BankAccountHolder: c.BankAccountHolder,
		ReviewedBy:        c.ReviewedBy,
		ReviewedAt:        c.ReviewedAt,
		RejectReason:      c.RejectReason,
		CreatedAt:         c.CreatedAt,
	}
}

package cancellations

import (
	"time"

	"github.com/google/uuid"
)

// CancellationRequest is a customer's request to cancel a whole booking.
// A booking carries at most one non-rejected request; the partial unique
// index uniq_active_cancellation_per_booking enforces that in Postgres.
type CancellationRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID   uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	RequesterID uuid.UUID `gorm:"type:uuid;index;not null" json:"requester_id"`

	Reason string        `gorm:"size:1000" json:"reason"`
	Status RequestStatus `gorm:"type:varchar(10);default:'PENDING';index" json:"status"`

	// Amounts are computed from the refund policy at submission time and
	// frozen; later date changes never reprice a pending request.
	HoldbackAmount float64 `gorm:"not null;check:holdback_amount >= 0" json:"holdback_amount"`
	RefundAmount   float64 `gorm:"not null;check:refund_amount >= 0" json:"refund_amount"`

	RefundStatus      RefundStatus `gorm:"type:varchar(10);default:'PENDING'" json:"refund_status"`
	RefundCompletedAt *time.Time   `json:"refund_completed_at,omitempty"`

	// Payout snapshot taken from the requester's profile at submission.
	BankName          string `gorm:"size:100" json:"bank_name"`
	BankAccountNumber string `gorm:"size:50" json:"bank_account_number"`
	BankAccountHolder string `gorm:"size:100" json:"bank_account_holder"`

	ReviewedBy   *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	RejectReason *string    `gorm:"size:500" json:"reject_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for CancellationRequest
func (CancellationRequest) TableName() string {
	return "cancellation_requests"
}

func (c *CancellationRequest) IsReviewed() bool {
	return c.Status != RequestPending
}

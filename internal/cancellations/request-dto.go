package cancellations

// QuoteQuery asks what a cancellation would cost without committing to it.
type QuoteQuery struct {
	BookingID string `form:"booking_id" validate:"required,uuid"`
}

type SubmitCancellationRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Reason    string `json:"reason" validate:"required,min=5,max=1000"`

	// Optional payout override; falls back to the requester's saved
	// bank details when omitted.
	BankName          string `json:"bank_name" validate:"omitempty,max=100"`
	BankAccountNumber string `json:"bank_account_number" validate:"omitempty,max=50"`
	BankAccountHolder string `json:"bank_account_holder" validate:"omitempty,max=100"`
}

type RejectCancellationRequest struct {
	Reason string `json:"reason" validate:"required,min=5,max=500"`
}

type CancelRoomsRequest struct {
	BookingRoomIDs []string `json:"booking_room_ids" validate:"required,min=1,dive,uuid"`
}

type ListQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

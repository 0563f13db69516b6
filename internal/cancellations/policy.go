package cancellations

import (
	"math"
	"time"
)

// Holdback tiers applied to pre-check-in cancellations, keyed by how far
// ahead of check-in the cancellation lands.
const (
	freeCancellationDays = 15 // 15 or more days out: full refund
	halfHoldbackDays     = 8  // 8 to 14 days out: half held back
)

// DaysUntilCheckIn counts calendar days from now to check-in, rounding
// partial days up. A check-in already in the past yields a negative count.
func DaysUntilCheckIn(checkIn, now time.Time) int {
	return int(math.Ceil(checkIn.Sub(now).Hours() / 24))
}

// ComputeRefund splits the amount paid on a booking into the holdback the
// hotel keeps and the refund owed, based on how close the cancellation is
// to check-in. Nothing paid means nothing to split.
func ComputeRefund(totalPaid float64, daysUntilCheckIn int) (holdback, refund float64) {
	if totalPaid <= 0 {
		return 0, 0
	}
	switch {
	case daysUntilCheckIn >= freeCancellationDays:
		holdback = 0
	case daysUntilCheckIn >= halfHoldbackDays:
		holdback = totalPaid * 0.5
	default:
		holdback = totalPaid
	}
	return holdback, totalPaid - holdback
}

// PostCheckInWindow is how long after the actual check-in stamp individual
// rooms may still be dropped from a stay.
const PostCheckInWindow = 24 * time.Hour

// WithinPostCheckInWindow reports whether a per-room cancellation is still
// allowed, measured from the recorded check-in moment.
func WithinPostCheckInWindow(actualCheckIn, now time.Time) bool {
	return now.Sub(actualCheckIn) <= PostCheckInWindow
}

// ComputeRoomRefund prices a single room dropped within the post-check-in
// window: one night is held back, the rest of the room's stay amount is
// refunded.
func ComputeRoomRefund(nightlyPrice float64, nights int) (holdback, refund float64) {
	holdback = nightlyPrice
	refund = nightlyPrice*float64(nights) - holdback
	if refund < 0 {
		refund = 0
	}
	return holdback, refund
}

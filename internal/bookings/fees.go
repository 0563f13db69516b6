package bookings

import (
	"math"
	"time"
)

// Nights returns the number of nights between two dates, minimum 0.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}

// RemainingNights returns the nights left until check-out as of now,
// rounded up, never below 1. A change on the last night still bills one
// night at the new rate.
func RemainingNights(checkOut, now time.Time) int {
	n := int(math.Ceil(checkOut.Sub(now).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// ComputeChangeFee prices a room reassignment: the nightly delta times
// the remaining nights. Positive means the customer owes the
// difference, negative is a credit, zero is a free change. The plain
// arithmetic delta applies even when both rooms share a room type.
func ComputeChangeFee(oldNightly, newNightly float64, remainingNights int) float64 {
	return (newNightly - oldNightly) * float64(remainingNights)
}

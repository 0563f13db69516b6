package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 14, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "single night",
			checkIn:  date(2026, 3, 10),
			checkOut: date(2026, 3, 11),
			expected: 1,
		},
		{
			name:     "five nights",
			checkIn:  date(2026, 3, 10),
			checkOut: date(2026, 3, 15),
			expected: 5,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "inverted range clamps to zero",
			checkIn:  date(2026, 3, 15),
			checkOut: date(2026, 3, 10),
			expected: 0,
		},
		{
			name:     "same instant",
			checkIn:  date(2026, 3, 10),
			checkOut: date(2026, 3, 10),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestRemainingNights(t *testing.T) {
	checkOut := date(2026, 3, 15)

	tests := []struct {
		name     string
		now      time.Time
		expected int
	}{
		{
			name:     "five nights out",
			now:      date(2026, 3, 10),
			expected: 5,
		},
		{
			name:     "partial night rounds up",
			now:      time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "last night bills at least one",
			now:      time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "past check-out still bills one",
			now:      date(2026, 3, 20),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemainingNights(checkOut, tt.now))
		})
	}
}

func TestComputeChangeFee(t *testing.T) {
	tests := []struct {
		name            string
		oldNightly      float64
		newNightly      float64
		remainingNights int
		expected        float64
	}{
		{
			name:            "upgrade over five nights",
			oldNightly:      800000,
			newNightly:      900000,
			remainingNights: 5,
			expected:        500000,
		},
		{
			name:            "same rate is free",
			oldNightly:      800000,
			newNightly:      800000,
			remainingNights: 4,
			expected:        0,
		},
		{
			name:            "upgrade over three nights",
			oldNightly:      100000,
			newNightly:      150000,
			remainingNights: 3,
			expected:        150000,
		},
		{
			name:            "downgrade credits the difference",
			oldNightly:      1200000,
			newNightly:      800000,
			remainingNights: 2,
			expected:        -800000,
		},
		{
			name:            "one remaining night",
			oldNightly:      450000,
			newNightly:      800000,
			remainingNights: 1,
			expected:        350000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeChangeFee(tt.oldNightly, tt.newNightly, tt.remainingNights))
		})
	}
}

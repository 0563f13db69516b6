package cancellations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilCheckIn(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		expected int
	}{
		{
			name:     "exactly ten days out",
			checkIn:  now.AddDate(0, 0, 10),
			expected: 10,
		},
		{
			name:     "partial day rounds up",
			checkIn:  now.Add(10*24*time.Hour + 2*time.Hour),
			expected: 11,
		},
		{
			name:     "later today counts as one day",
			checkIn:  now.Add(4 * time.Hour),
			expected: 1,
		},
		{
			name:     "same instant",
			checkIn:  now,
			expected: 0,
		},
		{
			name:     "check-in already passed",
			checkIn:  now.AddDate(0, 0, -3),
			expected: -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysUntilCheckIn(tt.checkIn, now))
		})
	}
}

func TestComputeRefund(t *testing.T) {
	tests := []struct {
		name             string
		totalPaid        float64
		daysUntilCheckIn int
		wantHoldback     float64
		wantRefund       float64
	}{
		{
			name:             "twenty days out is a full refund",
			totalPaid:        2000000,
			daysUntilCheckIn: 20,
			wantHoldback:     0,
			wantRefund:       2000000,
		},
		{
			name:             "fifteen days out is still free",
			totalPaid:        2000000,
			daysUntilCheckIn: 15,
			wantHoldback:     0,
			wantRefund:       2000000,
		},
		{
			name:             "fourteen days out holds half",
			totalPaid:        2000000,
			daysUntilCheckIn: 14,
			wantHoldback:     1000000,
			wantRefund:       1000000,
		},
		{
			name:             "ten days out holds half",
			totalPaid:        2000000,
			daysUntilCheckIn: 10,
			wantHoldback:     1000000,
			wantRefund:       1000000,
		},
		{
			name:             "eight days out holds half",
			totalPaid:        2000000,
			daysUntilCheckIn: 8,
			wantHoldback:     1000000,
			wantRefund:       1000000,
		},
		{
			name:             "seven days out holds everything",
			totalPaid:        2000000,
			daysUntilCheckIn: 7,
			wantHoldback:     2000000,
			wantRefund:       0,
		},
		{
			name:             "five days out holds everything",
			totalPaid:        2000000,
			daysUntilCheckIn: 5,
			wantHoldback:     2000000,
			wantRefund:       0,
		},
		{
			name:             "nothing paid splits to zero",
			totalPaid:        0,
			daysUntilCheckIn: 20,
			wantHoldback:     0,
			wantRefund:       0,
		},
		{
			name:             "negative balance splits to zero",
			totalPaid:        -100,
			daysUntilCheckIn: 20,
			wantHoldback:     0,
			wantRefund:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holdback, refund := ComputeRefund(tt.totalPaid, tt.daysUntilCheckIn)
			assert.Equal(t, tt.wantHoldback, holdback)
			assert.Equal(t, tt.wantRefund, refund)
		})
	}
}

func TestWithinPostCheckInWindow(t *testing.T) {
	checkedIn := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	assert.True(t, WithinPostCheckInWindow(checkedIn, checkedIn.Add(2*time.Hour)))
	assert.True(t, WithinPostCheckInWindow(checkedIn, checkedIn.Add(24*time.Hour)))
	assert.False(t, WithinPostCheckInWindow(checkedIn, checkedIn.Add(24*time.Hour+time.Second)))
	assert.False(t, WithinPostCheckInWindow(checkedIn, checkedIn.Add(48*time.Hour)))
}

func TestComputeRoomRefund(t *testing.T) {
	tests := []struct {
		name         string
		nightlyPrice float64
		nights       int
		wantHoldback float64
		wantRefund   float64
	}{
		{
			name:         "three night stay refunds two nights",
			nightlyPrice: 800000,
			nights:       3,
			wantHoldback: 800000,
			wantRefund:   1600000,
		},
		{
			name:         "single night refunds nothing",
			nightlyPrice: 800000,
			nights:       1,
			wantHoldback: 800000,
			wantRefund:   0,
		},
		{
			name:         "zero nights clamps refund at zero",
			nightlyPrice: 450000,
			nights:       0,
			wantHoldback: 450000,
			wantRefund:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holdback, refund := ComputeRoomRefund(tt.nightlyPrice, tt.nights)
			assert.Equal(t, tt.wantHoldback, holdback)
			assert.Equal(t, tt.wantRefund, refund)
		})
	}
}

package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds constraints that AutoMigrate cannot express.
func MigrateConstraints(db *gorm.DB) error {
	// A booking may carry at most one non-rejected cancellation request.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_cancellation_per_booking
		ON cancellation_requests (booking_id)
		WHERE status <> 'REJECTED';
	`).Error
	if err != nil {
		return err
	}

	// Speeds up the date-range overlap query behind available-rooms lookups.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_rooms_room_dates
		ON booking_rooms (room_id, booking_id);
	`).Error
	if err != nil {
		return err
	}

	// Bookings are scanned by status + check-out date by the due-date job.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_status_checkout
		ON bookings (status, check_out_date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}

package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByRef(ctx context.Context, ref string) (*Booking, error)
	GetAll(ctx context.Context, query BookingListQuery) ([]Booking, int64, error)
	GetByCustomer(ctx context.Context, customerID uuid.UUID, query BookingListQuery) ([]Booking, int64, error)

	// Transition operations run the status change and its room-status
	// side effects in one transaction.
	Approve(ctx context.Context, bookingID uuid.UUID) error
	Reject(ctx context.Context, bookingID uuid.UUID, reason string) error
	CheckIn(ctx context.Context, bookingID uuid.UUID, when time.Time) error
	CheckOut(ctx context.Context, bookingID uuid.UUID, when time.Time) error
	Cancel(ctx context.Context, bookingID uuid.UUID, when time.Time) error
	CancelRooms(ctx context.Context, bookingID uuid.UUID, bookingRoomIDs []uuid.UUID, when time.Time, cancelBooking bool) error
	ChangeRoom(ctx context.Context, bookingID, fromRoomID, toRoomID uuid.UUID, newNightly, fee float64, roomStatus string) error
	AddPayment(ctx context.Context, bookingID uuid.UUID, amount float64) error

	// Scanner support
	GetCheckedInWithCheckoutBefore(ctx context.Context, deadline time.Time) ([]Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Preload("Rooms").Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByRef(ctx context.Context, ref string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Preload("Rooms").Where("booking_ref = ?", ref).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetAll(ctx context.Context, query BookingListQuery) ([]Booking, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&Booking{}), query)
}

func (r *repository) GetByCustomer(ctx context.Context, customerID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	db := r.db.WithContext(ctx).Model(&Booking{}).Where("customer_id = ?", customerID)
	return r.list(ctx, db, query)
}

func (r *repository) list(ctx context.Context, db *gorm.DB, query BookingListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	if query.Search != "" {
		db = db.Where("booking_ref ILIKE ?", "%"+query.Search+"%")
	}

	if query.DateFrom != "" {
		db = db.Where("check_in_date >= ?", query.DateFrom)
	}

	if query.DateTo != "" {
		db = db.Where("check_out_date <= ?", query.DateTo)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	offset := (query.Page - 1) * query.Limit

	err := db.Preload("Rooms").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

func (r *repository) Approve(ctx context.Context, bookingID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Booking{}).
			Where("id = ?", bookingID).
			Update("status", StatusApproved).Error; err != nil {
			return err
		}
		return r.setRoomsStatus(tx, bookingID, "RESERVED")
	})
}

func (r *repository) Reject(ctx context.Context, bookingID uuid.UUID, reason string) error {
	return r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"status":        StatusRejected,
			"reject_reason": reason,
		}).Error
}

func (r *repository) CheckIn(ctx context.Context, bookingID uuid.UUID, when time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Booking{}).
			Where("id = ?", bookingID).
			Updates(map[string]interface{}{
				"status":          StatusCheckedIn,
				"actual_check_in": when,
			}).Error; err != nil {
			return err
		}
		return r.setRoomsStatus(tx, bookingID, "OCCUPIED")
	})
}

func (r *repository) CheckOut(ctx context.Context, bookingID uuid.UUID, when time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Booking{}).
			Where("id = ?", bookingID).
			Updates(map[string]interface{}{
				"status":           StatusCompleted,
				"actual_check_out": when,
			}).Error; err != nil {
			return err
		}
		return r.setRoomsStatus(tx, bookingID, "VACANT")
	})
}

func (r *repository) Cancel(ctx context.Context, bookingID uuid.UUID, when time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Booking{}).
			Where("id = ?", bookingID).
			Updates(map[string]interface{}{
				"status":       StatusCancelled,
				"cancelled_at": when,
			}).Error; err != nil {
			return err
		}
		return r.setRoomsStatus(tx, bookingID, "VACANT")
	})
}

func (r *repository) CancelRooms(ctx context.Context, bookingID uuid.UUID, bookingRoomIDs []uuid.UUID, when time.Time, cancelBooking bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&BookingRoom{}).
			Where("booking_id = ? AND id IN ?", bookingID, bookingRoomIDs).
			Update("cancelled_at", when).Error; err != nil {
			return err
		}

		roomIDs := tx.Model(&BookingRoom{}).
			Select("room_id").
			Where("booking_id = ? AND id IN ?", bookingID, bookingRoomIDs)
		if err := tx.Table("rooms").
			Where("id IN (?)", roomIDs).
			Update("status", "VACANT").Error; err != nil {
			return err
		}

		if cancelBooking {
			return tx.Model(&Booking{}).
				Where("id = ?", bookingID).
				Updates(map[string]interface{}{
					"status":       StatusCancelled,
					"cancelled_at": when,
				}).Error
		}
		return nil
	})
}

func (r *repository) ChangeRoom(ctx context.Context, bookingID, fromRoomID, toRoomID uuid.UUID, newNightly, fee float64, roomStatus string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&BookingRoom{}).
			Where("booking_id = ? AND room_id = ? AND cancelled_at IS NULL", bookingID, fromRoomID).
			Updates(map[string]interface{}{
				"room_id":       toRoomID,
				"nightly_price": newNightly,
			}).Error; err != nil {
			return err
		}

		// New room inherits the stay's live status, old room frees up
		if err := tx.Table("rooms").Where("id = ?", toRoomID).Update("status", roomStatus).Error; err != nil {
			return err
		}
		if err := tx.Table("rooms").Where("id = ?", fromRoomID).Update("status", "VACANT").Error; err != nil {
			return err
		}

		return tx.Model(&Booking{}).
			Where("id = ?", bookingID).
			Update("total_amount", gorm.Expr("total_amount + ?", fee)).Error
	})
}

func (r *repository) AddPayment(ctx context.Context, bookingID uuid.UUID, amount float64) error {
	return r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ?", bookingID).
		Update("amount_paid", gorm.Expr("amount_paid + ?", amount)).Error
}

func (r *repository) GetCheckedInWithCheckoutBefore(ctx context.Context, deadline time.Time) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("status = ? AND check_out_date <= ?", StatusCheckedIn, deadline).
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) setRoomsStatus(tx *gorm.DB, bookingID uuid.UUID, status string) error {
	roomIDs := tx.Model(&BookingRoom{}).
		Select("room_id").
		Where("booking_id = ? AND cancelled_at IS NULL", bookingID)
	return tx.Table("rooms").
		Where("id IN (?)", roomIDs).
		Update("status", status).Error
}

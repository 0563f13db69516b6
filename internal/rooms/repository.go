package rooms

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*Room, error)
	GetByNumber(ctx context.Context, number string) (*Room, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Room, error)
	GetAll(ctx context.Context, query RoomListQuery) ([]Room, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Room, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status RoomStatus) error

	// GetAvailable returns bookable rooms with no active booking overlapping
	// the [checkIn, checkOut) range.
	GetAvailable(ctx context.Context, checkIn, checkOut time.Time, roomTypeID *uuid.UUID) ([]Room, error)
	HasActiveBookings(ctx context.Context, roomID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, room *Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	var room Room
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) GetByNumber(ctx context.Context, number string) (*Room, error) {
	var room Room
	err := r.db.WithContext(ctx).Where("number = ?", number).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Room, error) {
	var rooms []Room
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rooms).Error
	return rooms, err
}

func (r *repository) GetAll(ctx context.Context, query RoomListQuery) ([]Room, int64, error) {
	var rooms []Room
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Room{})

	if query.FloorID != "" {
		db = db.Where("floor_id = ?", query.FloorID)
	}

	if query.RoomTypeID != "" {
		db = db.Where("room_type_id = ?", query.RoomTypeID)
	}

	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 50
	}

	offset := (query.Page - 1) * query.Limit

	err := db.Order("number ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&rooms).Error

	return rooms, totalCount, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Room, error) {
	var room Room

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&room).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Room{}).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status RoomStatus) error {
	return r.db.WithContext(ctx).Model(&Room{}).Where("id = ?", id).Update("status", status).Error
}

func (r *repository) GetAvailable(ctx context.Context, checkIn, checkOut time.Time, roomTypeID *uuid.UUID) ([]Room, error) {
	var rooms []Room

	// A room is unavailable when any non-terminal booking overlaps the
	// requested range. BookingRoom rows carry the booking dates so the
	// overlap test stays on one table join.
	subQuery := r.db.
		Table("booking_rooms").
		Select("booking_rooms.room_id").
		Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id").
		Where("bookings.status IN ?", []string{"PENDING_APPROVAL", "APPROVED", "CHECKED_IN"}).
		Where("booking_rooms.cancelled_at IS NULL").
		Where("bookings.check_in_date < ? AND bookings.check_out_date > ?", checkOut, checkIn)

	db := r.db.WithContext(ctx).
		Where("status <> ?", StatusMaintenance).
		Where("id NOT IN (?)", subQuery)

	if roomTypeID != nil {
		db = db.Where("room_type_id = ?", *roomTypeID)
	}

	err := db.Order("number ASC").Find(&rooms).Error
	return rooms, err
}

func (r *repository) HasActiveBookings(ctx context.Context, roomID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("booking_rooms").
		Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id").
		Where("booking_rooms.room_id = ?", roomID).
		Where("bookings.status IN ?", []string{"PENDING_APPROVAL", "APPROVED", "CHECKED_IN"}).
		Where("booking_rooms.cancelled_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

package roomtypes

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, roomType *RoomType) error
	GetByID(ctx context.Context, id uuid.UUID) (*RoomType, error)
	GetByName(ctx context.Context, name string) (*RoomType, error)
	GetAll(ctx context.Context, query RoomTypeListQuery) ([]RoomType, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*RoomType, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountRooms(ctx context.Context, roomTypeID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, roomType *RoomType) error {
	return r.db.WithContext(ctx).Create(roomType).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*RoomType, error) {
	var roomType RoomType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&roomType).Error
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*RoomType, error) {
	var roomType RoomType
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&roomType).Error
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *repository) GetAll(ctx context.Context, query RoomTypeListQuery) ([]RoomType, int64, error) {
	var roomTypes []RoomType
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&RoomType{})

	if query.Search != "" {
		searchTerm := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if query.IsActive != nil {
		db = db.Where("is_active = ?", *query.IsActive)
	}

	if query.MinPrice != nil {
		db = db.Where("nightly_price >= ?", *query.MinPrice)
	}

	if query.MaxPrice != nil {
		db = db.Where("nightly_price <= ?", *query.MaxPrice)
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

	err := db.Order("nightly_price ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&roomTypes).Error

	return roomTypes, totalCount, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*RoomType, error) {
	var roomType RoomType

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&roomType).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&roomType).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&roomType).Error; err != nil {
		return nil, err
	}

	return &roomType, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&RoomType{}).Error
}

func (r *repository) CountRooms(ctx context.Context, roomTypeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("rooms").Where("room_type_id = ?", roomTypeID).Count(&count).Error
	return count, err
}

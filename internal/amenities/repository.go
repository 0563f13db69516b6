package amenities

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, amenity *Amenity) error
	GetByID(ctx context.Context, id uuid.UUID) (*Amenity, error)
	GetBySlug(ctx context.Context, slug string) (*Amenity, error)
	GetAll(ctx context.Context, query AmenityListQuery) ([]Amenity, int64, error)
	GetActive(ctx context.Context) ([]Amenity, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Amenity, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Room type relationship operations
	ReplaceRoomTypeAmenities(ctx context.Context, roomTypeID uuid.UUID, amenityIDs []uuid.UUID) error
	GetByRoomTypeID(ctx context.Context, roomTypeID uuid.UUID) ([]Amenity, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, amenity *Amenity) error {
	return r.db.WithContext(ctx).Create(amenity).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Amenity, error) {
	var amenity Amenity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&amenity).Error
	if err != nil {
		return nil, err
	}
	return &amenity, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Amenity, error) {
	var amenity Amenity
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&amenity).Error
	if err != nil {
		return nil, err
	}
	return &amenity, nil
}

func (r *repository) GetAll(ctx context.Context, query AmenityListQuery) ([]Amenity, int64, error) {
	var amenities []Amenity
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Amenity{})

	if query.Search != "" {
		searchTerm := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if query.IsActive != nil {
		db = db.Where("is_active = ?", *query.IsActive)
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

	err := db.Order("name ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&amenities).Error

	return amenities, totalCount, err
}

func (r *repository) GetActive(ctx context.Context) ([]Amenity, error) {
	var amenities []Amenity
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&amenities).Error
	return amenities, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Amenity, error) {
	var amenity Amenity

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&amenity).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&amenity).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&amenity).Error; err != nil {
		return nil, err
	}

	return &amenity, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Remove room type links before the amenity itself
		if err := tx.Where("amenity_id = ?", id).Delete(&RoomTypeAmenity{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&Amenity{}).Error
	})
}

func (r *repository) ReplaceRoomTypeAmenities(ctx context.Context, roomTypeID uuid.UUID, amenityIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_type_id = ?", roomTypeID).Delete(&RoomTypeAmenity{}).Error; err != nil {
			return fmt.Errorf("failed to clear existing amenities: %w", err)
		}

		if len(amenityIDs) == 0 {
			return nil
		}

		links := make([]RoomTypeAmenity, len(amenityIDs))
		for i, amenityID := range amenityIDs {
			links[i] = RoomTypeAmenity{
				RoomTypeID: roomTypeID,
				AmenityID:  amenityID,
			}
		}

		return tx.Create(&links).Error
	})
}

func (r *repository) GetByRoomTypeID(ctx context.Context, roomTypeID uuid.UUID) ([]Amenity, error) {
	var amenities []Amenity
	err := r.db.WithContext(ctx).
		Joins("JOIN room_type_amenities ON room_type_amenities.amenity_id = amenities.id").
		Where("room_type_amenities.room_type_id = ?", roomTypeID).
		Order("amenities.name ASC").
		Find(&amenities).Error
	return amenities, err
}

package floors

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, floor *Floor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Floor, error)
	GetByNumber(ctx context.Context, number int) (*Floor, error)
	GetAll(ctx context.Context) ([]Floor, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Floor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountRooms(ctx context.Context, floorID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, floor *Floor) error {
	return r.db.WithContext(ctx).Create(floor).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Floor, error) {
	var floor Floor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&floor).Error
	if err != nil {
		return nil, err
	}
	return &floor, nil
}

func (r *repository) GetByNumber(ctx context.Context, number int) (*Floor, error) {
	var floor Floor
	err := r.db.WithContext(ctx).Where("number = ?", number).First(&floor).Error
	if err != nil {
		return nil, err
	}
	return &floor, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Floor, error) {
	var floors []Floor
	err := r.db.WithContext(ctx).Order("number ASC").Find(&floors).Error
	return floors, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Floor, error) {
	var floor Floor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&floor).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&floor).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&floor).Error; err != nil {
		return nil, err
	}

	return &floor, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Floor{}).Error
}

func (r *repository) CountRooms(ctx context.Context, floorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("rooms").Where("floor_id = ?", floorID).Count(&count).Error
	return count, err
}

package amenities

import (
	"time"

	"github.com/google/uuid"
)

// Amenity represents a bookable comfort feature (wifi, minibar, balcony).
type Amenity struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string     `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	Description string     `json:"description" gorm:"size:500"`
	Icon        string     `json:"icon" gorm:"size:100"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedBy   uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	UpdatedBy   *uuid.UUID `json:"updated_by" gorm:"type:uuid"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// RoomTypeAmenity links amenities to room types.
type RoomTypeAmenity struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	RoomTypeID uuid.UUID `json:"room_type_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_roomtype_amenity_unique"`
	AmenityID  uuid.UUID `json:"amenity_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_roomtype_amenity_unique"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (a *Amenity) ToResponse() AmenityResponse {
	return AmenityResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Slug:        a.Slug,
		Description: a.Description,
		Icon:        a.Icon,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// TableName specifies the table name for GORM
func (Amenity) TableName() string {
	return "amenities"
}

func (RoomTypeAmenity) TableName() string {
	return "room_type_amenities"
}

package roomtypes

import (
	"time"

	"stayhub/internal/amenities"

	"github.com/google/uuid"
)

// AmenityInfo is the compact amenity shape embedded in room type responses.
type AmenityInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon"`
}

// RoomType is the rate card entry a booking prices against. The nightly
// price recorded on a booking room is snapshotted from here at booking
// time, so later price edits never change existing bookings.
type RoomType struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null;size:255"`
	Description  string    `json:"description" gorm:"type:text"`
	NightlyPrice float64   `json:"nightly_price" gorm:"not null;check:nightly_price >= 0"`
	Capacity     int       `json:"capacity" gorm:"not null;check:capacity > 0"`
	BedCount     int       `json:"bed_count" gorm:"not null;check:bed_count > 0"`
	FloorArea    float64   `json:"floor_area" gorm:"check:floor_area >= 0"` // square meters
	ImageURL     string    `json:"image_url" gorm:"size:500"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`

	Amenities []amenities.Amenity `json:"-" gorm:"many2many:room_type_amenities;constraint:OnDelete:CASCADE;"`

	CreatedBy uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	UpdatedBy *uuid.UUID `json:"updated_by" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

type RoomTypeResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	NightlyPrice float64       `json:"nightly_price"`
	Capacity     int           `json:"capacity"`
	BedCount     int           `json:"bed_count"`
	FloorArea    float64       `json:"floor_area"`
	ImageURL     string        `json:"image_url"`
	IsActive     bool          `json:"is_active"`
	Amenities    []AmenityInfo `json:"amenities"`
	RoomCount    int64         `json:"room_count,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type PaginatedRoomTypes struct {
	RoomTypes  []RoomTypeResponse `json:"room_types"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// Amenities are populated separately by the service layer.
func (rt *RoomType) ToResponse() RoomTypeResponse {
	return RoomTypeResponse{
		ID:           rt.ID.String(),
		Name:         rt.Name,
		Description:  rt.Description,
		NightlyPrice: rt.NightlyPrice,
		Capacity:     rt.Capacity,
		BedCount:     rt.BedCount,
		FloorArea:    rt.FloorArea,
		ImageURL:     rt.ImageURL,
		IsActive:     rt.IsActive,
		Amenities:    []AmenityInfo{},
		CreatedAt:    rt.CreatedAt,
		UpdatedAt:    rt.UpdatedAt,
	}
}

// TableName specifies the table name for GORM
func (RoomType) TableName() string {
	return "room_types"
}

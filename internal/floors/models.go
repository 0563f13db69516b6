package floors

import (
	"time"

	"github.com/google/uuid"
)

// Floor represents a physical floor of the hotel. Rooms reference a
// floor by ID; a floor cannot be removed while rooms still sit on it.
type Floor struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Number      int       `json:"number" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"size:500"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Floor) TableName() string {
	return "floors"
}

func (f *Floor) ToResponse() FloorResponse {
	return FloorResponse{
		ID:          f.ID.String(),
		Number:      f.Number,
		Name:        f.Name,
		Description: f.Description,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

package rooms

import (
	"time"

	"github.com/google/uuid"
)

// Room is a physical, numbered room on a floor, priced by its room type.
type Room struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Number     string     `json:"number" gorm:"uniqueIndex;not null;size:20"`
	FloorID    uuid.UUID  `json:"floor_id" gorm:"type:uuid;not null;index"`
	RoomTypeID uuid.UUID  `json:"room_type_id" gorm:"type:uuid;not null;index"`
	Status     RoomStatus `json:"status" gorm:"type:varchar(20);default:'VACANT';index"`
	Notes      string     `json:"notes" gorm:"size:500"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Room) TableName() string {
	return "rooms"
}

func (r *Room) ToResponse() RoomResponse {
	return RoomResponse{
		ID:         r.ID.String(),
		Number:     r.Number,
		FloorID:    r.FloorID.String(),
		RoomTypeID: r.RoomTypeID.String(),
		Status:     r.Status,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

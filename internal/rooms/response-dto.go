package rooms

import "time"

type RoomResponse struct {
	ID         string     `json:"id"`
	Number     string     `json:"number"`
	FloorID    string     `json:"floor_id"`
	RoomTypeID string     `json:"room_type_id"`
	Status     RoomStatus `json:"status"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type PaginatedRooms struct {
	Rooms      []RoomResponse `json:"rooms"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

type HoldResponse struct {
	HoldID    string    `json:"hold_id"`
	RoomIDs   []string  `json:"room_ids"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	ExpiresAt time.Time `json:"expires_at"`
}

package rooms

type CreateRoomRequest struct {
	Number     string `json:"number" validate:"required,min=1,max=20"`
	FloorID    string `json:"floor_id" validate:"required,uuid"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Notes      string `json:"notes" validate:"max=500"`
}

type UpdateRoomRequest struct {
	Number     *string `json:"number,omitempty" validate:"omitempty,min=1,max=20"`
	FloorID    *string `json:"floor_id,omitempty" validate:"omitempty,uuid"`
	RoomTypeID *string `json:"room_type_id,omitempty" validate:"omitempty,uuid"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type SetMaintenanceRequest struct {
	Maintenance bool   `json:"maintenance"`
	Notes       string `json:"notes" validate:"max=500"`
}

type RoomListQuery struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
	FloorID    string `form:"floor_id" binding:"omitempty,uuid"`
	RoomTypeID string `form:"room_type_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=VACANT RESERVED OCCUPIED MAINTENANCE"`
}

type AvailableRoomsQuery struct {
	CheckIn    string `form:"check_in" binding:"required"`  // YYYY-MM-DD
	CheckOut   string `form:"check_out" binding:"required"` // YYYY-MM-DD
	RoomTypeID string `form:"room_type_id" binding:"omitempty,uuid"`
}

type HoldRoomsRequest struct {
	RoomIDs  []string `json:"room_ids" validate:"required,min=1,max=10,dive,uuid"`
	CheckIn  string   `json:"check_in" validate:"required"`
	CheckOut string   `json:"check_out" validate:"required"`
}

package roomtypes

type CreateRoomTypeRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=255"`
	Description  string   `json:"description" validate:"max=2000"`
	NightlyPrice float64  `json:"nightly_price" validate:"required,min=0"`
	Capacity     int      `json:"capacity" validate:"required,min=1,max=20"`
	BedCount     int      `json:"bed_count" validate:"required,min=1,max=10"`
	FloorArea    float64  `json:"floor_area" validate:"omitempty,min=0"`
	ImageURL     string   `json:"image_url" validate:"omitempty,url"`
	AmenityIDs   []string `json:"amenity_ids" validate:"omitempty,dive,uuid"`
}

type UpdateRoomTypeRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	NightlyPrice *float64 `json:"nightly_price,omitempty" validate:"omitempty,min=0"`
	Capacity     *int     `json:"capacity,omitempty" validate:"omitempty,min=1,max=20"`
	BedCount     *int     `json:"bed_count,omitempty" validate:"omitempty,min=1,max=10"`
	FloorArea    *float64 `json:"floor_area,omitempty" validate:"omitempty,min=0"`
	ImageURL     *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive     *bool    `json:"is_active,omitempty"`
	AmenityIDs   []string `json:"amenity_ids,omitempty" validate:"omitempty,dive,uuid"`
}

type RoomTypeListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
}

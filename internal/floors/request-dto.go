package floors

type CreateFloorRequest struct {
	Number      int    `json:"number" validate:"required,min=0"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateFloorRequest struct {
	Number      *int    `json:"number,omitempty" validate:"omitempty,min=0"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

package users

// ListQuery carries the staff listing filters.
type ListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Role   string `form:"role"`
	Status string `form:"status"`
	Search string `form:"search"`
}

// CreateUserRequest is the admin payload for creating staff or customer accounts.
type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2,max=100"`
	LastName  string `json:"last_name" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required,oneof=ADMIN RECEPTIONIST CUSTOMER"`
}

// UpdateUserRequest updates profile, address and default payout fields.
type UpdateUserRequest struct {
	FirstName         *string `json:"first_name" binding:"omitempty,min=2,max=100"`
	LastName          *string `json:"last_name" binding:"omitempty,min=2,max=100"`
	Phone             *string `json:"phone" binding:"omitempty,max=20"`
	AddressLine       *string `json:"address_line" binding:"omitempty,max=500"`
	BankName          *string `json:"bank_name" binding:"omitempty,max=100"`
	BankAccountNumber *string `json:"bank_account_number" binding:"omitempty,max=50"`
	BankAccountHolder *string `json:"bank_account_holder" binding:"omitempty,max=100"`
}

package users

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"` // hide in json
	Role      Role      `json:"role" gorm:"type:varchar(20);not null;default:'CUSTOMER'"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string    `json:"phone" gorm:"size:20"`
	Status    Status    `json:"status" gorm:"type:varchar(10);not null;default:'ACTIVE'"`

	// Free-form address, kept as plain text. The province/district/ward
	// hierarchy is resolved by the consumer, not by this service.
	AddressLine string `json:"address_line" gorm:"size:500"`

	// Default payout details used to prefill refund requests.
	BankName          string `json:"bank_name,omitempty" gorm:"size:100"`
	BankAccountNumber string `json:"bank_account_number,omitempty" gorm:"size:50"`
	BankAccountHolder string `json:"bank_account_holder,omitempty" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// FullName returns the display name used in staff listings.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsLocked reports whether the account is blocked from logging in.
func (u *User) IsLocked() bool {
	return u.Status == StatusLocked
}

// HasPayoutDetails reports whether the user has a usable default bank account
// for refunds.
func (u *User) HasPayoutDetails() bool {
	return u.BankName != "" && u.BankAccountNumber != "" && u.BankAccountHolder != ""
}

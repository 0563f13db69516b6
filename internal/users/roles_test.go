package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("ADMIN"))
	assert.True(t, IsValidRole("RECEPTIONIST"))
	assert.True(t, IsValidRole("CUSTOMER"))
	assert.False(t, IsValidRole("MANAGER"))
	assert.False(t, IsValidRole("admin"))
	assert.False(t, IsValidRole(""))
}

func TestRoleIsStaff(t *testing.T) {
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleReceptionist.IsStaff())
	assert.False(t, RoleCustomer.IsStaff())
	assert.False(t, Role("").IsStaff())
}

func TestUserHelpers(t *testing.T) {
	u := &User{FirstName: "Linh", LastName: "Tran"}
	assert.Equal(t, "Linh Tran", u.FullName())
	assert.False(t, u.HasPayoutDetails())

	u.BankName = "Vietcombank"
	u.BankAccountNumber = "00112233"
	u.BankAccountHolder = "TRAN THI LINH"
	assert.True(t, u.HasPayoutDetails())
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stayhub/internal/shared/middleware"
	"stayhub/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func runGuard(t *testing.T, guard gin.HandlerFunc, role string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if role != "" {
		c.Set("user_role", role)
	}

	guard(c)
	return w, c.IsAborted()
}

func TestRequireAdmin(t *testing.T) {
	_, aborted := runGuard(t, middleware.RequireAdmin(), string(users.RoleAdmin))
	assert.False(t, aborted)

	w, aborted := runGuard(t, middleware.RequireAdmin(), string(users.RoleReceptionist))
	assert.True(t, aborted)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, aborted = runGuard(t, middleware.RequireAdmin(), string(users.RoleCustomer))
	assert.True(t, aborted)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireStaff(t *testing.T) {
	_, aborted := runGuard(t, middleware.RequireStaff(), string(users.RoleAdmin))
	assert.False(t, aborted)

	_, aborted = runGuard(t, middleware.RequireStaff(), string(users.RoleReceptionist))
	assert.False(t, aborted)

	w, aborted := runGuard(t, middleware.RequireStaff(), string(users.RoleCustomer))
	assert.True(t, aborted)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesWithoutRole(t *testing.T) {
	w, aborted := runGuard(t, middleware.RequireRoles(string(users.RoleAdmin)), "")
	assert.True(t, aborted)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

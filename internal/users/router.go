package users

import (
	"stayhub/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes configures the admin user management routes.
func SetupUserRoutes(rg *gin.RouterGroup, controller *Controller) {
	admin := rg.Group("/users")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.ListUsers)
		admin.POST("", controller.CreateUser)
		admin.GET("/:id", controller.GetUser)
		admin.PUT("/:id", controller.UpdateUser)
		admin.POST("/:id/lock", controller.LockUser)
		admin.POST("/:id/unlock", controller.UnlockUser)
	}
}

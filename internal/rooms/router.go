package rooms

import (
	"stayhub/internal/shared/config"
	"stayhub/internal/shared/middleware"
	"stayhub/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoomRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cacheService cache.Service, cfg *config.Config) {
	repo := NewRepository(db)
	holds := NewHoldManager(redisClient)
	service := NewService(repo, holds, cacheService, cfg.Redis.RoomHoldTTL)
	controller := NewController(service)

	roomGroup := rg.Group("/rooms")
	roomGroup.Use(middleware.JWTAuth())
	{
		roomGroup.GET("/available", controller.GetAvailableRooms)
		roomGroup.POST("/hold", controller.HoldRooms)
		roomGroup.DELETE("/hold/:id", controller.ReleaseHold)

		staff := roomGroup.Group("")
		staff.Use(middleware.RequireStaff())
		{
			staff.GET("", controller.GetRooms)
			staff.GET("/:id", controller.GetRoom)
		}

		admin := roomGroup.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("", controller.CreateRoom)
			admin.PUT("/:id", controller.UpdateRoom)
			admin.DELETE("/:id", controller.DeleteRoom)
			admin.PUT("/:id/maintenance", controller.SetMaintenance)
		}
	}
}

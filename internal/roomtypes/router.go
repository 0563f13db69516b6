package roomtypes

import (
	"stayhub/internal/amenities"
	"stayhub/internal/shared/middleware"
	"stayhub/pkg/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoomTypeRoutes(rg *gin.RouterGroup, db *gorm.DB, cacheService cache.Service) {
	amenityService := amenities.NewService(amenities.NewRepository(db), cacheService)

	repo := NewRepository(db)
	service := NewService(repo, amenityService, cacheService)
	controller := NewController(service)

	roomTypeGroup := rg.Group("/room-types")
	roomTypeGroup.Use(middleware.JWTAuth())
	{
		roomTypeGroup.GET("", controller.GetRoomTypes)
		roomTypeGroup.GET("/:id", controller.GetRoomType)

		admin := roomTypeGroup.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("", controller.CreateRoomType)
			admin.PUT("/:id", controller.UpdateRoomType)
			admin.DELETE("/:id", controller.DeleteRoomType)
			admin.PUT("/:id/amenities", controller.ReplaceAmenities)
		}
	}
}

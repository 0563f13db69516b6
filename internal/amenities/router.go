package amenities

import (
	"stayhub/internal/shared/middleware"
	"stayhub/pkg/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupAmenityRoutes(rg *gin.RouterGroup, db *gorm.DB, cacheService cache.Service) {
	repo := NewRepository(db)
	service := NewService(repo, cacheService)
	controller := NewController(service)

	amenityGroup := rg.Group("/amenities")
	amenityGroup.Use(middleware.JWTAuth())
	{
		amenityGroup.GET("", controller.GetAmenities)
		amenityGroup.GET("/active", controller.GetActiveAmenities)
		amenityGroup.GET("/:id", controller.GetAmenity)

		admin := amenityGroup.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("", controller.CreateAmenity)
			admin.PUT("/:id", controller.UpdateAmenity)
			admin.DELETE("/:id", controller.DeleteAmenity)
		}
	}
}

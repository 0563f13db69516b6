package floors

import (
	"stayhub/internal/shared/middleware"
	"stayhub/pkg/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupFloorRoutes(rg *gin.RouterGroup, db *gorm.DB, cacheService cache.Service) {
	repo := NewRepository(db)
	service := NewService(repo, cacheService)
	controller := NewController(service)

	floorGroup := rg.Group("/floors")
	floorGroup.Use(middleware.JWTAuth())
	{
		floorGroup.GET("", controller.GetFloors)
		floorGroup.GET("/:id", controller.GetFloor)

		admin := floorGroup.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("", controller.CreateFloor)
			admin.PUT("/:id", controller.UpdateFloor)
			admin.DELETE("/:id", controller.DeleteFloor)
		}
	}
}

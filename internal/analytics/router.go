package analytics

import (
	"stayhub/internal/shared/middleware"
	"stayhub/pkg/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup, db *gorm.DB, cacheService cache.Service) {
	repo := NewRepository(db)
	service := NewService(repo, cacheService)
	controller := NewController(service)

	analyticsGroup := rg.Group("/analytics")
	analyticsGroup.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		analyticsGroup.GET("/dashboard", controller.GetDashboard)
	}
}

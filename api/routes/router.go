// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"stayhub/internal/amenities"
	"stayhub/internal/analytics"
	"stayhub/internal/auth"
	"stayhub/internal/bookings"
	"stayhub/internal/cancellations"
	"stayhub/internal/floors"
	"stayhub/internal/rooms"
	"stayhub/internal/roomtypes"
	"stayhub/internal/shared/config"
	"stayhub/internal/shared/database"
	"stayhub/internal/users"
	"stayhub/pkg/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	notifier bookings.Notifier
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, notifier bookings.Notifier) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cacheService := cache.NewService(r.db.GetRedis())
	pg := r.db.GetPostgreSQL()
	redisClient := r.db.GetRedis()

	api := engine.Group(r.config.GetAPIBasePath())
	{
		auth.SetupAuthRoutes(api, pg, r.config)

		// Lookup data
		floors.SetupFloorRoutes(api, pg, cacheService)
		amenities.SetupAmenityRoutes(api, pg, cacheService)
		roomtypes.SetupRoomTypeRoutes(api, pg, cacheService)
		rooms.SetupRoomRoutes(api, pg, redisClient, cacheService, r.config)

		// Booking lifecycle; cancellations consume the booking service
		bookingService := bookings.SetupBookingRoutes(api, pg, redisClient, r.notifier)
		cancellations.SetupCancellationRoutes(api, pg, bookingService, r.notifier)

		// Admin
		userController := users.NewController(users.NewService(users.NewRepository(pg)))
		users.SetupUserRoutes(api, userController)
		analytics.SetupAnalyticsRoutes(api, pg, cacheService)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "stayhub-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "stayhub-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	// Mounted under the API base path, matching the URL logged at startup
	engine.GET(r.config.GetAPIBasePath()+"/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

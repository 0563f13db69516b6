package bookings

import (
	"stayhub/internal/rooms"
	"stayhub/internal/roomtypes"
	"stayhub/internal/shared/middleware"
	"stayhub/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupBookingRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, notifier Notifier) Service {
	repo := NewRepository(db)
	roomRepo := rooms.NewRepository(db)
	roomTypeRepo := roomtypes.NewRepository(db)
	userRepo := users.NewRepository(db)
	holds := rooms.NewHoldManager(redisClient)
	service := NewService(repo, roomRepo, roomTypeRepo, userRepo, holds, notifier, redisClient)
	controller := NewController(service)

	bookingGroup := rg.Group("/bookings")
	bookingGroup.Use(middleware.JWTAuth())
	{
		bookingGroup.POST("", controller.CreateBooking)
		bookingGroup.GET("/:id", controller.GetBooking)

		staff := bookingGroup.Group("")
		staff.Use(middleware.RequireStaff())
		{
			staff.GET("", controller.ListBookings)
			staff.POST("/walk-in", controller.CreateWalkInBooking)
			staff.POST("/:id/approve", controller.ApproveBooking)
			staff.POST("/:id/reject", controller.RejectBooking)
			staff.POST("/:id/check-in", controller.CheckInBooking)
			staff.POST("/:id/check-out", controller.CheckOutBooking)
			staff.POST("/:id/change-room", controller.ChangeRoom)
			staff.POST("/:id/payments", controller.RecordPayment)
		}
	}

	myGroup := rg.Group("/users/bookings")
	myGroup.Use(middleware.JWTAuth())
	{
		myGroup.GET("", controller.GetMyBookings)
	}

	return service
}

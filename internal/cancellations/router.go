package cancellations

import (
	"stayhub/internal/bookings"
	"stayhub/internal/shared/middleware"
	"stayhub/internal/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupCancellationRoutes(rg *gin.RouterGroup, db *gorm.DB, bookingService bookings.Service, notifier bookings.Notifier) {
	repo := NewRepository(db)
	userRepo := users.NewRepository(db)
	service := NewService(repo, bookingService, userRepo, notifier)
	controller := NewController(service)

	cancellationGroup := rg.Group("/cancellations")
	cancellationGroup.Use(middleware.JWTAuth())
	{
		cancellationGroup.GET("/quote", controller.GetQuote)
		cancellationGroup.POST("", controller.SubmitCancellation)
		cancellationGroup.GET("/:id", controller.GetCancellation)

		staff := cancellationGroup.Group("")
		staff.Use(middleware.RequireStaff())
		{
			staff.GET("", controller.ListCancellations)
			staff.POST("/:id/approve", controller.ApproveCancellation)
			staff.POST("/:id/reject", controller.RejectCancellation)
		}

		admin := cancellationGroup.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/:id/refund-complete", controller.CompleteRefund)
		}
	}

	bookingGroup := rg.Group("/bookings")
	bookingGroup.Use(middleware.JWTAuth())
	{
		bookingGroup.POST("/:id/cancel-rooms", controller.CancelRooms)
	}

	myGroup := rg.Group("/users/cancellations")
	myGroup.Use(middleware.JWTAuth())
	{
		myGroup.GET("", controller.GetMyCancellations)
	}
}

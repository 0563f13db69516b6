package database

import (
	"stayhub/internal/amenities"
	"stayhub/internal/bookings"
	"stayhub/internal/cancellations"
	"stayhub/internal/floors"
	"stayhub/internal/rooms"
	"stayhub/internal/roomtypes"
	"stayhub/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&floors.Floor{},
		&amenities.Amenity{},
		&amenities.RoomTypeAmenity{},
		&roomtypes.RoomType{},
		&rooms.Room{},
		&bookings.Booking{},
		&bookings.BookingRoom{},
		&cancellations.CancellationRequest{},
	)
}

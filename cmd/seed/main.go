package main

import (
	"fmt"
	"log"
	"time"

	"stayhub/internal/amenities"
	"stayhub/internal/bookings"
	"stayhub/internal/floors"
	"stayhub/internal/rooms"
	"stayhub/internal/roomtypes"
	"stayhub/internal/shared/config"
	"stayhub/internal/shared/database"
	"stayhub/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB

	admin        *users.User
	receptionist *users.User
	customers    []users.User
	floors       []floors.Floor
	roomTypes    []roomtypes.RoomType
	rooms        []rooms.Room
}

func main() {
	fmt.Println("🌱 Starting StayHub Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"cancellation_requests",
		"booking_rooms",
		"bookings",
		"rooms",
		"room_type_amenities",
		"room_types",
		"amenities",
		"floors",
		"users",
	}

	pg := s.db.GetPostgreSQL()
	for _, table := range tables {
		if err := pg.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY CASCADE").Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	if err := s.seedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := s.seedFloors(); err != nil {
		return fmt.Errorf("failed to seed floors: %w", err)
	}
	if err := s.seedRoomTypesAndAmenities(); err != nil {
		return fmt.Errorf("failed to seed room types: %w", err)
	}
	if err := s.seedRooms(); err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}
	if err := s.seedBookings(); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}
	return nil
}

func (s *Seeder) seedUsers() error {
	pg := s.db.GetPostgreSQL()

	hash := func(plain string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		return string(h)
	}

	admin := users.User{
		FirstName: "Alice",
		LastName:  "Nguyen",
		Email:     "admin@stayhub.local",
		Password:  hash("Admin@123"),
		Role:      users.RoleAdmin,
		Phone:     "0900000001",
		Status:    users.StatusActive,
	}
	if err := pg.Create(&admin).Error; err != nil {
		return err
	}
	s.admin = &admin

	receptionist := users.User{
		FirstName: "Bao",
		LastName:  "Tran",
		Email:     "reception@stayhub.local",
		Password:  hash("Reception@123"),
		Role:      users.RoleReceptionist,
		Phone:     "0900000002",
		Status:    users.StatusActive,
	}
	if err := pg.Create(&receptionist).Error; err != nil {
		return err
	}
	s.receptionist = &receptionist

	customerSeed := []struct {
		first, last, email, phone string
		bank                      bool
	}{
		{"Chi", "Le", "chi.le@example.com", "0911111111", true},
		{"Duc", "Pham", "duc.pham@example.com", "0922222222", true},
		{"Emma", "Hoang", "emma.hoang@example.com", "0933333333", false},
	}

	for _, c := range customerSeed {
		customer := users.User{
			FirstName:   c.first,
			LastName:    c.last,
			Email:       c.email,
			Password:    hash("Customer@123"),
			Role:        users.RoleCustomer,
			Phone:       c.phone,
			Status:      users.StatusActive,
			AddressLine: "123 Nguyen Hue, District 1, Ho Chi Minh City",
		}
		if c.bank {
			customer.BankName = "Vietcombank"
			customer.BankAccountNumber = "0071000" + c.phone[4:]
			customer.BankAccountHolder = c.first + " " + c.last
		}
		if err := pg.Create(&customer).Error; err != nil {
			return err
		}
		s.customers = append(s.customers, customer)
	}

	fmt.Printf("  👤 Seeded %d users\n", 2+len(s.customers))
	return nil
}

func (s *Seeder) seedFloors() error {
	pg := s.db.GetPostgreSQL()

	floorSeed := []floors.Floor{
		{Number: 1, Name: "Ground Floor", Description: "Lobby level with garden view rooms", IsActive: true},
		{Number: 2, Name: "Second Floor", Description: "Standard and deluxe rooms", IsActive: true},
		{Number: 3, Name: "Third Floor", Description: "Deluxe rooms and family suites", IsActive: true},
		{Number: 4, Name: "Top Floor", Description: "Premium suites with city view", IsActive: true},
	}

	for i := range floorSeed {
		if err := pg.Create(&floorSeed[i]).Error; err != nil {
			return err
		}
	}
	s.floors = floorSeed

	fmt.Printf("  🏢 Seeded %d floors\n", len(s.floors))
	return nil
}

func (s *Seeder) seedRoomTypesAndAmenities() error {
	pg := s.db.GetPostgreSQL()

	amenitySeed := []amenities.Amenity{
		{Name: "Air Conditioning", Slug: "air-conditioning", Icon: "snowflake", IsActive: true, CreatedBy: s.admin.ID},
		{Name: "Free WiFi", Slug: "free-wifi", Icon: "wifi", IsActive: true, CreatedBy: s.admin.ID},
		{Name: "Mini Bar", Slug: "mini-bar", Icon: "glass", IsActive: true, CreatedBy: s.admin.ID},
		{Name: "Bathtub", Slug: "bathtub", Icon: "bath", IsActive: true, CreatedBy: s.admin.ID},
		{Name: "City View", Slug: "city-view", Icon: "building", IsActive: true, CreatedBy: s.admin.ID},
		{Name: "Breakfast Included", Slug: "breakfast-included", Icon: "coffee", IsActive: true, CreatedBy: s.admin.ID},
	}
	for i := range amenitySeed {
		if err := pg.Create(&amenitySeed[i]).Error; err != nil {
			return err
		}
	}

	typeSeed := []struct {
		roomType  roomtypes.RoomType
		amenities []int // indices into amenitySeed
	}{
		{
			roomType: roomtypes.RoomType{
				Name:         "Standard",
				Description:  "Cozy room with a double bed",
				NightlyPrice: 450000,
				Capacity:     2,
				BedCount:     1,
				FloorArea:    22,
				IsActive:     true,
				CreatedBy:    s.admin.ID,
			},
			amenities: []int{0, 1},
		},
		{
			roomType: roomtypes.RoomType{
				Name:         "Deluxe",
				Description:  "Spacious room with a king bed and city view",
				NightlyPrice: 800000,
				Capacity:     2,
				BedCount:     1,
				FloorArea:    30,
				IsActive:     true,
				CreatedBy:    s.admin.ID,
			},
			amenities: []int{0, 1, 2, 4},
		},
		{
			roomType: roomtypes.RoomType{
				Name:         "Family Suite",
				Description:  "Two-bedroom suite for families",
				NightlyPrice: 1200000,
				Capacity:     4,
				BedCount:     2,
				FloorArea:    48,
				IsActive:     true,
				CreatedBy:    s.admin.ID,
			},
			amenities: []int{0, 1, 2, 3, 5},
		},
		{
			roomType: roomtypes.RoomType{
				Name:         "Premium Suite",
				Description:  "Top-floor suite with panoramic view and bathtub",
				NightlyPrice: 2000000,
				Capacity:     2,
				BedCount:     1,
				FloorArea:    55,
				IsActive:     true,
				CreatedBy:    s.admin.ID,
			},
			amenities: []int{0, 1, 2, 3, 4, 5},
		},
	}

	for i := range typeSeed {
		rt := &typeSeed[i].roomType
		for _, idx := range typeSeed[i].amenities {
			rt.Amenities = append(rt.Amenities, amenitySeed[idx])
		}
		if err := pg.Create(rt).Error; err != nil {
			return err
		}
		s.roomTypes = append(s.roomTypes, *rt)
	}

	fmt.Printf("  🛏️  Seeded %d room types, %d amenities\n", len(s.roomTypes), len(amenitySeed))
	return nil
}

func (s *Seeder) seedRooms() error {
	pg := s.db.GetPostgreSQL()

	// Floor layout: standards low, suites high.
	layout := []struct {
		floorIdx int
		typeIdx  int
		count    int
	}{
		{0, 0, 6}, // ground floor standards
		{1, 0, 4},
		{1, 1, 4},
		{2, 1, 4},
		{2, 2, 3},
		{3, 2, 2},
		{3, 3, 3},
	}

	for _, l := range layout {
		floor := s.floors[l.floorIdx]
		roomType := s.roomTypes[l.typeIdx]
		for n := 1; n <= l.count; n++ {
			room := rooms.Room{
				Number:     fmt.Sprintf("%d%02d", floor.Number, len(s.rooms)%100+n),
				FloorID:    floor.ID,
				RoomTypeID: roomType.ID,
				Status:     rooms.StatusVacant,
			}
			if err := pg.Create(&room).Error; err != nil {
				return err
			}
			s.rooms = append(s.rooms, room)
		}
	}

	// One room under maintenance for realism.
	if len(s.rooms) > 0 {
		last := s.rooms[len(s.rooms)-1]
		if err := pg.Model(&rooms.Room{}).Where("id = ?", last.ID).
			Update("status", rooms.StatusMaintenance).Error; err != nil {
			return err
		}
	}

	fmt.Printf("  🚪 Seeded %d rooms\n", len(s.rooms))
	return nil
}

func (s *Seeder) seedBookings() error {
	pg := s.db.GetPostgreSQL()

	if len(s.customers) < 2 || len(s.rooms) < 4 {
		return fmt.Errorf("not enough seed data for bookings")
	}

	checkIn := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	checkOut := checkIn.AddDate(0, 0, 3)
	nights := 3

	// A pending online booking awaiting approval.
	pendingRoom := s.rooms[0]
	pendingType := s.roomTypes[0]
	pending := bookings.Booking{
		CustomerID:   s.customers[0].ID,
		BookingRef:   newBookingRef(),
		Channel:      bookings.ChannelOnline,
		Status:       bookings.StatusPendingApproval,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  pendingType.NightlyPrice * float64(nights),
		AmountPaid:   pendingType.NightlyPrice * float64(nights),
		GuestNote:    "Late arrival, around 10pm",
		CreatedBy:    s.customers[0].ID,
		Rooms: []bookings.BookingRoom{
			{RoomID: pendingRoom.ID, NightlyPrice: pendingType.NightlyPrice, Nights: nights},
		},
	}
	if err := pg.Create(&pending).Error; err != nil {
		return err
	}

	// An approved walk-in with its room reserved.
	walkInRoom := s.rooms[6]
	walkInType := s.roomTypes[0]
	walkIn := bookings.Booking{
		CustomerID:   s.customers[1].ID,
		BookingRef:   newBookingRef(),
		Channel:      bookings.ChannelWalkIn,
		Status:       bookings.StatusApproved,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  walkInType.NightlyPrice * float64(nights),
		AmountPaid:   walkInType.NightlyPrice,
		CreatedBy:    s.receptionist.ID,
		Rooms: []bookings.BookingRoom{
			{RoomID: walkInRoom.ID, NightlyPrice: walkInType.NightlyPrice, Nights: nights},
		},
	}
	if err := pg.Create(&walkIn).Error; err != nil {
		return err
	}
	if err := pg.Model(&rooms.Room{}).Where("id = ?", walkInRoom.ID).
		Update("status", rooms.StatusReserved).Error; err != nil {
		return err
	}

	fmt.Printf("  📘 Seeded 2 bookings\n")
	return nil
}

func newBookingRef() string {
	id := uuid.New().String()
	return "BK-" + id[:8]
}

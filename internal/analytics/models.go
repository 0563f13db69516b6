package analytics

import "time"

// DashboardAnalytics is the admin dashboard payload.
type DashboardAnalytics struct {
	Overview        OverviewMetrics       `json:"overview"`
	BookingMetrics  BookingMetrics        `json:"booking_metrics"`
	RevenueMetrics  RevenueMetrics        `json:"revenue_metrics"`
	RoomTypeMetrics []RoomTypePerformance `json:"room_type_metrics"`
	DailyOccupancy  []DailyOccupancy      `json:"daily_occupancy"`
	GeneratedAt     time.Time             `json:"generated_at"`
}

// OverviewMetrics covers the top cards of the dashboard.
type OverviewMetrics struct {
	TotalRooms        int64   `json:"total_rooms"`
	OccupiedRooms     int64   `json:"occupied_rooms"`
	ReservedRooms     int64   `json:"reserved_rooms"`
	VacantRooms       int64   `json:"vacant_rooms"`
	MaintenanceRooms  int64   `json:"maintenance_rooms"`
	OccupancyRate     float64 `json:"occupancy_rate"`
	TotalCustomers    int64   `json:"total_customers"`
	PendingApprovals  int64   `json:"pending_approvals"`
	PendingRefunds    int64   `json:"pending_refunds"`
	CheckedInBookings int64   `json:"checked_in_bookings"`
}

// BookingMetrics aggregates booking counts by state and channel.
type BookingMetrics struct {
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ApprovedBookings  int64 `json:"approved_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	RejectedBookings  int64 `json:"rejected_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
	OnlineBookings    int64 `json:"online_bookings"`
	WalkInBookings    int64 `json:"walk_in_bookings"`
}

type RevenueMetrics struct {
	TotalRevenue     float64 `json:"total_revenue"`
	CollectedRevenue float64 `json:"collected_revenue"`
	RefundsPaid      float64 `json:"refunds_paid"`
	HoldbackRevenue  float64 `json:"holdback_revenue"`
	RevenueThisMonth float64 `json:"revenue_this_month"`
}

// RoomTypePerformance ranks room types by bookings and revenue.
type RoomTypePerformance struct {
	RoomTypeID   string  `json:"room_type_id"`
	RoomTypeName string  `json:"room_type_name"`
	NightlyPrice float64 `json:"nightly_price"`
	RoomCount    int64   `json:"room_count"`
	BookingCount int64   `json:"booking_count"`
	Revenue      float64 `json:"revenue"`
}

// DailyOccupancy is one point of the occupancy trend chart.
type DailyOccupancy struct {
	Date          time.Time `json:"date"`
	BookingsMade  int64     `json:"bookings_made"`
	RoomsOccupied int64     `json:"rooms_occupied"`
	Revenue       float64   `json:"revenue"`
}

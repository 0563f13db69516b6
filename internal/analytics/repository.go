package analytics

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	GetDashboardAnalytics(ctx context.Context) (*DashboardAnalytics, error)
	GetOverviewMetrics(ctx context.Context) (*OverviewMetrics, error)
	GetBookingMetrics(ctx context.Context) (*BookingMetrics, error)
	GetRevenueMetrics(ctx context.Context) (*RevenueMetrics, error)
	GetRoomTypePerformance(ctx context.Context) ([]RoomTypePerformance, error)
	GetDailyOccupancy(ctx context.Context, days int) ([]DailyOccupancy, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetDashboardAnalytics(ctx context.Context) (*DashboardAnalytics, error) {
	overview, err := r.GetOverviewMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get overview metrics: %w", err)
	}

	bookingMetrics, err := r.GetBookingMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking metrics: %w", err)
	}

	revenueMetrics, err := r.GetRevenueMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue metrics: %w", err)
	}

	roomTypeMetrics, err := r.GetRoomTypePerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get room type performance: %w", err)
	}

	dailyOccupancy, err := r.GetDailyOccupancy(ctx, 30)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily occupancy: %w", err)
	}

	return &DashboardAnalytics{
		Overview:        *overview,
		BookingMetrics:  *bookingMetrics,
		RevenueMetrics:  *revenueMetrics,
		RoomTypeMetrics: roomTypeMetrics,
		DailyOccupancy:  dailyOccupancy,
		GeneratedAt:     time.Now(),
	}, nil
}

func (r *repository) GetOverviewMetrics(ctx context.Context) (*OverviewMetrics, error) {
	var metrics OverviewMetrics

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_rooms,
			COUNT(*) FILTER (WHERE status = 'OCCUPIED') AS occupied_rooms,
			COUNT(*) FILTER (WHERE status = 'RESERVED') AS reserved_rooms,
			COUNT(*) FILTER (WHERE status = 'VACANT') AS vacant_rooms,
			COUNT(*) FILTER (WHERE status = 'MAINTENANCE') AS maintenance_rooms
		FROM rooms
	`).Scan(&metrics).Error
	if err != nil {
		return nil, err
	}

	// Occupancy counts bookable rooms only.
	bookable := metrics.TotalRooms - metrics.MaintenanceRooms
	if bookable > 0 {
		metrics.OccupancyRate = float64(metrics.OccupiedRooms) / float64(bookable) * 100
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM users WHERE role = 'CUSTOMER'
	`).Scan(&metrics.TotalCustomers).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = 'PENDING_APPROVAL') AS pending_approvals,
			COUNT(*) FILTER (WHERE status = 'CHECKED_IN') AS checked_in_bookings
		FROM bookings
	`).Scan(&metrics).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM cancellation_requests
		WHERE status = 'APPROVED' AND refund_status = 'PENDING'
	`).Scan(&metrics.PendingRefunds).Error
	if err != nil {
		return nil, err
	}

	return &metrics, nil
}

func (r *repository) GetBookingMetrics(ctx context.Context) (*BookingMetrics, error) {
	var metrics BookingMetrics

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_bookings,
			COUNT(*) FILTER (WHERE status = 'PENDING_APPROVAL') AS pending_bookings,
			COUNT(*) FILTER (WHERE status = 'APPROVED') AS approved_bookings,
			COUNT(*) FILTER (WHERE status = 'COMPLETED') AS completed_bookings,
			COUNT(*) FILTER (WHERE status = 'REJECTED') AS rejected_bookings,
			COUNT(*) FILTER (WHERE status = 'CANCELLED') AS cancelled_bookings,
			COUNT(*) FILTER (WHERE channel = 'ONLINE') AS online_bookings,
			COUNT(*) FILTER (WHERE channel = 'WALK_IN') AS walk_in_bookings
		FROM bookings
	`).Scan(&metrics).Error
	if err != nil {
		return nil, err
	}

	return &metrics, nil
}

func (r *repository) GetRevenueMetrics(ctx context.Context) (*RevenueMetrics, error) {
	var metrics RevenueMetrics

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_amount) FILTER (WHERE status NOT IN ('REJECTED', 'CANCELLED')), 0) AS total_revenue,
			COALESCE(SUM(amount_paid), 0) AS collected_revenue,
			COALESCE(SUM(amount_paid) FILTER (WHERE status = 'COMPLETED' AND date_trunc('month', updated_at) = date_trunc('month', now())), 0) AS revenue_this_month
		FROM bookings
	`).Scan(&metrics).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(refund_amount) FILTER (WHERE refund_status = 'COMPLETED'), 0) AS refunds_paid,
			COALESCE(SUM(holdback_amount) FILTER (WHERE status = 'APPROVED'), 0) AS holdback_revenue
		FROM cancellation_requests
	`).Scan(&metrics).Error
	if err != nil {
		return nil, err
	}

	return &metrics, nil
}

func (r *repository) GetRoomTypePerformance(ctx context.Context) ([]RoomTypePerformance, error) {
	var performance []RoomTypePerformance

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			rt.id AS room_type_id,
			rt.name AS room_type_name,
			rt.nightly_price,
			COUNT(DISTINCT r.id) AS room_count,
			COUNT(DISTINCT br.booking_id) AS booking_count,
			COALESCE(SUM(br.nightly_price * br.nights) FILTER (WHERE br.cancelled_at IS NULL AND b.status NOT IN ('REJECTED', 'CANCELLED')), 0) AS revenue
		FROM room_types rt
		LEFT JOIN rooms r ON r.room_type_id = rt.id
		LEFT JOIN booking_rooms br ON br.room_id = r.id
		LEFT JOIN bookings b ON b.id = br.booking_id
		GROUP BY rt.id, rt.name, rt.nightly_price
		ORDER BY revenue DESC
	`).Scan(&performance).Error
	if err != nil {
		return nil, err
	}

	return performance, nil
}

func (r *repository) GetDailyOccupancy(ctx context.Context, days int) ([]DailyOccupancy, error) {
	var stats []DailyOccupancy

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			d.date,
			COALESCE(made.bookings_made, 0) AS bookings_made,
			COALESCE(occ.rooms_occupied, 0) AS rooms_occupied,
			COALESCE(made.revenue, 0) AS revenue
		FROM generate_series(now()::date - ?::int, now()::date, interval '1 day') AS d(date)
		LEFT JOIN (
			SELECT created_at::date AS date, COUNT(*) AS bookings_made, SUM(amount_paid) AS revenue
			FROM bookings
			GROUP BY created_at::date
		) made ON made.date = d.date
		LEFT JOIN (
			SELECT b.check_in_date::date AS date, COUNT(br.id) AS rooms_occupied
			FROM bookings b
			JOIN booking_rooms br ON br.booking_id = b.id AND br.cancelled_at IS NULL
			WHERE b.status IN ('APPROVED', 'CHECKED_IN', 'COMPLETED')
			GROUP BY b.check_in_date::date
		) occ ON occ.date = d.date
		ORDER BY d.date
	`, days).Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

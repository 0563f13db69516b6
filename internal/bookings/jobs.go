package bookings

import (
	"context"
	"log"
	"time"

	"stayhub/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

// DueDateScanner maintains the display-only DUE_SOON/OVERDUE overlay
// for checked-in bookings. The flags live in a redis hash and color the
// staff dashboard; they are never authoritative booking state.
type DueDateScanner struct {
	repo        Repository
	redisClient *redis.Client
	config      *ScannerConfig
	done        chan struct{}
}

// ScannerConfig contains configuration for the due-date scanner
type ScannerConfig struct {
	ScanInterval time.Duration
	DueSoonLead  time.Duration
}

// DefaultScannerConfig returns default scanner configuration
func DefaultScannerConfig() *ScannerConfig {
	return &ScannerConfig{
		ScanInterval: 5 * time.Minute,
		DueSoonLead:  24 * time.Hour, // flag stays ending within a day
	}
}

// NewDueDateScanner creates a new due-date scanner
func NewDueDateScanner(repo Repository, redisClient *redis.Client, config *ScannerConfig) *DueDateScanner {
	if config == nil {
		config = DefaultScannerConfig()
	}

	return &DueDateScanner{
		repo:        repo,
		redisClient: redisClient,
		config:      config,
		done:        make(chan struct{}),
	}
}

// Start starts the scanner loop
func (ds *DueDateScanner) Start(ctx context.Context) {
	log.Println("Starting booking due-date scanner...")

	go ds.run(ctx)
}

// Stop stops the scanner
func (ds *DueDateScanner) Stop() {
	log.Println("Stopping booking due-date scanner...")
	close(ds.done)
}

func (ds *DueDateScanner) run(ctx context.Context) {
	ticker := time.NewTicker(ds.config.ScanInterval)
	defer ticker.Stop()

	log.Printf("Started due-date scanner with %v interval", ds.config.ScanInterval)

	// Run immediately on startup
	ds.scan(ctx)

	for {
		select {
		case <-ticker.C:
			ds.scan(ctx)
		case <-ds.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (ds *DueDateScanner) scan(ctx context.Context) {
	if ds.redisClient == nil {
		return
	}

	now := time.Now()
	deadline := now.Add(ds.config.DueSoonLead)

	bookings, err := ds.repo.GetCheckedInWithCheckoutBefore(ctx, deadline)
	if err != nil {
		log.Printf("Error scanning booking due dates: %v", err)
		return
	}

	flags := make(map[string]interface{}, len(bookings))
	for _, booking := range bookings {
		if booking.CheckOutDate.Before(now) || booking.CheckOutDate.Equal(now) {
			flags[booking.ID.String()] = "OVERDUE"
		} else {
			flags[booking.ID.String()] = "DUE_SOON"
		}
	}

	// Rewrite the hash wholesale so cleared bookings drop off
	pipe := ds.redisClient.TxPipeline()
	pipe.Del(ctx, constants.CACHE_KEY_BOOKING_DUE_FLAGS)
	if len(flags) > 0 {
		pipe.HSet(ctx, constants.CACHE_KEY_BOOKING_DUE_FLAGS, flags)
		pipe.Expire(ctx, constants.CACHE_KEY_BOOKING_DUE_FLAGS, constants.TTL_BOOKING_DUE_FLAGS)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error writing due-date flags: %v", err)
		return
	}

	if len(flags) > 0 {
		log.Printf("Flagged %d bookings as due soon or overdue", len(flags))
	}
}

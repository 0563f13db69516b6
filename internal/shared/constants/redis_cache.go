package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// Centralizes Redis cache keys and TTL values for the stayhub application.
// Pattern: stayhub:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static data (rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour
	TTL_STATIC_MEDIUM = 12 * time.Hour
	TTL_STATIC_SHORT  = 6 * time.Hour
)

// Semi-static data (changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute
)

// Dynamic data (changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute
	TTL_DYNAMIC_SHORT  = 5 * time.Minute
	TTL_DYNAMIC_QUICK  = 2 * time.Minute
)

const CACHE_PREFIX = "stayhub"

// ================== ROOM TYPES MODULE ==================

const (
	CACHE_KEY_ROOMTYPES_LIST   = CACHE_PREFIX + ":roomtypes:list"         // + :page:X:limit:Y
	CACHE_KEY_ROOMTYPE_DETAIL  = CACHE_PREFIX + ":roomtypes:detail:uuid:" // + room-type-id
	PATTERN_INVALIDATE_ROOMTYPES = CACHE_PREFIX + ":roomtypes:*"

	TTL_ROOMTYPE_LIST   = TTL_STATIC_SHORT
	TTL_ROOMTYPE_DETAIL = TTL_STATIC_MEDIUM
)

// ================== AMENITIES MODULE ==================

const (
	CACHE_KEY_AMENITIES_ACTIVE = CACHE_PREFIX + ":amenities:active:all"
	CACHE_KEY_AMENITY_DETAIL   = CACHE_PREFIX + ":amenities:detail:uuid:" // + amenity-id
	PATTERN_INVALIDATE_AMENITIES = CACHE_PREFIX + ":amenities:*"

	TTL_AMENITIES = TTL_STATIC_LONG
)

// ================== ROOMS MODULE ==================

const (
	CACHE_KEY_ROOMS_LIST      = CACHE_PREFIX + ":rooms:list" // + :floor:X:status:Y
	CACHE_KEY_ROOMS_AVAILABLE = CACHE_PREFIX + ":rooms:available:"        // + from:to
	PATTERN_INVALIDATE_ROOMS  = CACHE_PREFIX + ":rooms:*"

	TTL_ROOMS_LIST      = TTL_DYNAMIC_MEDIUM
	TTL_ROOMS_AVAILABLE = TTL_DYNAMIC_QUICK
)

// ================== FLOORS MODULE ==================

const (
	CACHE_KEY_FLOORS_ALL     = CACHE_PREFIX + ":floors:all"
	PATTERN_INVALIDATE_FLOORS = CACHE_PREFIX + ":floors:*"

	TTL_FLOORS = TTL_STATIC_MEDIUM
)

// ================== BOOKINGS MODULE ==================

const (
	CACHE_KEY_BOOKING_DUE_FLAGS = CACHE_PREFIX + ":bookings:due_flags" // hash booking-id -> DUE_SOON/OVERDUE

	TTL_BOOKING_DUE_FLAGS = TTL_DYNAMIC_MEDIUM
)

// ================== ANALYTICS MODULE ==================

const (
	CACHE_KEY_ANALYTICS_DASHBOARD = CACHE_PREFIX + ":analytics:dashboard:admin"

	TTL_ANALYTICS_DASHBOARD = TTL_DYNAMIC_MEDIUM
)

// ================== ROOM HOLDS (booking wizard) ==================

const (
	KEY_PREFIX_ROOM_HOLD  = CACHE_PREFIX + ":hold:room:" // + room-id:date (SETEX per night)
	KEY_PREFIX_HOLD_META  = CACHE_PREFIX + ":hold:meta:" // + hold-id (hash)
	KEY_PREFIX_USER_HOLDS = CACHE_PREFIX + ":hold:user:" // + user-id (set of hold ids)
)

// ================== HELPER FUNCTIONS ==================

func BuildRoomTypeListKey(page, limit int) string {
	return fmt.Sprintf("%s:page:%d:limit:%d", CACHE_KEY_ROOMTYPES_LIST, page, limit)
}

func BuildRoomTypeDetailKey(id string) string {
	return CACHE_KEY_ROOMTYPE_DETAIL + id
}

func BuildAvailableRoomsKey(from, to string) string {
	return CACHE_KEY_ROOMS_AVAILABLE + from + ":" + to
}

func BuildRoomHoldKey(roomID, date string) string {
	return KEY_PREFIX_ROOM_HOLD + roomID + ":" + date
}

func BuildHoldMetaKey(holdID string) string {
	return KEY_PREFIX_HOLD_META + holdID
}

func BuildUserHoldsKey(userID string) string {
	return KEY_PREFIX_USER_HOLDS + userID
}

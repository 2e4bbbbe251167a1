package constants

import (
	"time"
)

// Redis cache and key layout for the seatly service.
// Pattern: seatly:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_LONG   = 4 * time.Hour    // 4 hours - for venue layouts
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for event details
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for venue listings
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "seatly"
)

// ================== EVENTS MODULE ==================

const (
	CACHE_KEY_EVENT_DETAIL = CACHE_PREFIX + ":events:detail:uuid:" // + event-id
)

const (
	TTL_EVENT_DETAIL = TTL_SEMI_STATIC_MEDIUM // 2 hours
)

// ================== VENUES MODULE ==================

const (
	CACHE_KEY_VENUES_LIST  = CACHE_PREFIX + ":venues:list"
	CACHE_KEY_VENUE_LAYOUT = CACHE_PREFIX + ":venues:layout:uuid:" // + venue-id
)

const (
	TTL_VENUES_LIST  = TTL_SEMI_STATIC_QUICK // 15 minutes
	TTL_VENUE_LAYOUT = TTL_SEMI_STATIC_LONG  // 4 hours
)

// ================== SEAT MAP SESSIONS ==================

const (
	KEY_SEAT_MAP_SESSION = CACHE_PREFIX + ":seatmap:session:" // + session-id
)

// ================== RATE LIMITING ==================

const (
	KEY_RATE_LIMIT = CACHE_PREFIX + ":ratelimit:" // + ip:type
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_EVENT_ALL  = CACHE_PREFIX + ":events:*"
	PATTERN_INVALIDATE_VENUES_ALL = CACHE_PREFIX + ":venues:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildEventDetailKey(eventID string) string {
	return CACHE_KEY_EVENT_DETAIL + eventID
}

// BuildVenueLayoutKey -> "seatly:venues:layout:uuid:<venue>"
func BuildVenueLayoutKey(venueID string) string {
	return CACHE_KEY_VENUE_LAYOUT + venueID
}

func BuildSessionKey(sessionID string) string {
	return KEY_SEAT_MAP_SESSION + sessionID
}

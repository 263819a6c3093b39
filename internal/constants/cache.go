package constants

import "time"

// Result cache settings.
const (
	// DefaultCacheTTL applies when the request does not carry a valid
	// cache_minutes value.
	DefaultCacheTTL = 45 * time.Minute

	// MinCacheTTL is the floor for caller-supplied TTLs.
	MinCacheTTL = 1 * time.Minute
)

// DayMS is the length of one day in milliseconds, the unit of the
// days-remaining computation.
const DayMS = 24 * 60 * 60 * 1000

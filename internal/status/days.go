package status

import (
	"time"

	"statusio-go/internal/constants"
)

// Expiry is the normalized result of one service's expiry field: a day
// count plus the absolute expiry instant when one could be derived.
type Expiry struct {
	Days  int
	Until *time.Time
}

// CeilDays converts a remaining duration to whole days, rounding up and
// flooring at zero. days = max(0, ceil(remaining_ms / 86_400_000)).
func CeilDays(remaining time.Duration) int {
	ms := remaining.Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int((ms + constants.DayMS - 1) / constants.DayMS)
}

// FromEpochSeconds normalizes an absolute epoch-seconds expiry timestamp.
// Non-positive or already-passed timestamps yield zero days and no instant.
func FromEpochSeconds(epochSec int64, now time.Time) Expiry {
	if epochSec <= 0 {
		return Expiry{}
	}
	until := time.Unix(epochSec, 0).UTC()
	if !until.After(now) {
		return Expiry{}
	}
	return Expiry{Days: CeilDays(until.Sub(now)), Until: &until}
}

// FromTime normalizes an absolute expiry instant. A past instant yields
// zero days but keeps the instant, matching how date-string expiries are
// reported upstream.
func FromTime(until time.Time, now time.Time) Expiry {
	u := until.UTC()
	days := 0
	if u.After(now) {
		days = CeilDays(u.Sub(now))
	}
	return Expiry{Days: days, Until: &u}
}

// FromDurationSeconds normalizes a remaining-duration expiry: the value is
// seconds left, not an absolute timestamp, so the instant is now+duration.
func FromDurationSeconds(seconds int64, now time.Time) Expiry {
	if seconds <= 0 {
		return Expiry{}
	}
	d := time.Duration(seconds) * time.Second
	until := now.Add(d).UTC()
	return Expiry{Days: CeilDays(d), Until: &until}
}

package status

import "time"

// PremiumState is the tri-state subscription flag of a canonical record.
// Unknown means the adapter could not determine the state at all (missing
// credential, transport failure, unrecognized payload).
type PremiumState int

const (
	PremiumUnknown PremiumState = iota
	PremiumNo
	PremiumYes
)

func (s PremiumState) String() string {
	switch s {
	case PremiumYes:
		return "premium"
	case PremiumNo:
		return "free"
	default:
		return "unknown"
	}
}

// Record is the canonical, service-agnostic account status produced by
// every provider adapter. Records are immutable once produced.
//
// Invariants:
//   - Premium == PremiumNo implies DaysLeft == 0 and ExpiresAt == nil.
//   - DaysLeft, when set, is never negative.
//   - Premium == PremiumUnknown keeps whatever partial data the adapter
//     could still recover (e.g. an expiry date without a premium flag).
type Record struct {
	Provider  string     // display name of the service
	Premium   PremiumState
	DaysLeft  *int       // nil = unknown / not computed
	ExpiresAt *time.Time // nil = unknown
	Username  string     // optional account handle
	Note      string     // short diagnostic, e.g. "HTTP 401"; never an error card
}

// Days returns a pinned *int for record construction.
func Days(n int) *int {
	if n < 0 {
		n = 0
	}
	return &n
}

// Resolved reports whether the record carries anything worth showing:
// a known account handle or a resolved premium state. Purely-unknown
// records are dropped before classification and visibility filtering.
func (r Record) Resolved() bool {
	return r.Premium != PremiumUnknown || r.Username != ""
}

// KnownDays returns the day count clamped to zero, and whether it is known.
func (r Record) KnownDays() (int, bool) {
	if r.DaysLeft == nil {
		return 0, false
	}
	d := *r.DaysLeft
	if d < 0 {
		d = 0
	}
	return d, true
}

// Unknown builds an indeterminate record with a diagnostic note.
func Unknown(provider, note string) Record {
	return Record{Provider: provider, Premium: PremiumUnknown, Note: note}
}

// NotPremium builds an explicitly non-premium record. Any stray expiry
// data from the upstream payload is deliberately discarded.
func NotPremium(provider, username string) Record {
	return Record{Provider: provider, Premium: PremiumNo, DaysLeft: Days(0), Username: username}
}

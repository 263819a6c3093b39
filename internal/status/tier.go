package status

import "statusio-go/internal/constants"

// Tier is the urgency classification derived purely from days remaining.
type Tier int

const (
	TierOK Tier = iota
	TierWarning
	TierCritical
	TierExpired
)

func (t Tier) String() string {
	switch t {
	case TierExpired:
		return "Expired"
	case TierCritical:
		return "Critical"
	case TierWarning:
		return "Warning"
	default:
		return "OK"
	}
}

// Icon returns the tier's display glyph.
func (t Tier) Icon() string {
	switch t {
	case TierExpired:
		return "🔴"
	case TierCritical:
		return "🟠"
	case TierWarning:
		return "🟡"
	default:
		return "🟢"
	}
}

// Classify maps a day count onto an urgency tier. Thresholds are fixed,
// inclusive and ascending: <=0 Expired, <=3 Critical, <=14 Warning,
// everything above is OK.
func Classify(days int) Tier {
	switch {
	case days <= constants.ExpiredMaxDays:
		return TierExpired
	case days <= constants.CriticalMaxDays:
		return TierCritical
	case days <= constants.WarningMaxDays:
		return TierWarning
	default:
		return TierOK
	}
}

// ClassifyRecord classifies a record, treating an unknown day count as OK.
// Callers that gate visibility must filter unknown-day records before this.
func ClassifyRecord(r Record) Tier {
	d, ok := r.KnownDays()
	if !ok {
		return TierOK
	}
	return Classify(d)
}

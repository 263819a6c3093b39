package render

import (
	"strconv"
	"strings"

	"statusio-go/internal/status"
)

// Surface selects the display idiom of the target client.
type Surface int

const (
	// SurfaceCompact targets constrained clients (TVs) that garble hard
	// line breaks; fields are joined with a visual separator instead.
	SurfaceCompact Surface = iota
	// SurfaceRich targets clients that render multi-line descriptions;
	// the card gets real line breaks and a divider-bounded title.
	SurfaceRich
)

const compactSeparator = " • "

// placeholder marks a field whose value is unknown for a premium account.
const placeholder = "—"

// Description renders one record's display text. The record's day count
// should already be clamped by the visibility policy; a record with no day
// count at all falls back to the OK tier defensively.
func Description(r status.Record, surface Surface, showQuote bool, picker *Picker) string {
	user := placeholder
	if r.Username != "" {
		user = "@" + r.Username
	}

	days, known := r.KnownDays()
	daysStr := placeholder
	dateStr := placeholder
	if known {
		daysStr = strconv.Itoa(days)
	} else if r.Premium != status.PremiumYes {
		daysStr = "0"
	}
	if r.ExpiresAt != nil {
		dateStr = r.ExpiresAt.UTC().Format("2006-01-02")
	} else if r.Premium != status.PremiumYes {
		dateStr = "N/A"
	}

	tier := status.ClassifyRecord(r)

	lines := []string{
		"🤝 Service: " + r.Provider,
		"👤 User: " + user,
		"⭐ Expires: " + dateStr,
		"⏳️ Days left: " + daysStr,
		tier.Icon() + " Status: " + tier.String(),
	}
	if showQuote && picker != nil {
		if q := picker.Pick(poolFor(tier)); q != "" {
			lines = append(lines, "💬 "+q)
		}
	}

	if surface == SurfaceRich {
		body := strings.Join(lines, "\n")
		return "─── " + r.Provider + " ───\n" + body
	}
	return strings.Join(lines, compactSeparator)
}

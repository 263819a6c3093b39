package render

import (
	"statusio-go/internal/config"
	"statusio-go/internal/constants"
	"statusio-go/internal/status"
)

// Card is one rendered status entry handed to the transport layer.
type Card struct {
	Name        string
	Description string
	URL         string
}

// CardName is the fixed display name every status card carries.
const CardName = "🔐 Statusio"

// Options steers visibility filtering and rendering for one response.
type Options struct {
	Mode          config.VisibilityMode
	ThresholdDays int
	ShowQuotes    bool
	Surface       Surface
	URL           string
	MaxCards      int
}

// Cards applies the visibility policy and renders the surviving records,
// in input order, capped at MaxCards.
//
// A record is a candidate only when it resolved to something showable (a
// known account handle or a non-unknown premium state) and carries a known
// day count; adapters that never ran or failed outright are dropped before
// classification. Negative day counts clamp to zero so they classify as
// expired rather than vanish.
func Cards(records []status.Record, opts Options, picker *Picker) []Card {
	maxCards := opts.MaxCards
	if maxCards <= 0 {
		maxCards = constants.MaxStreamCards
	}
	threshold := opts.ThresholdDays
	if threshold <= 0 {
		threshold = constants.DefaultVisibilityThresholdDays
	}

	var cards []Card
	for _, r := range records {
		if len(cards) >= maxCards {
			break
		}
		if !r.Resolved() {
			continue
		}
		days, known := r.KnownDays()
		if !known {
			// Unknown day counts are treated as non-urgent and skipped.
			continue
		}
		if opts.Mode != config.VisibilityAlways && days > threshold {
			continue
		}

		clamped := r
		clamped.DaysLeft = status.Days(days)
		cards = append(cards, Card{
			Name:        CardName,
			Description: Description(clamped, opts.Surface, opts.ShowQuotes, picker),
			URL:         opts.URL,
		})
	}
	return cards
}

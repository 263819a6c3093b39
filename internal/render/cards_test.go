package render

import (
	"strings"
	"testing"

	"statusio-go/internal/config"
	"statusio-go/internal/status"
)

func demoSet() []status.Record {
	return []status.Record{
		{Provider: "Real-Debrid", Premium: status.PremiumYes, DaysLeft: status.Days(31), Username: "a"},
		{Provider: "AllDebrid", Premium: status.PremiumYes, DaysLeft: status.Days(16), Username: "b"},
		{Provider: "Premiumize", Premium: status.PremiumYes, DaysLeft: status.Days(10), Username: "c"},
		{Provider: "TorBox", Premium: status.PremiumYes, DaysLeft: status.Days(6), Username: "d"},
		{Provider: "Debrid-Link", Premium: status.PremiumYes, DaysLeft: status.Days(2), Username: "e"},
		{Provider: "Expired", Premium: status.PremiumNo, DaysLeft: status.Days(0), Username: "f"},
	}
}

func TestCardsThresholdFiltering(t *testing.T) {
	t.Parallel()

	cards := Cards(demoSet(), Options{ThresholdDays: 30, URL: "https://x/"}, nil)
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards (cap), got %d", len(cards))
	}
	// The 31-day record is above the cutoff; the next three in order survive.
	for i, provider := range []string{"AllDebrid", "Premiumize", "TorBox"} {
		if !strings.Contains(cards[i].Description, provider) {
			t.Fatalf("card %d should describe %s: %q", i, provider, cards[i].Description)
		}
	}
	for _, c := range cards {
		if c.Name != CardName {
			t.Fatalf("card name: %q", c.Name)
		}
		if c.URL != "https://x/" {
			t.Fatalf("card url: %q", c.URL)
		}
	}
}

func TestCardsTightThreshold(t *testing.T) {
	t.Parallel()

	cards := Cards(demoSet(), Options{ThresholdDays: 3}, nil)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards for cutoff 3, got %d", len(cards))
	}
	if !strings.Contains(cards[0].Description, "Debrid-Link") || !strings.Contains(cards[1].Description, "Expired") {
		t.Fatalf("unexpected survivors: %q / %q", cards[0].Description, cards[1].Description)
	}
}

func TestCardsAlwaysModeStillCapped(t *testing.T) {
	t.Parallel()

	cards := Cards(demoSet(), Options{Mode: config.VisibilityAlways}, nil)
	if len(cards) != 3 {
		t.Fatalf("always mode must still cap at 3, got %d", len(cards))
	}
	if !strings.Contains(cards[0].Description, "Real-Debrid") {
		t.Fatalf("always mode keeps input order: %q", cards[0].Description)
	}
}

func TestCardsDropUnresolvedAndUnknownDays(t *testing.T) {
	t.Parallel()

	records := []status.Record{
		status.Unknown("Real-Debrid", "HTTP 401"),                                 // not resolved
		{Provider: "TorBox", Premium: status.PremiumYes, Username: "u"},           // no day count
		{Provider: "AllDebrid", Premium: status.PremiumYes, DaysLeft: status.Days(5)}, // shown
	}
	cards := Cards(records, Options{ThresholdDays: 30}, nil)
	if len(cards) != 1 || !strings.Contains(cards[0].Description, "AllDebrid") {
		t.Fatalf("expected only the AllDebrid card, got %v", cards)
	}
}

func TestCardsClampNegativeDays(t *testing.T) {
	t.Parallel()

	neg := -4
	records := []status.Record{
		{Provider: "X", Premium: status.PremiumYes, DaysLeft: &neg, Username: "u"},
	}
	cards := Cards(records, Options{ThresholdDays: 30}, nil)
	if len(cards) != 1 {
		t.Fatalf("negative days must not vanish, got %d cards", len(cards))
	}
	if !strings.Contains(cards[0].Description, "Expired") {
		t.Fatalf("negative days should classify as expired: %q", cards[0].Description)
	}
	if !strings.Contains(cards[0].Description, "Days left: 0") {
		t.Fatalf("negative days should render as 0: %q", cards[0].Description)
	}
}

func TestCardsCustomCap(t *testing.T) {
	t.Parallel()

	cards := Cards(demoSet(), Options{Mode: config.VisibilityAlways, MaxCards: 5}, nil)
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}
}

package upstream

import (
	"context"
	"time"

	"statusio-go/internal/credential"
	"statusio-go/internal/status"
)

// Provider is one debrid service adapter. Fetch never returns an error:
// every failure mode collapses into an unknown-state record carrying a
// diagnostic note, so the fan-out join has no failure path of its own.
type Provider interface {
	// Service is the stable identifier used for enablement and ordering.
	Service() credential.Service
	// Name is the display name carried on records.
	Name() string
	// WebsiteURL is the service's public site, used as the card link when
	// this provider is the first enabled one.
	WebsiteURL() string
	// Fetch resolves the account status as of now.
	Fetch(ctx context.Context, now time.Time) status.Record
}

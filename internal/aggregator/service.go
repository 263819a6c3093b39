package aggregator

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"statusio-go/internal/cache"
	"statusio-go/internal/config"
	"statusio-go/internal/credential"
	"statusio-go/internal/monitoring/tracing"
	"statusio-go/internal/status"
	"statusio-go/internal/upstream"
	"statusio-go/internal/upstream/alldebrid"
	"statusio-go/internal/upstream/debridlink"
	"statusio-go/internal/upstream/premiumize"
	"statusio-go/internal/upstream/realdebrid"
	"statusio-go/internal/upstream/torbox"
)

// Factory builds the provider adapters for one request's credential set.
// Swappable so tests can substitute stub providers.
type Factory func(set credential.Set, cli *http.Client) []upstream.Provider

// Service is the fan-out executor. It owns the result cache and the shared
// HTTP client; both are injected at construction, never global.
type Service struct {
	cli     *http.Client
	store   *cache.Memory
	factory Factory
	now     func() time.Time
}

// New wires the executor from configuration with a fresh HTTP client.
func New(cfg *config.Config, store *cache.Memory) *Service {
	return &Service{
		cli:     upstream.NewHTTPClient(cfg),
		store:   store,
		factory: defaultFactory,
		now:     time.Now,
	}
}

// WithClient substitutes the HTTP client (tests).
func (s *Service) WithClient(cli *http.Client) *Service { s.cli = cli; return s }

// WithFactory substitutes the provider factory (tests).
func (s *Service) WithFactory(f Factory) *Service { s.factory = f; return s }

// WithClock substitutes the clock (tests).
func (s *Service) WithClock(now func() time.Time) *Service { s.now = now; return s }

func defaultFactory(set credential.Set, cli *http.Client) []upstream.Provider {
	set = set.Normalize()
	return []upstream.Provider{
		realdebrid.New(cli, set.RealDebridToken),
		alldebrid.New(cli, set.AllDebridKey),
		premiumize.New(cli, set.PremiumizeKey, set.PremiumizeOAuth),
		torbox.New(cli, set.TorBoxToken),
		debridlink.New(cli, set.DebridLinkKey, set.DebridLinkAuth, set.DebridLinkEndpoint),
	}
}

// Fetch resolves one canonical record per enabled service, in canonical
// service order regardless of completion order. Demo mode bypasses both
// the cache and the network. With nothing enabled it returns an empty set
// immediately.
func (s *Service) Fetch(ctx context.Context, settings config.Settings) []status.Record {
	if settings.DemoMode {
		return DemoRecords()
	}

	set := settings.Credentials.Normalize()
	enabled := set.Enabled()
	if len(enabled) == 0 {
		return nil
	}

	key := credential.Fingerprint(set)
	if records, ok := s.store.Get(key); ok {
		log.WithFields(log.Fields{"providers": len(records), "cache": "hit"}).Debug("status fetch")
		return records
	}

	spanCtx, span := tracing.StartSpan(ctx, "aggregator", "FanOut")
	span.SetAttributes(attribute.Int("providers.enabled", len(enabled)))
	defer span.End()

	byService := make(map[credential.Service]upstream.Provider)
	for _, p := range s.factory(set, s.cli) {
		byService[p.Service()] = p
	}

	started := s.now()
	records := make([]status.Record, len(enabled))
	g, gctx := errgroup.WithContext(spanCtx)
	for i, svc := range enabled {
		p, ok := byService[svc]
		if !ok {
			continue
		}
		i, p := i, p
		g.Go(func() error {
			// Adapters resolve their own failures; the join never fails.
			records[i] = p.Fetch(gctx, started)
			return nil
		})
	}
	_ = g.Wait()

	s.store.Put(key, records, settings.CacheTTL)
	log.WithFields(log.Fields{
		"providers":  len(records),
		"cache":      "miss",
		"latency_ms": time.Since(started).Milliseconds(),
	}).Debug("status fetch")
	return records
}

// PrimaryURL returns the card link: the public site of the first enabled
// service, or the configured fallback when none are enabled.
func (s *Service) PrimaryURL(set credential.Set, fallback string) string {
	set = set.Normalize()
	enabled := set.Enabled()
	if len(enabled) == 0 {
		return fallback
	}
	for _, p := range s.factory(set, s.cli) {
		if p.Service() == enabled[0] {
			return p.WebsiteURL()
		}
	}
	return fallback
}

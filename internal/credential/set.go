package credential

import "strings"

// Service identifies one debrid provider. The declaration order below is
// the canonical enumeration order: fan-out results and rendered cards
// follow it regardless of which upstream call finishes first.
type Service string

const (
	ServiceRealDebrid Service = "realdebrid"
	ServiceAllDebrid  Service = "alldebrid"
	ServicePremiumize Service = "premiumize"
	ServiceTorBox     Service = "torbox"
	ServiceDebridLink Service = "debridlink"
)

// Order is the canonical service enumeration order.
var Order = []Service{
	ServiceRealDebrid,
	ServiceAllDebrid,
	ServicePremiumize,
	ServiceTorBox,
	ServiceDebridLink,
}

// AuthScheme selects how Debrid-Link presents its key.
type AuthScheme string

const (
	AuthBearer AuthScheme = "Bearer"
	AuthQuery  AuthScheme = "query"
)

// DefaultDebridLinkEndpoint is Debrid-Link's account info endpoint; a
// request may override it.
const DefaultDebridLinkEndpoint = "https://debrid-link.com/api/account/infos"

// Set carries the per-request secrets plus the auxiliary settings that
// change how a request is issued. It lives for one request and is never
// persisted.
type Set struct {
	RealDebridToken string
	AllDebridKey    string
	PremiumizeKey   string
	TorBoxToken     string
	DebridLinkKey   string

	// Debrid-Link extras.
	DebridLinkAuth     AuthScheme
	DebridLinkEndpoint string

	// Premiumize key interpretation: apikey (default) or OAuth access_token.
	PremiumizeOAuth bool
}

// Normalize trims every secret and fills auxiliary defaults. Call once at
// the configuration boundary.
func (s Set) Normalize() Set {
	s.RealDebridToken = strings.TrimSpace(s.RealDebridToken)
	s.AllDebridKey = strings.TrimSpace(s.AllDebridKey)
	s.PremiumizeKey = strings.TrimSpace(s.PremiumizeKey)
	s.TorBoxToken = strings.TrimSpace(s.TorBoxToken)
	s.DebridLinkKey = strings.TrimSpace(s.DebridLinkKey)
	if s.DebridLinkAuth != AuthQuery {
		s.DebridLinkAuth = AuthBearer
	}
	s.DebridLinkEndpoint = strings.TrimSpace(s.DebridLinkEndpoint)
	if s.DebridLinkEndpoint == "" {
		s.DebridLinkEndpoint = DefaultDebridLinkEndpoint
	}
	return s
}

// Secret returns the trimmed secret configured for a service.
func (s Set) Secret(svc Service) string {
	switch svc {
	case ServiceRealDebrid:
		return strings.TrimSpace(s.RealDebridToken)
	case ServiceAllDebrid:
		return strings.TrimSpace(s.AllDebridKey)
	case ServicePremiumize:
		return strings.TrimSpace(s.PremiumizeKey)
	case ServiceTorBox:
		return strings.TrimSpace(s.TorBoxToken)
	case ServiceDebridLink:
		return strings.TrimSpace(s.DebridLinkKey)
	default:
		return ""
	}
}

// Enabled returns the services whose secret is non-empty after trimming,
// in canonical order.
func (s Set) Enabled() []Service {
	var out []Service
	for _, svc := range Order {
		if s.Secret(svc) != "" {
			out = append(out, svc)
		}
	}
	return out
}

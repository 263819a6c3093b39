package credential

import "strings"

// Fingerprint derives the deterministic result-cache key for a credential
// set: the enabled-service list plus a redacted form of every secret plus
// the auxiliary settings that change the outgoing requests. Two requests
// with the same fingerprint are interchangeable for caching purposes.
func Fingerprint(s Set) string {
	s = s.Normalize()

	var enabled []string
	for _, svc := range s.Enabled() {
		enabled = append(enabled, string(svc))
	}

	pmMode := "apikey"
	if s.PremiumizeOAuth {
		pmMode = "oauth"
	}

	parts := []string{
		strings.Join(enabled, ","),
		"rd:" + Redact(s.RealDebridToken),
		"ad:" + Redact(s.AllDebridKey),
		"pm:" + Redact(s.PremiumizeKey) + ":" + pmMode,
		"tb:" + Redact(s.TorBoxToken),
		"dl:" + Redact(s.DebridLinkKey) + ":" + string(s.DebridLinkAuth) + ":" + s.DebridLinkEndpoint,
	}
	return strings.Join(parts, "|")
}

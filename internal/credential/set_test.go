package credential

import (
	"strings"
	"testing"
)

func TestEnabledFollowsCanonicalOrder(t *testing.T) {
	t.Parallel()

	s := Set{
		DebridLinkKey:   "dl",
		RealDebridToken: "rd",
		TorBoxToken:     "tb",
	}
	got := s.Enabled()
	want := []Service{ServiceRealDebrid, ServiceTorBox, ServiceDebridLink}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestEnabledIgnoresWhitespaceSecrets(t *testing.T) {
	t.Parallel()

	s := Set{RealDebridToken: "   ", AllDebridKey: "\t\n"}
	if got := s.Enabled(); len(got) != 0 {
		t.Fatalf("whitespace-only secrets must not enable services, got %v", got)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	t.Parallel()

	s := Set{DebridLinkAuth: "weird"}.Normalize()
	if s.DebridLinkAuth != AuthBearer {
		t.Fatalf("unrecognized auth scheme should fall back to Bearer, got %q", s.DebridLinkAuth)
	}
	if s.DebridLinkEndpoint != DefaultDebridLinkEndpoint {
		t.Fatalf("empty endpoint should default, got %q", s.DebridLinkEndpoint)
	}

	q := Set{DebridLinkAuth: AuthQuery, DebridLinkEndpoint: " https://example.org/x "}.Normalize()
	if q.DebridLinkAuth != AuthQuery {
		t.Fatalf("query scheme must survive normalization, got %q", q.DebridLinkAuth)
	}
	if q.DebridLinkEndpoint != "https://example.org/x" {
		t.Fatalf("endpoint should be trimmed, got %q", q.DebridLinkEndpoint)
	}
}

func TestRedact(t *testing.T) {
	t.Parallel()

	if got := Redact(""); got != "(none)" {
		t.Fatalf("empty secret: got %q", got)
	}
	if got := Redact("abcd"); got != "a…d" {
		t.Fatalf("short secret: got %q", got)
	}
	if got := Redact("abcdefghij"); got != "abcd…ghij" {
		t.Fatalf("long secret: got %q", got)
	}
	if strings.Contains(Redact("supersecrettokenvalue"), "secrettoken") {
		t.Fatal("redacted form leaks the middle of the secret")
	}
}

func TestFingerprintDistinguishesAuxSettings(t *testing.T) {
	t.Parallel()

	base := Set{PremiumizeKey: "pm-key-123456"}
	oauth := base
	oauth.PremiumizeOAuth = true
	if Fingerprint(base) == Fingerprint(oauth) {
		t.Fatal("apikey and oauth modes must produce different fingerprints")
	}

	dl := Set{DebridLinkKey: "dl-key-123456"}
	dlQuery := dl
	dlQuery.DebridLinkAuth = AuthQuery
	if Fingerprint(dl) == Fingerprint(dlQuery) {
		t.Fatal("auth scheme must be part of the fingerprint")
	}

	// Whitespace-only differences normalize away.
	padded := Set{PremiumizeKey: "  pm-key-123456  "}
	if Fingerprint(base) != Fingerprint(padded) {
		t.Fatal("trimmed secrets must fingerprint identically")
	}
}

func TestFingerprintNeverContainsFullSecret(t *testing.T) {
	t.Parallel()

	secret := "very-long-private-token-0123456789"
	fp := Fingerprint(Set{RealDebridToken: secret})
	if strings.Contains(fp, secret) {
		t.Fatalf("fingerprint leaks the raw secret: %s", fp)
	}
	if !strings.Contains(fp, "realdebrid") {
		t.Fatalf("fingerprint should name enabled services: %s", fp)
	}
}

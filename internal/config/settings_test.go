package config

import (
	"testing"
	"time"

	"statusio-go/internal/constants"
	"statusio-go/internal/credential"
)

func TestParseSettingsDefaults(t *testing.T) {
	t.Parallel()

	s := ParseSettings(nil, nil)
	if s.CacheTTL != constants.DefaultCacheTTL {
		t.Fatalf("default cache ttl: got %v", s.CacheTTL)
	}
	if !s.ShowQuotes {
		t.Fatal("quotes default on")
	}
	if s.Visibility != VisibilityThreshold {
		t.Fatalf("default visibility: got %v", s.Visibility)
	}
	if s.ThresholdDays != constants.DefaultVisibilityThresholdDays {
		t.Fatalf("default threshold: got %d", s.ThresholdDays)
	}
	if s.DemoMode {
		t.Fatal("demo mode defaults off")
	}
}

func TestParseSettingsCacheMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want time.Duration
	}{
		{`{"cache_minutes": 10}`, 10 * time.Minute},
		{`{"cache_minutes": "10"}`, 10 * time.Minute},
		{`{"cache_minutes": 0}`, time.Minute},
		{`{"cache_minutes": -5}`, time.Minute},
		{`{"cache_minutes": "banana"}`, constants.DefaultCacheTTL},
		{`{"cache_minutes": null}`, constants.DefaultCacheTTL},
		{`{}`, constants.DefaultCacheTTL},
	}
	for _, tc := range cases {
		s := ParseSettings([]byte(tc.raw), nil)
		if s.CacheTTL != tc.want {
			t.Fatalf("cache ttl for %s: got %v, want %v", tc.raw, s.CacheTTL, tc.want)
		}
	}
}

func TestParseSettingsFlagsAndMode(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"show_quotes": "no",
		"visibility_mode": "show for every stream session, everytime",
		"demo_mode": "on",
		"threshold_days": 7
	}`)
	s := ParseSettings(raw, nil)
	if s.ShowQuotes {
		t.Fatal("show_quotes=no should disable quotes")
	}
	if s.Visibility != VisibilityAlways {
		t.Fatalf("long option label should map to always, got %v", s.Visibility)
	}
	if !s.DemoMode {
		t.Fatal("demo_mode=on should enable demo mode")
	}
	if s.ThresholdDays != 7 {
		t.Fatalf("threshold_days: got %d", s.ThresholdDays)
	}
}

func TestParseSettingsCredentials(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"rd_token": " rd-tok ",
		"dl_key": "dl-key",
		"dl_auth": "query",
		"dl_endpoint": "https://example.org/infos",
		"pm_key": "pm-key",
		"pm_use_oauth": true
	}`)
	s := ParseSettings(raw, nil)
	c := s.Credentials
	if c.RealDebridToken != "rd-tok" {
		t.Fatalf("rd token should be trimmed, got %q", c.RealDebridToken)
	}
	if c.DebridLinkAuth != credential.AuthQuery {
		t.Fatalf("dl auth: got %q", c.DebridLinkAuth)
	}
	if c.DebridLinkEndpoint != "https://example.org/infos" {
		t.Fatalf("dl endpoint: got %q", c.DebridLinkEndpoint)
	}
	if !c.PremiumizeOAuth {
		t.Fatal("pm_use_oauth should be honored")
	}

	enabled := c.Enabled()
	if len(enabled) != 3 {
		t.Fatalf("expected 3 enabled services, got %v", enabled)
	}
}

func TestParseSettingsFallbackCredentials(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.TorBoxToken = "file-tb"
	cfg.RealDebridToken = "file-rd"

	// A request credential wins over the file fallback; absent keys keep it.
	s := ParseSettings([]byte(`{"rd_token": "req-rd"}`), cfg)
	if s.Credentials.RealDebridToken != "req-rd" {
		t.Fatalf("request credential should win, got %q", s.Credentials.RealDebridToken)
	}
	if s.Credentials.TorBoxToken != "file-tb" {
		t.Fatalf("fallback credential should survive, got %q", s.Credentials.TorBoxToken)
	}
}

func TestParseSettingsGarbageInput(t *testing.T) {
	t.Parallel()

	s := ParseSettings([]byte("not json at all"), nil)
	if s.CacheTTL != constants.DefaultCacheTTL || s.DemoMode {
		t.Fatalf("garbage input should yield defaults, got %+v", s)
	}
}

func TestParseFlag(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"yes", "TRUE", "1", " on "} {
		if !ParseFlag(raw, false) {
			t.Fatalf("ParseFlag(%q) should be true", raw)
		}
	}
	for _, raw := range []string{"no", "False", "0", "off"} {
		if ParseFlag(raw, true) {
			t.Fatalf("ParseFlag(%q) should be false", raw)
		}
	}
	if !ParseFlag("whatever", true) || ParseFlag("whatever", false) {
		t.Fatal("unrecognized input must keep the default")
	}
}

func TestParseVisibilityMode(t *testing.T) {
	t.Parallel()

	if ParseVisibilityMode("always") != VisibilityAlways {
		t.Fatal("always")
	}
	if ParseVisibilityMode("only when close to expiration (≤30 days or less)") != VisibilityThreshold {
		t.Fatal("threshold label")
	}
	if ParseVisibilityMode("") != VisibilityThreshold {
		t.Fatal("empty input defaults to threshold")
	}
}

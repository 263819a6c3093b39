package config

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"statusio-go/internal/constants"
	"statusio-go/internal/credential"
)

// Settings is the fully-parsed form of one request's addon configuration.
// Every loose string the client sent has been converted to a closed type
// by the time this struct exists.
type Settings struct {
	Credentials   credential.Set
	CacheTTL      time.Duration
	ShowQuotes    bool
	Visibility    VisibilityMode
	ThresholdDays int
	DemoMode      bool
}

// DefaultSettings returns the settings used when a request carries no
// configuration at all.
func DefaultSettings(cfg *Config) Settings {
	threshold := constants.DefaultVisibilityThresholdDays
	if cfg != nil && cfg.VisibilityThresholdDays > 0 {
		threshold = cfg.VisibilityThresholdDays
	}
	s := Settings{
		CacheTTL:      constants.DefaultCacheTTL,
		ShowQuotes:    true,
		Visibility:    VisibilityThreshold,
		ThresholdDays: threshold,
	}
	if cfg != nil {
		s.Credentials = credential.Set{
			RealDebridToken: cfg.RealDebridToken,
			AllDebridKey:    cfg.AllDebridKey,
			PremiumizeKey:   cfg.PremiumizeKey,
			TorBoxToken:     cfg.TorBoxToken,
			DebridLinkKey:   cfg.DebridLinkKey,
		}.Normalize()
	}
	return s
}

// ParseSettings builds Settings from the raw JSON config blob embedded in
// the request path. Clients send values inconsistently (numbers as
// strings, booleans as yes/no), so extraction is presence-based and
// tolerant; anything unparseable keeps its default.
func ParseSettings(raw []byte, cfg *Config) Settings {
	s := DefaultSettings(cfg)
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return s
	}

	s.CacheTTL = cacheTTL(gjson.GetBytes(raw, "cache_minutes"))

	if r := gjson.GetBytes(raw, "show_quotes"); r.Exists() {
		if r.IsBool() {
			s.ShowQuotes = r.Bool()
		} else {
			s.ShowQuotes = ParseFlag(r.String(), s.ShowQuotes)
		}
	}
	if r := gjson.GetBytes(raw, "visibility_mode"); r.Exists() {
		s.Visibility = ParseVisibilityMode(r.String())
	}
	if r := gjson.GetBytes(raw, "threshold_days"); r.Exists() {
		if d := r.Float(); !math.IsNaN(d) && d > 0 {
			s.ThresholdDays = int(d)
		}
	}
	if r := gjson.GetBytes(raw, "demo_mode"); r.Exists() {
		if r.IsBool() {
			s.DemoMode = r.Bool()
		} else {
			s.DemoMode = ParseFlag(r.String(), s.DemoMode)
		}
	}

	creds := s.Credentials
	overlay(&creds.RealDebridToken, raw, "rd_token")
	overlay(&creds.AllDebridKey, raw, "ad_key")
	overlay(&creds.PremiumizeKey, raw, "pm_key")
	overlay(&creds.TorBoxToken, raw, "tb_token")
	overlay(&creds.DebridLinkKey, raw, "dl_key")
	if r := gjson.GetBytes(raw, "dl_auth"); r.Exists() {
		if r.String() == string(credential.AuthQuery) {
			creds.DebridLinkAuth = credential.AuthQuery
		} else {
			creds.DebridLinkAuth = credential.AuthBearer
		}
	}
	overlay(&creds.DebridLinkEndpoint, raw, "dl_endpoint")
	if r := gjson.GetBytes(raw, "pm_use_oauth"); r.Exists() {
		if r.IsBool() {
			creds.PremiumizeOAuth = r.Bool()
		} else {
			creds.PremiumizeOAuth = ParseFlag(r.String(), creds.PremiumizeOAuth)
		}
	}
	s.Credentials = creds.Normalize()

	return s
}

// cacheTTL derives the result-cache TTL from the cache_minutes value:
// non-numeric input falls back to the 45 minute default, numeric input is
// clamped to a minimum of 1 minute.
func cacheTTL(r gjson.Result) time.Duration {
	if !r.Exists() {
		return constants.DefaultCacheTTL
	}
	var m float64
	switch r.Type {
	case gjson.Number:
		m = r.Float()
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return constants.DefaultCacheTTL
		}
		m = f
	default:
		return constants.DefaultCacheTTL
	}
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return constants.DefaultCacheTTL
	}
	if m < 1 {
		return constants.MinCacheTTL
	}
	return time.Duration(m * float64(time.Minute))
}

func overlay(dst *string, raw []byte, key string) {
	if r := gjson.GetBytes(raw, key); r.Exists() && r.String() != "" {
		*dst = r.String()
	}
}

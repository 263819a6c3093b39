package config

import (
	"fmt"

	"statusio-go/internal/constants"
)

// Config is the process-level configuration loaded from file and
// environment. Per-request addon settings live in Settings; this struct
// only carries what the operator controls.
type Config struct {
	// Server settings.
	Port    int    `yaml:"port" json:"port"`
	Debug   bool   `yaml:"debug" json:"debug"`
	LogFile string `yaml:"log_file" json:"log_file"`

	// Transport settings for upstream provider calls.
	DialTimeoutSec           int    `yaml:"dial_timeout_sec" json:"dial_timeout_sec"`
	TLSHandshakeTimeoutSec   int    `yaml:"tls_handshake_timeout_sec" json:"tls_handshake_timeout_sec"`
	ResponseHeaderTimeoutSec int    `yaml:"response_header_timeout_sec" json:"response_header_timeout_sec"`
	RequestTimeoutSec        int    `yaml:"request_timeout_sec" json:"request_timeout_sec"`
	ProxyURL                 string `yaml:"proxy_url" json:"proxy_url"`

	// Inbound rate limiting.
	RateLimitEnabled bool `yaml:"rate_limit_enabled" json:"rate_limit_enabled"`
	RateLimitRPS     int  `yaml:"rate_limit_rps" json:"rate_limit_rps"`
	RateLimitBurst   int  `yaml:"rate_limit_burst" json:"rate_limit_burst"`

	// Rendering defaults. The visibility cutoff is deliberately a
	// configuration parameter; shipped revisions have used 30 and 3.
	VisibilityThresholdDays int    `yaml:"visibility_threshold_days" json:"visibility_threshold_days"`
	FallbackCardURL         string `yaml:"fallback_card_url" json:"fallback_card_url"`

	// Credential fallbacks applied when a request omits a secret.
	RealDebridToken string `yaml:"rd_token" json:"rd_token"`
	AllDebridKey    string `yaml:"ad_key" json:"ad_key"`
	PremiumizeKey   string `yaml:"pm_key" json:"pm_key"`
	TorBoxToken     string `yaml:"tb_token" json:"tb_token"`
	DebridLinkKey   string `yaml:"dl_key" json:"dl_key"`
}

// Default returns a Config with every field at its shipped default.
func Default() *Config {
	return &Config{
		Port:                    7042,
		RateLimitRPS:            10,
		RateLimitBurst:          20,
		VisibilityThresholdDays: constants.DefaultVisibilityThresholdDays,
		FallbackCardURL:         "https://real-debrid.com/",
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.VisibilityThresholdDays < 0 {
		return fmt.Errorf("visibility_threshold_days must not be negative: %d", c.VisibilityThresholdDays)
	}
	return nil
}

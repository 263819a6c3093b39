package config

import (
	"os"
	"strconv"
	"strings"
)

// applyEnv layers environment variables over the file configuration.
// Credential variables keep the names the original deployment used.
func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p >= 1 && p <= 65535 {
			cfg.Port = p
		}
	}
	setIfEnv(&cfg.RealDebridToken, "RD_TOKEN")
	setIfEnv(&cfg.AllDebridKey, "AD_KEY")
	setIfEnv(&cfg.PremiumizeKey, "PM_KEY")
	setIfEnv(&cfg.TorBoxToken, "TB_TOKEN")
	setIfEnv(&cfg.DebridLinkKey, "DL_KEY")
}

func setIfEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

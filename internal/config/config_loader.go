package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path, falling back to defaults when
// the file does not exist, and applies environment overrides last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := unmarshalFile(path, data, cfg); err != nil {
				return nil, err
			}
			log.WithField("path", path).Info("configuration loaded")
		case os.IsNotExist(err):
			log.WithField("path", path).Debug("no config file, using defaults")
		default:
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unmarshalFile(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return fmt.Errorf("failed to parse config file (tried YAML and JSON)")
			}
		}
	}
	return nil
}

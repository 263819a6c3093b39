package config

import "strings"

// VisibilityMode decides when status cards appear in a response.
type VisibilityMode int

const (
	// VisibilityThreshold shows cards only when days remaining fall at or
	// below the configured cutoff.
	VisibilityThreshold VisibilityMode = iota
	// VisibilityAlways shows every record with a known day count.
	VisibilityAlways
)

func (m VisibilityMode) String() string {
	if m == VisibilityAlways {
		return "always"
	}
	return "threshold"
}

// ParseFlag interprets the loose yes/no strings the addon config UI emits.
// Unrecognized input keeps the supplied default; raw strings never travel
// past this boundary.
func ParseFlag(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return def
	}
}

// ParseVisibilityMode maps the free-text mode strings (including the long
// human-readable option labels older clients send) onto the closed enum.
func ParseVisibilityMode(raw string) VisibilityMode {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "always", "show for every stream session, everytime":
		return VisibilityAlways
	default:
		return VisibilityThreshold
	}
}

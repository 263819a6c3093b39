package server

import "statusio-go/internal/version"

const logoURL = "https://raw.githubusercontent.com/ARandomAddonDev/Statusio/refs/heads/main/assets/logo.png"

// Manifest is the addon descriptor Stremio clients fetch first. The
// config schema below is a wire contract: field keys and option strings
// must stay as shipped or existing installs lose their settings.
type Manifest struct {
	ID            string          `json:"id"`
	Version       string          `json:"version"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Resources     []string        `json:"resources"`
	Types         []string        `json:"types"`
	IDPrefixes    []string        `json:"idPrefixes"`
	Catalogs      []any           `json:"catalogs"`
	BehaviorHints map[string]bool `json:"behaviorHints"`
	Logo          string          `json:"logo"`
	Config        []ConfigField   `json:"config"`
}

// ConfigField declares one entry of the addon configuration form.
type ConfigField struct {
	Key     string   `json:"key"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Default string   `json:"default,omitempty"`
	Options []string `json:"options,omitempty"`
}

// BuildManifest returns the addon manifest.
func BuildManifest() Manifest {
	return Manifest{
		ID:          "a1337user.statusio.tv.compatible",
		Version:     version.Version,
		Name:        "Statusio",
		Description: "Shows premium status & days remaining across multiple debrid providers.",
		Resources:   []string{"stream"},
		Types:       []string{"movie", "series"},
		IDPrefixes:  []string{"tt"},
		Catalogs:    []any{},
		BehaviorHints: map[string]bool{
			"configurable":          true,
			"configurationRequired": false,
		},
		Logo: logoURL,
		Config: []ConfigField{
			{Key: "cache_minutes", Type: "number", Default: "45", Title: "Cache Minutes (default 45)"},
			{Key: "show_quotes", Type: "select", Title: "Would you like to use quotes?", Default: "yes", Options: []string{"yes", "no"}},
			{
				Key:     "visibility_mode",
				Type:    "select",
				Title:   "When should Statusio appear?",
				Default: "only when close to expiration (≤30 days or less)",
				Options: []string{"only when close to expiration (≤30 days or less)", "show for every stream session, everytime"},
			},
			{Key: "demo_mode", Type: "select", Title: "Demo mode (fake days for testing)", Default: "off", Options: []string{"off", "on"}},
			{Key: "rd_token", Type: "text", Title: "Real-Debrid Token (Bearer)"},
			{Key: "ad_key", Type: "text", Title: "AllDebrid API Key (Bearer)"},
			{Key: "pm_key", Type: "text", Title: "Premiumize apikey OR access_token"},
			{Key: "tb_token", Type: "text", Title: "TorBox Token (Bearer)"},
			{Key: "dl_key", Type: "text", Title: "Debrid-Link API Key/Token"},
			{Key: "dl_auth", Type: "text", Title: "Debrid-Link Auth Scheme (Bearer/query)", Default: "Bearer"},
			{Key: "dl_endpoint", Type: "text", Title: "Debrid-Link Endpoint Override", Default: "https://debrid-link.com/api/account/infos"},
		},
	}
}

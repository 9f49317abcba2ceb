package station

import "github.com/jmartal/chargeplan/core/model"

// Config defines settings for the external station provider.
type Config struct {
	// BaseURL is the provider's nearest-station endpoint.
	BaseURL string `json:"base_url"`
	// APIKey authenticates requests to the provider.
	APIKey string `json:"api_key"`
	// TimeoutSeconds bounds each provider call at the HTTP client level.
	TimeoutSeconds int `json:"timeout_seconds"`
	// CacheTTLSeconds controls how long query results are reused. 0 keeps
	// the default; negative disables caching.
	CacheTTLSeconds int `json:"cache_ttl_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://developer.nrel.gov/api/alt-fuel-stations/v1/nearest.json"
	}
	if c.APIKey == "" {
		c.APIKey = "DEMO_KEY"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 10
	}
	if c.CacheTTLSeconds == 0 {
		c.CacheTTLSeconds = 300
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return &model.ConfigError{Field: "base_url", Reason: "is required"}
	}
	if c.TimeoutSeconds <= 0 {
		return &model.ConfigError{Field: "timeout_seconds", Reason: "must be positive"}
	}
	return nil
}

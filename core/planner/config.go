package planner

import "github.com/jmartal/chargeplan/core/model"

// Config defines planning parameters and lookup behavior.
type Config struct {
	// SearchRadiusMiles bounds the station search around a flagged leg's
	// midpoint.
	SearchRadiusMiles float64 `json:"search_radius_miles"`
	// Connector filters directory results, e.g. "TESLA".
	Connector string `json:"connector"`
	// ResultLimit caps the number of candidates requested per lookup.
	ResultLimit int `json:"result_limit"`
	// LookupTimeoutSeconds bounds each directory call. A timed-out lookup
	// behaves like a failed one; there is no internal retry.
	LookupTimeoutSeconds int `json:"lookup_timeout_seconds"`
	// Concurrency is the number of parallel lookups. 1 means sequential.
	Concurrency int `json:"concurrency"`
	// LowThresholdPercent flags a leg when the projected remaining charge
	// drops below it.
	LowThresholdPercent float64 `json:"low_threshold_percent"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.SearchRadiusMiles == 0 {
		c.SearchRadiusMiles = 30
	}
	if c.Connector == "" {
		c.Connector = "TESLA"
	}
	if c.ResultLimit == 0 {
		c.ResultLimit = 10
	}
	if c.LookupTimeoutSeconds == 0 {
		c.LookupTimeoutSeconds = 10
	}
	if c.Concurrency == 0 {
		c.Concurrency = 1
	}
	if c.LowThresholdPercent == 0 {
		c.LowThresholdPercent = 20
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.SearchRadiusMiles <= 0 {
		return &model.ConfigError{Field: "search_radius_miles", Reason: "must be positive"}
	}
	if c.ResultLimit <= 0 {
		return &model.ConfigError{Field: "result_limit", Reason: "must be positive"}
	}
	if c.LookupTimeoutSeconds <= 0 {
		return &model.ConfigError{Field: "lookup_timeout_seconds", Reason: "must be positive"}
	}
	if c.Concurrency <= 0 {
		return &model.ConfigError{Field: "concurrency", Reason: "must be positive"}
	}
	if c.LowThresholdPercent <= 0 || c.LowThresholdPercent >= 100 {
		return &model.ConfigError{Field: "low_threshold_percent", Reason: "must be in (0,100)"}
	}
	return nil
}

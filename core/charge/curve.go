// Package charge models DC fast-charging time as a three-bucket power curve.
//
// Real charging curves taper as the battery fills. The model approximates
// this with three average-power buckets keyed to the target state of charge:
// a fast bucket up to 50%, a medium bucket up to 80% (split on whether the
// session starts below 50%), and a taper bucket above 80%.
package charge

import (
	"math"

	"github.com/jmartal/chargeplan/core/model"
)

// CurveConfig holds the average power (kW) of each charging bucket. The
// buckets are deployment configuration, not per-vehicle data; a vehicle's
// MaxChargeRateKW acts as an upper bound on whichever bucket is selected.
type CurveConfig struct {
	// FastKW applies when the target SoC is at or below 50%.
	FastKW float64 `json:"fast_kw"`
	// MidLowKW applies for targets in (50,80] when starting below 50%.
	MidLowKW float64 `json:"mid_low_kw"`
	// MidHighKW applies for targets in (50,80] when starting at 50% or above.
	MidHighKW float64 `json:"mid_high_kw"`
	// TaperKW applies when the target SoC is above 80%.
	TaperKW float64 `json:"taper_kw"`
}

// SetDefaults applies the standard 250/150/100/50 kW curve.
func (c *CurveConfig) SetDefaults() {
	if c.FastKW == 0 {
		c.FastKW = 250
	}
	if c.MidLowKW == 0 {
		c.MidLowKW = 150
	}
	if c.MidHighKW == 0 {
		c.MidHighKW = 100
	}
	if c.TaperKW == 0 {
		c.TaperKW = 50
	}
}

// Validate checks that every bucket carries positive power.
func (c CurveConfig) Validate() error {
	if c.FastKW <= 0 {
		return &model.ConfigError{Field: "fast_kw", Reason: "must be positive"}
	}
	if c.MidLowKW <= 0 {
		return &model.ConfigError{Field: "mid_low_kw", Reason: "must be positive"}
	}
	if c.MidHighKW <= 0 {
		return &model.ConfigError{Field: "mid_high_kw", Reason: "must be positive"}
	}
	if c.TaperKW <= 0 {
		return &model.ConfigError{Field: "taper_kw", Reason: "must be positive"}
	}
	return nil
}

// Curve estimates charging durations for a configured power curve.
type Curve struct {
	cfg CurveConfig
}

// NewCurve builds a Curve, filling unset buckets with defaults.
func NewCurve(cfg CurveConfig) Curve {
	cfg.SetDefaults()
	return Curve{cfg: cfg}
}

// EstimateMinutes returns the estimated minutes to charge from currentPct to
// targetPct. Targets at or below the current level return 0; targets above
// 100 are clamped. The vehicle's MaxChargeRateKW, when set, caps the average
// power of the selected bucket.
func (c Curve) EstimateMinutes(currentPct, targetPct float64, profile model.VehicleProfile) int {
	if targetPct > 100 {
		targetPct = 100
	}
	if targetPct <= currentPct {
		return 0
	}

	energyKWh := (targetPct - currentPct) / 100 * profile.UsableCapacityKWh

	var powerKW float64
	switch {
	case targetPct <= 50:
		powerKW = c.cfg.FastKW
	case targetPct <= 80:
		if currentPct < 50 {
			powerKW = c.cfg.MidLowKW
		} else {
			powerKW = c.cfg.MidHighKW
		}
	default:
		powerKW = c.cfg.TaperKW
	}
	if profile.MaxChargeRateKW > 0 && profile.MaxChargeRateKW < powerKW {
		powerKW = profile.MaxChargeRateKW
	}

	return int(math.Round(energyKWh / powerKW * 60))
}

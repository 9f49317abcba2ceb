package model

// VehicleProfile describes the energy characteristics of an EV used for
// range simulation and charge-time estimates.
type VehicleProfile struct {
	BatteryCapacityKWh float64 `json:"batteryCapacityKWh"`
	UsableCapacityKWh  float64 `json:"usableCapacityKWh"`
	RangeMiles         float64 `json:"rangeMiles"`
	// MaxChargeRateKW caps the average charging power when set (>0).
	MaxChargeRateKW float64 `json:"maxChargeRateKW"`
}

// Validate checks that the profile is usable for planning. RangeMiles must be
// positive because per-leg consumption divides by it.
func (p VehicleProfile) Validate() error {
	if p.RangeMiles <= 0 {
		return &ConfigError{Field: "rangeMiles", Reason: "must be positive"}
	}
	if p.UsableCapacityKWh <= 0 {
		return &ConfigError{Field: "usableCapacityKWh", Reason: "must be positive"}
	}
	if p.BatteryCapacityKWh > 0 && p.UsableCapacityKWh > p.BatteryCapacityKWh {
		return &ConfigError{Field: "usableCapacityKWh", Reason: "exceeds batteryCapacityKWh"}
	}
	return nil
}

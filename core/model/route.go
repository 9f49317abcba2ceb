package model

import "fmt"

// GeoPoint is a location in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the coordinates are within range.
func (p GeoPoint) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range [-90,90]", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range [-180,180]", p.Longitude)
	}
	return nil
}

// RouteSegment is the portion of a route between two consecutive waypoints.
// Segments are ordered by traversal order; later segments assume the
// remaining charge left by earlier ones.
type RouteSegment struct {
	From                    GeoPoint `json:"from"`
	To                      GeoPoint `json:"to"`
	DistanceMiles           float64  `json:"distanceMiles"`
	BatteryUsedPercent      float64  `json:"batteryUsedPercent"`
	BatteryRemainingPercent float64  `json:"batteryRemainingPercent"`
	// LowBattery marks a segment whose projected remaining charge fell
	// below the planning threshold, i.e. the driver should charge here.
	LowBattery bool `json:"lowBattery"`
}

// BatteryAnalysis is the result of simulating battery depletion over a route.
type BatteryAnalysis struct {
	Segments                  []RouteSegment `json:"segments"`
	NeedsCharging             bool           `json:"needsCharging"`
	RangeAnxiety              bool           `json:"rangeAnxiety"`
	EstimatedRemainingPercent float64        `json:"estimatedRemainingPercent"`
}

// ChargingPlan is the full output of a planning call. Stations holds every
// candidate returned for the flagged segments; SuggestedStops holds the
// nearest candidate per flagged segment, in route order.
type ChargingPlan struct {
	Stations        []ChargingStation `json:"stations"`
	SuggestedStops  []ChargingStation `json:"suggestedStops"`
	BatteryAnalysis BatteryAnalysis   `json:"batteryAnalysis"`
}

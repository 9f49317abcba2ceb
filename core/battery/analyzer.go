// Package battery simulates battery depletion over a multi-waypoint route.
package battery

import (
	"math"

	"github.com/jmartal/chargeplan/core/geo"
	"github.com/jmartal/chargeplan/core/model"
)

const (
	// DefaultLowThresholdPercent flags a leg when the projected remaining
	// charge drops below it.
	DefaultLowThresholdPercent = 20

	// needsChargingPercent marks the trip as requiring a charge when the
	// final projected charge is below it.
	needsChargingPercent = 10

	// assumedPostChargePercent is the charge level assumed after a flagged
	// stop. This is a planning assumption, not a guarantee the driver
	// actually charges there.
	assumedPostChargePercent = 80
)

// Analyzer walks route legs in order and projects the state of charge after
// each one.
type Analyzer struct {
	// LowThresholdPercent overrides DefaultLowThresholdPercent when >0.
	LowThresholdPercent float64
}

// Analyze simulates battery depletion leg by leg. Fewer than two waypoints
// yields a trivial analysis with the start percent unchanged. An invalid
// profile returns a ConfigError; that is the only failure mode.
//
// When a non-final leg ends below the low threshold the segment is flagged
// and the running charge resets to assumedPostChargePercent, modeling a
// charging stop at that leg. A single leg longer than the full range is
// clamped to 0% remaining; inserting intermediate stops within one leg is
// not supported.
func (a Analyzer) Analyze(waypoints []model.GeoPoint, startPercent float64, profile model.VehicleProfile) (model.BatteryAnalysis, error) {
	if len(waypoints) < 2 {
		return model.BatteryAnalysis{
			Segments:                  []model.RouteSegment{},
			EstimatedRemainingPercent: startPercent,
		}, nil
	}
	if err := profile.Validate(); err != nil {
		return model.BatteryAnalysis{}, err
	}

	threshold := a.LowThresholdPercent
	if threshold <= 0 {
		threshold = DefaultLowThresholdPercent
	}

	segments := make([]model.RouteSegment, 0, len(waypoints)-1)
	currentPercent := startPercent
	for i := 0; i < len(waypoints)-1; i++ {
		from, to := waypoints[i], waypoints[i+1]
		distance := geo.Distance(from, to)
		usedPercent := distance / profile.RangeMiles * 100
		remainingPercent := math.Max(0, currentPercent-usedPercent)

		finalLeg := i == len(waypoints)-2
		lowBattery := remainingPercent < threshold && !finalLeg

		segments = append(segments, model.RouteSegment{
			From:                    from,
			To:                      to,
			DistanceMiles:           math.Round(distance),
			BatteryUsedPercent:      math.Round(usedPercent),
			BatteryRemainingPercent: math.Round(remainingPercent),
			LowBattery:              lowBattery,
		})

		if lowBattery {
			currentPercent = assumedPostChargePercent
		} else {
			currentPercent = remainingPercent
		}
	}

	return model.BatteryAnalysis{
		Segments:                  segments,
		NeedsCharging:             currentPercent < needsChargingPercent,
		RangeAnxiety:              currentPercent < DefaultLowThresholdPercent,
		EstimatedRemainingPercent: math.Round(currentPercent),
	}, nil
}

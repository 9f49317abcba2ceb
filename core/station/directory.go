// Package station defines the station-lookup boundary and the normalization
// of raw provider records into the internal representation.
package station

import (
	"context"

	"github.com/jmartal/chargeplan/core/model"
)

// Query describes a station search around a point.
type Query struct {
	Center      model.GeoPoint
	RadiusMiles float64
	// Connector restricts results to a connector or network family,
	// e.g. "TESLA". Empty means no connector filter.
	Connector string
	Limit     int
}

// Directory fetches candidate charging stations near a point. Implementations
// are expected to absorb provider failures into fallback data rather than
// surface them; an error return is reserved for implementations that cannot
// degrade, and callers treat it as zero candidates. An empty slice with a nil
// error means the provider legitimately reported no results.
type Directory interface {
	QueryNear(ctx context.Context, q Query) ([]model.RawStationRecord, error)
}

// Package geo provides great-circle distance math for route legs.
package geo

import (
	"math"

	"github.com/jmartal/chargeplan/core/model"
)

// earthRadiusMiles is the mean Earth radius used by the Haversine formula.
const earthRadiusMiles = 3959

// Distance returns the great-circle distance in miles between two points
// using the Haversine formula. Identical points yield exactly 0 and the
// asin argument is clamped so antipodal points never produce NaN.
func Distance(a, b model.GeoPoint) float64 {
	if a == b {
		return 0
	}
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}

// Midpoint returns the arithmetic mean of the two coordinates. It is not a
// true geodesic midpoint but is an acceptable approximation at road-trip
// scale, where it anchors the station search for a leg.
func Midpoint(a, b model.GeoPoint) model.GeoPoint {
	return model.GeoPoint{
		Latitude:  (a.Latitude + b.Latitude) / 2,
		Longitude: (a.Longitude + b.Longitude) / 2,
	}
}

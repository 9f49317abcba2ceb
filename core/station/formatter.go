package station

import (
	"fmt"
	"strings"

	"github.com/jmartal/chargeplan/core/charge"
	"github.com/jmartal/chargeplan/core/geo"
	"github.com/jmartal/chargeplan/core/model"
)

// Reference window for the catalog-level charge estimate shown next to a
// station. It is independent of any trip's actual starting charge.
const (
	refChargeFromPct = 20
	refChargeToPct   = 80
)

// DefaultCatalogProfile is the vehicle assumed for catalog charge estimates
// when the caller does not supply one.
var DefaultCatalogProfile = model.VehicleProfile{
	BatteryCapacityKWh: 82,
	UsableCapacityKWh:  75,
	RangeMiles:         280,
	MaxChargeRateKW:    250,
}

// Formatter normalizes raw provider records into ChargingStation values.
type Formatter struct {
	curve   charge.Curve
	profile model.VehicleProfile
}

// NewFormatter builds a Formatter. A zero-value profile selects
// DefaultCatalogProfile.
func NewFormatter(curve charge.Curve, profile model.VehicleProfile) Formatter {
	if profile == (model.VehicleProfile{}) {
		profile = DefaultCatalogProfile
	}
	return Formatter{curve: curve, profile: profile}
}

// Normalize converts a raw provider record into the internal representation.
// The query point is used to fill the station's distance when the provider
// omitted it.
func (f Formatter) Normalize(raw model.RawStationRecord, queryPoint model.GeoPoint) model.ChargingStation {
	location := model.GeoPoint{Latitude: raw.Latitude, Longitude: raw.Longitude}

	distance := raw.DistanceMiles
	if distance <= 0 {
		distance = geo.Distance(queryPoint, location)
	}

	return model.ChargingStation{
		ID:                         fmt.Sprintf("%d", raw.ID),
		Name:                       raw.StationName,
		Location:                   location,
		Network:                    raw.Network,
		ConnectorTypes:             raw.ConnectorTypes,
		DCFastCount:                raw.DCFastCount,
		Level2Count:                raw.Level2Count,
		Pricing:                    raw.Pricing,
		AccessCode:                 raw.AccessCode,
		Hours:                      raw.AccessDaysTime,
		FacilityType:               raw.FacilityType,
		Status:                     mapStatus(raw.StatusCode),
		DistanceFromQueryMiles:     distance,
		ChargingSpeedClass:         speedClass(raw.Network, raw.DCFastCount),
		EstimatedChargeTimeMinutes: f.curve.EstimateMinutes(refChargeFromPct, refChargeToPct, f.profile),
		Amenities:                  amenities(raw.Network, raw.FacilityType),
	}
}

// mapStatus translates provider status codes: 'T' is temporarily offline,
// 'P' is planned-or-busy, anything else (including missing) is available.
func mapStatus(code string) model.StationStatus {
	switch code {
	case "T":
		return model.StatusOffline
	case "P":
		return model.StatusBusy
	default:
		return model.StatusAvailable
	}
}

func speedClass(network string, dcFastCount int) string {
	if isTeslaNetwork(network) && dcFastCount > 0 {
		return "250 kW Supercharger"
	}
	return "DC Fast"
}

func isTeslaNetwork(network string) bool {
	return strings.Contains(strings.ToLower(network), "tesla")
}

// amenityKeywords maps facility-type substrings to the amenities they imply.
var amenityKeywords = []struct {
	substr    string
	amenities []string
}{
	{"grocery", []string{"Shopping", "Food"}},
	{"retail", []string{"Shopping", "Food"}},
	{"hotel", []string{"Hotel", "Dining"}},
	{"lodging", []string{"Hotel", "Dining"}},
	{"restaurant", []string{"Restaurant", "Coffee"}},
	{"dining", []string{"Restaurant", "Coffee"}},
	{"gas", []string{"Convenience Store", "Food"}},
	{"travel", []string{"Convenience Store", "Food"}},
}

func amenities(network, facilityType string) []string {
	out := []string{"Restrooms", "WiFi"}
	seen := map[string]bool{"Restrooms": true, "WiFi": true}

	add := func(a string) {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}

	ft := strings.ToLower(facilityType)
	for _, kw := range amenityKeywords {
		if strings.Contains(ft, kw.substr) {
			for _, a := range kw.amenities {
				add(a)
			}
		}
	}
	if isTeslaNetwork(network) {
		add("Tesla Lounge")
	}
	return out
}

package station

import "github.com/jmartal/chargeplan/core/model"

// FallbackStations returns the static set of well-known stations substituted
// when the provider is unreachable. The records are copies; callers may
// mutate them freely. All carry an empty status code, which normalizes to
// available. Distances are left unset so the formatter recomputes them from
// the query point.
func FallbackStations() []model.RawStationRecord {
	out := make([]model.RawStationRecord, len(fallbackStations))
	copy(out, fallbackStations)
	return out
}

var fallbackStations = []model.RawStationRecord{
	{
		ID:             900001,
		StationName:    "Harris Ranch Supercharger",
		StreetAddress:  "24505 W Dorris Ave",
		City:           "Coalinga",
		State:          "CA",
		Latitude:       36.2546,
		Longitude:      -120.2380,
		Network:        "Tesla",
		ConnectorTypes: []string{"TESLA"},
		DCFastCount:    98,
		Pricing:        "$0.28/kWh",
		AccessCode:     "public",
		AccessDaysTime: "24 hours daily",
		FacilityType:   "GAS_STATION",
	},
	{
		ID:             900002,
		StationName:    "Kettleman City Supercharger",
		StreetAddress:  "33141 Bernard Dr",
		City:           "Kettleman City",
		State:          "CA",
		Latitude:       35.9888,
		Longitude:      -119.9612,
		Network:        "Tesla",
		ConnectorTypes: []string{"TESLA"},
		DCFastCount:    40,
		Pricing:        "$0.30/kWh",
		AccessCode:     "public",
		AccessDaysTime: "24 hours daily",
		FacilityType:   "TRAVEL_CENTER",
	},
	{
		ID:             900003,
		StationName:    "Tejon Ranch Supercharger",
		StreetAddress:  "5602 Dennis McCarthy Dr",
		City:           "Lebec",
		State:          "CA",
		Latitude:       34.9867,
		Longitude:      -118.9447,
		Network:        "Tesla",
		ConnectorTypes: []string{"TESLA"},
		DCFastCount:    24,
		Pricing:        "$0.29/kWh",
		AccessCode:     "public",
		AccessDaysTime: "24 hours daily",
		FacilityType:   "SHOPPING_CENTER",
	},
	{
		ID:             900004,
		StationName:    "Baker Supercharger",
		StreetAddress:  "72530 Baker Blvd",
		City:           "Baker",
		State:          "CA",
		Latitude:       35.2622,
		Longitude:      -116.0775,
		Network:        "Tesla",
		ConnectorTypes: []string{"TESLA"},
		DCFastCount:    32,
		Pricing:        "$0.31/kWh",
		AccessCode:     "public",
		AccessDaysTime: "24 hours daily",
		FacilityType:   "GAS_STATION",
	},
}

package station

import (
	"testing"

	"github.com/jmartal/chargeplan/core/charge"
	"github.com/jmartal/chargeplan/core/model"
)

func testFormatter() Formatter {
	return NewFormatter(charge.NewCurve(charge.CurveConfig{}), model.VehicleProfile{})
}

func rawRecord() model.RawStationRecord {
	return model.RawStationRecord{
		ID:             1523,
		StationName:    "Harris Ranch Supercharger",
		City:           "Coalinga",
		State:          "CA",
		Latitude:       36.2551,
		Longitude:      -120.2384,
		Network:        "Tesla",
		ConnectorTypes: []string{"TESLA"},
		DCFastCount:    18,
		Pricing:        "$0.28/kWh",
		AccessCode:     "public",
		AccessDaysTime: "24 hours daily",
		FacilityType:   "GAS_STATION",
		DistanceMiles:  4.2,
	}
}

func TestNormalizeStatusMapping(t *testing.T) {
	f := testFormatter()
	cases := []struct {
		code string
		want model.StationStatus
	}{
		{"T", model.StatusOffline},
		{"P", model.StatusBusy},
		{"X", model.StatusAvailable},
		{"", model.StatusAvailable},
	}
	for _, tc := range cases {
		raw := rawRecord()
		raw.StatusCode = tc.code
		if got := f.Normalize(raw, model.GeoPoint{}).Status; got != tc.want {
			t.Errorf("status_code %q: got %s, want %s", tc.code, got, tc.want)
		}
	}
}

func TestNormalizeSpeedClass(t *testing.T) {
	f := testFormatter()
	tesla := f.Normalize(rawRecord(), model.GeoPoint{})
	if tesla.ChargingSpeedClass != "250 kW Supercharger" {
		t.Errorf("tesla speed class: got %q", tesla.ChargingSpeedClass)
	}

	raw := rawRecord()
	raw.Network = "Electrify America"
	generic := f.Normalize(raw, model.GeoPoint{})
	if generic.ChargingSpeedClass != "DC Fast" {
		t.Errorf("generic speed class: got %q", generic.ChargingSpeedClass)
	}

	raw = rawRecord()
	raw.DCFastCount = 0
	level2 := f.Normalize(raw, model.GeoPoint{})
	if level2.ChargingSpeedClass != "DC Fast" {
		t.Errorf("tesla without DC ports: got %q", level2.ChargingSpeedClass)
	}
}

func TestNormalizeAmenities(t *testing.T) {
	f := testFormatter()
	st := f.Normalize(rawRecord(), model.GeoPoint{})

	want := map[string]bool{
		"Restrooms": true, "WiFi": true,
		"Convenience Store": true, "Food": true,
		"Tesla Lounge": true,
	}
	if len(st.Amenities) != len(want) {
		t.Fatalf("amenities = %v, want keys %v", st.Amenities, want)
	}
	seen := map[string]bool{}
	for _, a := range st.Amenities {
		if seen[a] {
			t.Errorf("duplicate amenity %q", a)
		}
		seen[a] = true
		if !want[a] {
			t.Errorf("unexpected amenity %q", a)
		}
	}
}

func TestNormalizeAmenitiesDedup(t *testing.T) {
	f := testFormatter()
	raw := rawRecord()
	// Both keywords imply Shopping+Food; the set must stay deduplicated.
	raw.FacilityType = "grocery and retail center"
	raw.Network = "ChargePoint"
	st := f.Normalize(raw, model.GeoPoint{})
	seen := map[string]bool{}
	for _, a := range st.Amenities {
		if seen[a] {
			t.Fatalf("duplicate amenity %q in %v", a, st.Amenities)
		}
		seen[a] = true
	}
}

func TestNormalizeReferenceChargeEstimate(t *testing.T) {
	f := testFormatter()
	st := f.Normalize(rawRecord(), model.GeoPoint{})
	// 60% of 75 kWh usable at the 150 kW mid bucket is 18 minutes.
	if st.EstimatedChargeTimeMinutes != 18 {
		t.Errorf("reference estimate = %d, want 18", st.EstimatedChargeTimeMinutes)
	}
}

func TestNormalizeDistanceFallback(t *testing.T) {
	f := testFormatter()
	raw := rawRecord()
	raw.DistanceMiles = 0
	query := model.GeoPoint{Latitude: 36.0, Longitude: -120.0}
	st := f.Normalize(raw, query)
	if st.DistanceFromQueryMiles <= 0 {
		t.Errorf("expected computed distance, got %f", st.DistanceFromQueryMiles)
	}
}

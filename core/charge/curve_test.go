package charge

import (
	"testing"

	"github.com/jmartal/chargeplan/core/model"
)

var testProfile = model.VehicleProfile{
	BatteryCapacityKWh: 82,
	UsableCapacityKWh:  75,
	RangeMiles:         280,
	MaxChargeRateKW:    250,
}

func TestEstimateMinutesNoChargeNeeded(t *testing.T) {
	c := NewCurve(CurveConfig{})
	if got := c.EstimateMinutes(80, 80, testProfile); got != 0 {
		t.Errorf("equal levels: got %d, want 0", got)
	}
	if got := c.EstimateMinutes(90, 40, testProfile); got != 0 {
		t.Errorf("target below current: got %d, want 0", got)
	}
}

func TestEstimateMinutesClampsTarget(t *testing.T) {
	c := NewCurve(CurveConfig{})
	if got, want := c.EstimateMinutes(95, 120, testProfile), c.EstimateMinutes(95, 100, testProfile); got != want {
		t.Errorf("target above 100: got %d, want %d", got, want)
	}
}

func TestEstimateMinutesBuckets(t *testing.T) {
	c := NewCurve(CurveConfig{})
	cases := []struct {
		name            string
		current, target float64
		wantMinutes     int
	}{
		// 30 pts of 75 kWh = 22.5 kWh at 250 kW -> 5.4 min.
		{"fast bucket", 20, 50, 5},
		// 22.5 kWh at 150 kW (starting below 50) -> 9 min.
		{"mid bucket from low", 30, 60, 9},
		// 15 pts = 11.25 kWh at 100 kW (starting at 50+) -> 6.75 -> 7 min.
		{"mid bucket from high", 60, 75, 7},
		// 15 pts = 11.25 kWh at 50 kW taper -> 13.5 -> 14 min.
		{"taper bucket", 80, 95, 14},
		// Reference 20->80 catalog estimate: 45 kWh at 150 kW -> 18 min.
		{"reference twenty to eighty", 20, 80, 18},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.EstimateMinutes(tc.current, tc.target, testProfile); got != tc.wantMinutes {
				t.Errorf("EstimateMinutes(%v,%v) = %d, want %d", tc.current, tc.target, got, tc.wantMinutes)
			}
		})
	}
}

func TestEstimateMinutesProfileCapsPower(t *testing.T) {
	c := NewCurve(CurveConfig{})
	slow := testProfile
	slow.MaxChargeRateKW = 50
	// 22.5 kWh at 50 kW instead of 250 kW -> 27 min.
	if got := c.EstimateMinutes(20, 50, slow); got != 27 {
		t.Errorf("capped power: got %d, want 27", got)
	}
}

func TestCurveConfigValidate(t *testing.T) {
	cfg := CurveConfig{}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	bad := CurveConfig{FastKW: -1, MidLowKW: 150, MidHighKW: 100, TaperKW: 50}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for negative bucket")
	}
}

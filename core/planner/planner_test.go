package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/jmartal/chargeplan/core/charge"
	"github.com/jmartal/chargeplan/core/metrics"
	"github.com/jmartal/chargeplan/core/model"
	"github.com/jmartal/chargeplan/core/station"
)

var profile = model.VehicleProfile{
	BatteryCapacityKWh: 82,
	UsableCapacityKWh:  75,
	RangeMiles:         280,
	MaxChargeRateKW:    250,
}

func milesEast(miles float64) model.GeoPoint {
	const earthRadiusMiles = 3959
	return model.GeoPoint{Longitude: miles / earthRadiusMiles * 180 / math.Pi}
}

// fakeDirectory returns canned records per call and captures the queries it
// receives.
type fakeDirectory struct {
	mu      sync.Mutex
	queries []station.Query
	records func(q station.Query) []model.RawStationRecord
	err     error
}

func (f *fakeDirectory) QueryNear(_ context.Context, q station.Query) ([]model.RawStationRecord, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.records == nil {
		return nil, nil
	}
	return f.records(q), nil
}

func newTestPlanner(t *testing.T, cfg Config, dir station.Directory) *Planner {
	t.Helper()
	formatter := station.NewFormatter(charge.NewCurve(charge.CurveConfig{}), model.VehicleProfile{})
	p, err := New(cfg, dir, formatter, nil, nil)
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}
	return p
}

func stationRecord(id int, distance float64) model.RawStationRecord {
	return model.RawStationRecord{
		ID:            id,
		StationName:   fmt.Sprintf("Station %d", id),
		Network:       "Tesla",
		DCFastCount:   8,
		DistanceMiles: distance,
	}
}

func TestPlanSuggestsNearestCandidate(t *testing.T) {
	dir := &fakeDirectory{records: func(station.Query) []model.RawStationRecord {
		return []model.RawStationRecord{
			stationRecord(1, 12.3),
			stationRecord(2, 3.1),
			stationRecord(3, 8.8),
		}
	}}
	p := newTestPlanner(t, Config{}, dir)

	// The first leg drains below the threshold and gets flagged.
	route := []model.GeoPoint{{}, milesEast(250), milesEast(450)}
	plan, err := p.Plan(context.Background(), route, 100, profile)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.Stations) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(plan.Stations))
	}
	if len(plan.SuggestedStops) != 1 {
		t.Fatalf("expected 1 suggested stop, got %d", len(plan.SuggestedStops))
	}
	stop := plan.SuggestedStops[0]
	if stop.ID != "2" {
		t.Errorf("suggested stop = %s, want nearest candidate 2", stop.ID)
	}
	for _, st := range plan.Stations {
		if st.DistanceFromQueryMiles < stop.DistanceFromQueryMiles {
			t.Errorf("candidate %s closer than suggested stop", st.ID)
		}
	}
	if len(dir.queries) != 1 {
		t.Fatalf("expected 1 lookup, got %d", len(dir.queries))
	}
	q := dir.queries[0]
	if q.RadiusMiles != 30 || q.Connector != "TESLA" {
		t.Errorf("query = %+v, want default radius and connector", q)
	}
}

func TestPlanSingleWaypoint(t *testing.T) {
	dir := &fakeDirectory{}
	p := newTestPlanner(t, Config{}, dir)
	plan, err := p.Plan(context.Background(), []model.GeoPoint{{Latitude: 1}}, 55, profile)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.Stations) != 0 || len(plan.SuggestedStops) != 0 {
		t.Errorf("trivial plan must carry no stations, got %d/%d", len(plan.Stations), len(plan.SuggestedStops))
	}
	if len(plan.BatteryAnalysis.Segments) != 0 {
		t.Errorf("expected no segments, got %d", len(plan.BatteryAnalysis.Segments))
	}
	if plan.BatteryAnalysis.EstimatedRemainingPercent != 55 {
		t.Errorf("remaining = %f, want start percent unchanged", plan.BatteryAnalysis.EstimatedRemainingPercent)
	}
	if len(dir.queries) != 0 {
		t.Errorf("no lookups expected, got %d", len(dir.queries))
	}
}

func TestPlanDirectoryErrorDoesNotAbort(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("connection refused")}
	p := newTestPlanner(t, Config{}, dir)
	route := []model.GeoPoint{{}, milesEast(250), milesEast(450)}
	plan, err := p.Plan(context.Background(), route, 100, profile)
	if err != nil {
		t.Fatalf("plan must absorb lookup errors, got %v", err)
	}
	if len(plan.SuggestedStops) != 0 {
		t.Errorf("expected no stops from failed lookup, got %d", len(plan.SuggestedStops))
	}
	if len(plan.BatteryAnalysis.Segments) != 2 {
		t.Errorf("analysis must survive lookup failure, got %d segments", len(plan.BatteryAnalysis.Segments))
	}
}

func TestPlanInvalidProfile(t *testing.T) {
	p := newTestPlanner(t, Config{}, &fakeDirectory{})
	_, err := p.Plan(context.Background(), []model.GeoPoint{{}, milesEast(100)}, 100, model.VehicleProfile{})
	var cfgErr *model.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestPlanConcurrentLookupsPreserveOrder(t *testing.T) {
	// Each lookup returns a station whose name encodes the query center,
	// so out-of-order completion would be visible in the stop order.
	dir := &fakeDirectory{records: func(q station.Query) []model.RawStationRecord {
		return []model.RawStationRecord{{
			ID:            int(math.Round(q.Center.Longitude * 1000)),
			StationName:   fmt.Sprintf("near %.3f", q.Center.Longitude),
			Network:       "Tesla",
			DCFastCount:   4,
			DistanceMiles: 5,
		}}
	}}
	p := newTestPlanner(t, Config{Concurrency: 4}, dir)

	// Three consecutive 250-mile legs: every non-final leg gets flagged.
	route := []model.GeoPoint{{}, milesEast(250), milesEast(500), milesEast(750)}
	plan, err := p.Plan(context.Background(), route, 100, profile)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan.SuggestedStops) != 2 {
		t.Fatalf("expected 2 suggested stops, got %d", len(plan.SuggestedStops))
	}
	prev := -math.MaxFloat64
	for i, stop := range plan.SuggestedStops {
		if stop.Location.Longitude == 0 && stop.Name == "" {
			t.Fatalf("stop %d missing data: %+v", i, stop)
		}
		lng := midLongitude(plan.BatteryAnalysis.Segments, i)
		if stop.Name != fmt.Sprintf("near %.3f", lng) {
			t.Errorf("stop %d = %q, want candidate for segment midpoint %.3f", i, stop.Name, lng)
		}
		if lng <= prev {
			t.Errorf("stops out of route order at %d", i)
		}
		prev = lng
	}
}

// midLongitude returns the midpoint longitude of the i-th flagged segment.
func midLongitude(segments []model.RouteSegment, i int) float64 {
	n := 0
	for _, seg := range segments {
		if !seg.LowBattery {
			continue
		}
		if n == i {
			return (seg.From.Longitude + seg.To.Longitude) / 2
		}
		n++
	}
	return math.NaN()
}

func TestPlanRecordsMetrics(t *testing.T) {
	sink := &recordingSink{}
	dir := &fakeDirectory{records: func(station.Query) []model.RawStationRecord {
		return []model.RawStationRecord{stationRecord(1, 2)}
	}}
	formatter := station.NewFormatter(charge.NewCurve(charge.CurveConfig{}), model.VehicleProfile{})
	p, err := New(Config{}, dir, formatter, nil, sink)
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}
	route := []model.GeoPoint{{}, milesEast(250), milesEast(450)}
	if _, err := p.Plan(context.Background(), route, 100, profile); err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(sink.plans) != 1 {
		t.Fatalf("expected 1 plan event, got %d", len(sink.plans))
	}
	ev := sink.plans[0]
	if ev.Segments != 2 || ev.FlaggedSegments != 1 || ev.SuggestedStops != 1 {
		t.Errorf("plan event = %+v", ev)
	}
	if ev.PlanID == "" {
		t.Error("plan event missing plan id")
	}
	if len(sink.lookups) != 1 {
		t.Fatalf("expected 1 lookup event, got %d", len(sink.lookups))
	}
	if sink.lookups[0].Stations != 1 {
		t.Errorf("lookup event = %+v", sink.lookups[0])
	}
}

type recordingSink struct {
	mu      sync.Mutex
	plans   []metrics.PlanEvent
	lookups []metrics.LookupEvent
}

func (r *recordingSink) RecordPlan(ev metrics.PlanEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans = append(r.plans, ev)
	return nil
}

func (r *recordingSink) RecordLookup(ev metrics.LookupEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups = append(r.lookups, ev)
	return nil
}

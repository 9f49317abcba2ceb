// Package planner assembles charging plans for multi-waypoint EV routes.
package planner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jmartal/chargeplan/core/battery"
	"github.com/jmartal/chargeplan/core/geo"
	"github.com/jmartal/chargeplan/core/logger"
	"github.com/jmartal/chargeplan/core/metrics"
	"github.com/jmartal/chargeplan/core/model"
	"github.com/jmartal/chargeplan/core/station"
)

// Planner runs the battery analysis over a route and recommends charging
// stops for legs that would exhaust the safety margin. Each planning call is
// a self-contained computation; the only I/O is the station lookup, and every
// lookup failure degrades to fallback or empty data, so a plan is returned
// for any valid input. Only an invalid vehicle profile or planner
// configuration fails a call.
type Planner struct {
	cfg       Config
	directory station.Directory
	formatter station.Formatter
	analyzer  battery.Analyzer
	log       logger.Logger
	sink      metrics.MetricsSink
}

// New builds a Planner. The directory is required; logger and sink may be nil
// and default to no-ops.
func New(cfg Config, dir station.Directory, formatter station.Formatter, log logger.Logger, sink metrics.MetricsSink) (*Planner, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if dir == nil {
		return nil, &model.ConfigError{Field: "directory", Reason: "is required"}
	}
	if log == nil {
		log = nopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Planner{
		cfg:       cfg,
		directory: dir,
		formatter: formatter,
		analyzer:  battery.Analyzer{LowThresholdPercent: cfg.LowThresholdPercent},
		log:       log,
		sink:      sink,
	}, nil
}

// Plan analyzes the route and assembles the charging plan. For each flagged
// segment it queries the directory around the segment midpoint, collects all
// candidates, and suggests the nearest one. Candidates and suggested stops
// follow route order regardless of lookup completion order. A lookup that
// fails or returns no candidates contributes nothing for its segment but
// never aborts the plan.
func (p *Planner) Plan(ctx context.Context, waypoints []model.GeoPoint, startPercent float64, profile model.VehicleProfile) (model.ChargingPlan, error) {
	start := time.Now()
	planID := uuid.NewString()

	analysis, err := p.analyzer.Analyze(waypoints, startPercent, profile)
	if err != nil {
		return model.ChargingPlan{}, err
	}

	var flagged []int
	for i, seg := range analysis.Segments {
		if seg.LowBattery {
			flagged = append(flagged, i)
		}
	}

	// Results attach to flagged segments by index so that concurrent
	// lookups preserve route order.
	candidates := make([][]model.ChargingStation, len(flagged))
	if p.cfg.Concurrency > 1 && len(flagged) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.cfg.Concurrency)
		for i, segIdx := range flagged {
			i, segIdx := i, segIdx // per-iteration copies; go.mod targets go1.21
			g.Go(func() error {
				candidates[i] = p.lookup(gctx, planID, segIdx, analysis.Segments[segIdx])
				return nil
			})
		}
		_ = g.Wait() // lookups never return errors
	} else {
		for i, segIdx := range flagged {
			candidates[i] = p.lookup(ctx, planID, segIdx, analysis.Segments[segIdx])
		}
	}

	stations := []model.ChargingStation{}
	suggestedStops := []model.ChargingStation{}
	for _, cands := range candidates {
		stations = append(stations, cands...)
		if len(cands) == 0 {
			continue
		}
		best := cands[0]
		for _, c := range cands[1:] {
			if c.DistanceFromQueryMiles < best.DistanceFromQueryMiles {
				best = c
			}
		}
		suggestedStops = append(suggestedStops, best)
	}

	plan := model.ChargingPlan{
		Stations:        stations,
		SuggestedStops:  suggestedStops,
		BatteryAnalysis: analysis,
	}

	if err := p.sink.RecordPlan(metrics.PlanEvent{
		PlanID:           planID,
		Waypoints:        len(waypoints),
		Segments:         len(analysis.Segments),
		FlaggedSegments:  len(flagged),
		SuggestedStops:   len(suggestedStops),
		RemainingPercent: analysis.EstimatedRemainingPercent,
		NeedsCharging:    analysis.NeedsCharging,
		Duration:         time.Since(start),
		Time:             start,
	}); err != nil {
		p.log.Warnf("record plan metrics: %v", err)
	}
	p.log.Debugw("plan computed", map[string]any{
		"plan_id":         planID,
		"segments":        len(analysis.Segments),
		"flagged":         len(flagged),
		"suggested_stops": len(suggestedStops),
		"remaining_pct":   analysis.EstimatedRemainingPercent,
	})
	return plan, nil
}

// lookup queries the directory around the segment midpoint and normalizes
// the results. Errors are logged and degrade to zero candidates.
func (p *Planner) lookup(ctx context.Context, planID string, segIdx int, seg model.RouteSegment) []model.ChargingStation {
	mid := geo.Midpoint(seg.From, seg.To)
	lctx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.LookupTimeoutSeconds)*time.Second)
	defer cancel()

	begin := time.Now()
	records, err := p.directory.QueryNear(lctx, station.Query{
		Center:      mid,
		RadiusMiles: p.cfg.SearchRadiusMiles,
		Connector:   p.cfg.Connector,
		Limit:       p.cfg.ResultLimit,
	})
	if err != nil {
		// Directories normally absorb failures; a non-degrading
		// implementation just loses this segment's candidates.
		p.log.Warnf("station lookup for segment %d failed: %v", segIdx, err)
		records = nil
	}

	out := make([]model.ChargingStation, 0, len(records))
	for _, r := range records {
		out = append(out, p.formatter.Normalize(r, mid))
	}

	if rec, ok := p.sink.(metrics.LookupRecorder); ok {
		if err := rec.RecordLookup(metrics.LookupEvent{
			PlanID:       planID,
			SegmentIndex: segIdx,
			Stations:     len(out),
			Latency:      time.Since(begin),
			Time:         begin,
		}); err != nil {
			p.log.Warnf("record lookup metrics: %v", err)
		}
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

package metrics

import "time"

// PlanEvent summarizes one completed planning call.
type PlanEvent struct {
	PlanID           string
	Waypoints        int
	Segments         int
	FlaggedSegments  int
	SuggestedStops   int
	RemainingPercent float64
	NeedsCharging    bool
	Duration         time.Duration
	Time             time.Time
}

// LookupEvent captures one station-directory lookup issued for a flagged
// segment, as seen from the planner.
type LookupEvent struct {
	PlanID       string
	SegmentIndex int
	Stations     int
	Latency      time.Duration
	Time         time.Time
}

// DirectoryEvent captures provider-side details of a lookup: whether the
// result came from cache and whether the static fallback set was substituted
// for a failed provider call.
type DirectoryEvent struct {
	Provider string
	Stations int
	CacheHit bool
	Fallback bool
	Latency  time.Duration
	Time     time.Time
}

// MetricsSink records planning events for observability purposes.
type MetricsSink interface {
	RecordPlan(ev PlanEvent) error
}

// LookupRecorder records station lookups. Sinks implement it optionally.
type LookupRecorder interface {
	RecordLookup(ev LookupEvent) error
}

// DirectoryRecorder records provider-side lookup details. Sinks implement it
// optionally.
type DirectoryRecorder interface {
	RecordDirectory(ev DirectoryEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlan(PlanEvent) error { return nil }

func (NopSink) RecordLookup(LookupEvent) error { return nil }

func (NopSink) RecordDirectory(DirectoryEvent) error { return nil }

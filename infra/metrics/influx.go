package metrics

import (
	"context"
	"net/http"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/jmartal/chargeplan/core/metrics"
	"github.com/jmartal/chargeplan/infra/logger"
)

// InfluxSink writes planning events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	client := influxdb2.NewClientWithOptions(url, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// when the health check fails, so a missing metrics backend never blocks
// planning.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPlan writes the plan summary as a point.
func (s *InfluxSink) RecordPlan(ev coremetrics.PlanEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("charging_plan").
		AddTag("plan_id", ev.PlanID).
		AddTag("needs_charging", boolTag(ev.NeedsCharging)).
		AddField("waypoints", ev.Waypoints).
		AddField("segments", ev.Segments).
		AddField("flagged_segments", ev.FlaggedSegments).
		AddField("suggested_stops", ev.SuggestedStops).
		AddField("remaining_percent", ev.RemainingPercent).
		AddField("duration_ms", ev.Duration.Milliseconds()).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordLookup writes one point per station lookup.
func (s *InfluxSink) RecordLookup(ev coremetrics.LookupEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("station_lookup").
		AddTag("plan_id", ev.PlanID).
		AddField("segment_index", ev.SegmentIndex).
		AddField("stations", ev.Stations).
		AddField("latency_ms", ev.Latency.Milliseconds()).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordDirectory writes provider-side lookup details.
func (s *InfluxSink) RecordDirectory(ev coremetrics.DirectoryEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("station_directory").
		AddTag("provider", ev.Provider).
		AddTag("cache_hit", boolTag(ev.CacheHit)).
		AddTag("fallback", boolTag(ev.Fallback)).
		AddField("stations", ev.Stations).
		AddField("latency_ms", ev.Latency.Milliseconds()).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func boolTag(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

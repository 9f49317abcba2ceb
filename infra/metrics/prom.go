package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/jmartal/chargeplan/core/metrics"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	plans         *prometheus.CounterVec
	flagged       prometheus.Counter
	planDuration  prometheus.Histogram
	lookupLatency prometheus.Histogram
	fallbacks     prometheus.Counter
	cacheHits     prometheus.Counter
}

// NewPromSink registers planning metrics on the default Prometheus
// registerer. The metrics endpoint is served separately, see StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{}
	var err error

	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "charging_plans_total",
		Help: "Total number of charging plans computed",
	}, []string{"needs_charging"})
	if s.plans, err = registerCounterVec(reg, plans); err != nil {
		return nil, err
	}
	if s.flagged, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "charging_plan_flagged_segments_total",
		Help: "Total number of route segments flagged for a charging stop",
	})); err != nil {
		return nil, err
	}
	if s.planDuration, err = registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "charging_plan_duration_seconds",
		Help:    "Time to compute a charging plan",
		Buckets: prometheus.DefBuckets,
	})); err != nil {
		return nil, err
	}
	if s.lookupLatency, err = registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "station_lookup_latency_seconds",
		Help:    "Latency of station directory lookups",
		Buckets: prometheus.DefBuckets,
	})); err != nil {
		return nil, err
	}
	if s.fallbacks, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "station_lookup_fallbacks_total",
		Help: "Lookups answered from the static fallback station set",
	})); err != nil {
		return nil, err
	}
	if s.cacheHits, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "station_lookup_cache_hits_total",
		Help: "Lookups answered from the in-memory station cache",
	})); err != nil {
		return nil, err
	}
	return s, nil
}

// The register helpers adopt the existing collector on re-registration so
// multiple sinks can share a registry.

func registerCounterVec(reg prometheus.Registerer, cv *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(cv); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, err
	}
	return cv, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter), nil
		}
		return nil, err
	}
	return c, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram), nil
		}
		return nil, err
	}
	return h, nil
}

// RecordPlan increments the plan counters and observes the duration.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	s.plans.WithLabelValues(strconv.FormatBool(ev.NeedsCharging)).Inc()
	s.flagged.Add(float64(ev.FlaggedSegments))
	s.planDuration.Observe(ev.Duration.Seconds())
	return nil
}

// RecordLookup observes the lookup latency histogram.
func (s *PromSink) RecordLookup(ev coremetrics.LookupEvent) error {
	s.lookupLatency.Observe(ev.Latency.Seconds())
	return nil
}

// RecordDirectory counts cache hits and fallback activations.
func (s *PromSink) RecordDirectory(ev coremetrics.DirectoryEvent) error {
	if ev.CacheHit {
		s.cacheHits.Inc()
	}
	if ev.Fallback {
		s.fallbacks.Inc()
	}
	return nil
}

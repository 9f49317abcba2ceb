package metrics

import "github.com/jmartal/chargeplan/core/factory"

var sinkRegistry = factory.NewRegistry[MetricsSink]()

// RegisterMetricsSink adds a metrics sink factory identified by name.
func RegisterMetricsSink(name string, f factory.Factory[MetricsSink]) error {
	return sinkRegistry.Register(name, f)
}

// NewMetricsSink creates a MetricsSink from the provided configuration.
// No configuration yields a NopSink; multiple sinks are fanned out.
func NewMetricsSink(cfgs []factory.ModuleConfig) (MetricsSink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]MetricsSink, len(cfgs))
	for i, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}

// MultiSink fans planning events out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlan forwards the event to all sinks, returning the first error.
func (m *MultiSink) RecordPlan(ev PlanEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlan(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordLookup forwards lookup events to sinks that record them.
func (m *MultiSink) RecordLookup(ev LookupEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(LookupRecorder); ok {
			if err := rec.RecordLookup(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordDirectory forwards provider-side lookup events to sinks that record
// them.
func (m *MultiSink) RecordDirectory(ev DirectoryEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(DirectoryRecorder); ok {
			if err := rec.RecordDirectory(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

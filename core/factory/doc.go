// Package factory provides a small generic registry used to instantiate
// modules from configuration. A module is addressed by a type string plus a
// map of raw settings; factories decode the settings into typed structs and
// return the concrete implementation.
//
// The metrics sinks use it like this:
//
//	reg := factory.NewRegistry[metrics.MetricsSink]()
//	reg.Register("prometheus", func(conf map[string]any) (metrics.MetricsSink, error) {
//	    var c promConf
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newPromSink(c)
//	})
//	sink, err := reg.Create(factory.ModuleConfig{Type: "prometheus", Conf: map[string]any{"port": 9100}})
package factory

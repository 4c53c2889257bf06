// Package metrics defines the interfaces and configuration for recording
// solver metrics. Concrete sinks live in infra/metrics and register
// themselves with the factory; NewMetricsSink returns a MultiSink
// automatically when multiple sinks are configured.
package metrics

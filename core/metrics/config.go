package metrics

import "github.com/kilianp07/replenish/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusAddr, when non-empty, enables the /metrics HTTP listener.
	PrometheusAddr string `json:"prometheus_addr"`
}

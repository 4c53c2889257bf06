package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/replenish/core/metrics"
)

// PromSink records solve results in Prometheus metrics.
type PromSink struct {
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	cost     *prometheus.GaugeVec
	states   prometheus.Gauge
	rows     prometheus.Counter
}

// NewPromSink registers solver metrics on the default Prometheus registerer.
// The Prometheus server should be started separately via StartPromServer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "replenish_solves_total",
		Help: "Total number of completed solves",
	}, []string{"bound_policy"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "replenish_solve_duration_seconds",
		Help:    "Wall time of a full solve",
		Buckets: prometheus.DefBuckets,
	}, []string{"bound_policy"})
	cost := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "replenish_last_total_cost",
		Help: "Total cost of the most recent solve, per policy",
	}, []string{"policy"})
	states := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "replenish_last_states",
		Help: "Number of states evaluated by the most recent solve",
	})
	rows := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "replenish_rows_completed_total",
		Help: "Backward-induction rows completed across all solves",
	})

	s := &PromSink{solves: solves, duration: duration, cost: cost, states: states, rows: rows}
	for _, c := range []prometheus.Collector{solves, duration, cost, states, rows} {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			switch existing := are.ExistingCollector.(type) {
			case *prometheus.CounterVec:
				s.solves = existing
			case *prometheus.HistogramVec:
				s.duration = existing
			case *prometheus.GaugeVec:
				s.cost = existing
			case prometheus.Gauge:
				s.states = existing
			case prometheus.Counter:
				s.rows = existing
			}
		}
	}
	return s, nil
}

// RecordSolveResult updates counters and gauges for each completed solve.
func (s *PromSink) RecordSolveResult(res []coremetrics.SolveResult) error {
	for _, r := range res {
		s.solves.WithLabelValues(r.BoundPolicy).Inc()
		s.duration.WithLabelValues(r.BoundPolicy).Observe(r.Duration.Seconds())
		s.cost.WithLabelValues("optimal").Set(r.OptimalCost)
		if r.GreedyComputed {
			s.cost.WithLabelValues("greedy").Set(r.GreedyCost)
		}
		s.states.Set(float64(r.States))
	}
	return nil
}

// RecordRowDone counts completed backward-induction rows.
func (s *PromSink) RecordRowDone(period, states int) error {
	s.rows.Inc()
	return nil
}

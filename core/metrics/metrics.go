package metrics

import "time"

// SolveResult represents one completed optimization run to be recorded.
type SolveResult struct {
	SolveID     string
	Horizon     int
	LeadTime    int
	MaxStorage  int
	BoundPolicy string
	// States is the number of states the solve evaluated.
	States int
	// OptimalCost is the DP minimum total cost.
	OptimalCost float64
	// GreedyCost is the baseline total cost; valid when GreedyComputed.
	GreedyCost     float64
	GreedyComputed bool
	Duration       time.Duration
	Time           time.Time
}

// MetricsSink records solve results for observability purposes.
type MetricsSink interface {
	RecordSolveResult(results []SolveResult) error
}

// SolveProgressRecorder is implemented by sinks able to record per-row
// progress of a running solve.
type SolveProgressRecorder interface {
	RecordRowDone(period, states int) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSolveResult([]SolveResult) error { return nil }

// Ensure NopSink implements SolveProgressRecorder.
func (NopSink) RecordRowDone(int, int) error { return nil }

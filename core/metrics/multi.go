package metrics

// MultiSink fans out solve results to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSolveResult forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordSolveResult(res []SolveResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordSolveResult(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordRowDone forwards progress to sinks that support it.
func (m *MultiSink) RecordRowDone(period, states int) error {
	for _, s := range m.Sinks {
		if pr, ok := s.(SolveProgressRecorder); ok {
			if err := pr.RecordRowDone(period, states); err != nil {
				return err
			}
		}
	}
	return nil
}

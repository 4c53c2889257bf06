package metrics

import (
	"errors"
	"testing"
	"time"
)

type recordingSink struct {
	results []SolveResult
	rows    int
	err     error
}

func (r *recordingSink) RecordSolveResult(res []SolveResult) error {
	if r.err != nil {
		return r.err
	}
	r.results = append(r.results, res...)
	return nil
}

func (r *recordingSink) RecordRowDone(period, states int) error {
	r.rows++
	return r.err
}

func TestMultiSinkFanOut(t *testing.T) {
	s1 := &recordingSink{}
	s2 := &recordingSink{}
	m := NewMultiSink(s1, s2)

	res := []SolveResult{{SolveID: "s-1", OptimalCost: 52, Time: time.Now()}}
	if err := m.RecordSolveResult(res); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(s1.results) != 1 || len(s2.results) != 1 {
		t.Fatalf("expected both sinks to receive the result")
	}
	if err := m.RecordRowDone(2, 7); err != nil {
		t.Fatalf("row done: %v", err)
	}
	if s1.rows != 1 || s2.rows != 1 {
		t.Fatalf("expected both sinks to receive the progress event")
	}
}

func TestMultiSinkFirstError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordingSink{err: boom}
	s2 := &recordingSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordSolveResult([]SolveResult{{}}); !errors.Is(err, boom) {
		t.Fatalf("expected first error, got %v", err)
	}
}

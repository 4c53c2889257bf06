package metrics

import (
	"context"

	coremetrics "github.com/kilianp07/replenish/core/metrics"
	"github.com/kilianp07/replenish/core/solve"
	"github.com/kilianp07/replenish/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// solver progress events. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.MetricsSink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if e, isRow := ev.(solve.RowDone); isRow {
					if r, supported := sink.(coremetrics.SolveProgressRecorder); supported {
						_ = r.RecordRowDone(e.Period, e.States)
					}
				}
			}
		}
	}()
}

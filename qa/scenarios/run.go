package scenarios

import (
	"context"
	"math"
	"testing"

	"github.com/kilianp07/replenish/core/solve"
	"github.com/kilianp07/replenish/infra/logger"
)

const costTolerance = 1e-6

// RunScenario solves the scenario and checks the schedule against the
// expectations and the inventory flow invariants.
func RunScenario(t *testing.T, sc *Scenario) {
	bound, err := solve.ParseBoundPolicy(sc.BoundPolicy)
	if err != nil {
		t.Fatalf("bound policy: %v", err)
	}
	prob := sc.ToProblem()
	costs := sc.Costs.ToModel()

	solver, err := solve.New(prob, costs, solve.Options{Bound: bound, Logger: logger.NopLogger{}})
	if err != nil {
		t.Fatalf("solver: %v", err)
	}
	sol, err := solver.Solve(context.Background())
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if math.Abs(sol.TotalCost()-sc.Expected.OptimalCost) > costTolerance {
		t.Errorf("scenario %s expected optimal cost %v, got %v", sc.Name, sc.Expected.OptimalCost, sol.TotalCost())
	}

	sched, err := sol.Schedule()
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(sched) != prob.Horizon {
		t.Fatalf("expected %d periods, got %d", prob.Horizon, len(sched))
	}

	inv := prob.InitialInventory
	for _, r := range sched {
		if r.StartInventory != inv {
			t.Errorf("period %d: start %d does not chain from previous end %d", r.Period, r.StartInventory, inv)
		}
		if r.StartInventory+r.Arriving+r.EmergencyQty < r.Demand {
			t.Errorf("period %d: demand %d not satisfied", r.Period, r.Demand)
		}
		if r.EndInventory < 0 || r.EndInventory > prob.MaxStorage {
			t.Errorf("period %d: ending inventory %d outside [0, %d]", r.Period, r.EndInventory, prob.MaxStorage)
		}
		inv = r.EndInventory
	}

	for i, want := range sc.Expected.Orders {
		if sched[i].Order != want {
			t.Errorf("scenario %s period %d: expected order %d, got %d", sc.Name, i, want, sched[i].Order)
		}
	}

	if sc.Expected.GreedyCost != nil {
		_, greedyTotal, err := solve.Greedy(prob, costs)
		if err != nil {
			t.Fatalf("greedy: %v", err)
		}
		if math.Abs(greedyTotal-*sc.Expected.GreedyCost) > costTolerance {
			t.Errorf("scenario %s expected greedy cost %v, got %v", sc.Name, *sc.Expected.GreedyCost, greedyTotal)
		}
	}
}

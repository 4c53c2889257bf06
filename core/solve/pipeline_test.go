package solve

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/kilianp07/replenish/core/model"
)

func TestPipelineOrderArrivesAfterLeadTime(t *testing.T) {
	prob := model.Problem{
		Horizon:          3,
		Demand:           []int{0, 4, 0},
		MaxStorage:       6,
		InitialInventory: 2,
		LeadTime:         1,
	}
	sol := mustSolve(t, prob, testCosts, Options{})
	// Order 2 at t=0 (10 + 5*2) plus storage on the 2 units held through
	// t=0. The order has no effect on t=0 itself.
	if sol.TotalCost() != 22 {
		t.Fatalf("expected optimal cost 22, got %v", sol.TotalCost())
	}
	sched, err := sol.Schedule()
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	r0 := sched[0]
	if r0.Order != 2 {
		t.Fatalf("expected order 2 at t=0, got %d", r0.Order)
	}
	if r0.Arriving != 0 {
		t.Fatalf("order placed at t=0 must not arrive at t=0, got arriving %d", r0.Arriving)
	}
	if r0.EndInventory != 2 {
		t.Fatalf("t=0 transition must ignore the fresh order, got ending %d", r0.EndInventory)
	}
	r1 := sched[1]
	if r1.Arriving != 2 {
		t.Fatalf("expected the t=0 order to arrive at t=1, got %d", r1.Arriving)
	}
	if r1.EmergencyQty != 0 || r1.EndInventory != 0 {
		t.Fatalf("unexpected t=1 record: %+v", r1)
	}
}

func TestPipelineScheduleConsistency(t *testing.T) {
	prob := model.Problem{
		Horizon:          5,
		Demand:           []int{2, 3, 1, 4, 2},
		MaxStorage:       5,
		InitialInventory: 1,
		LeadTime:         2,
	}
	sol := mustSolve(t, prob, testCosts, Options{})
	sched, err := sol.Schedule()
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(sched) != prob.Horizon {
		t.Fatalf("expected %d records, got %d", prob.Horizon, len(sched))
	}
	if math.Abs(sched.TotalCost()-sol.TotalCost()) > costTolerance {
		t.Fatalf("schedule total %v disagrees with solve total %v", sched.TotalCost(), sol.TotalCost())
	}
	for _, r := range sched {
		if r.EndInventory < 0 || r.EndInventory > prob.MaxStorage {
			t.Errorf("period %d: ending inventory %d out of range", r.Period, r.EndInventory)
		}
		if r.StartInventory+r.Arriving+r.EmergencyQty < r.Demand {
			t.Errorf("period %d: demand not satisfied", r.Period)
		}
	}
}

// With lead time equal to the horizon no order can arrive in time, so the
// optimum never orders and pays emergencies throughout.
func TestPipelineAllOrdersArriveTooLate(t *testing.T) {
	prob := model.Problem{
		Horizon:    2,
		Demand:     []int{3, 3},
		MaxStorage: 6,
		LeadTime:   2,
	}
	sol := mustSolve(t, prob, testCosts, Options{})
	// Two emergencies of 3: 2 * (20 + 45).
	if sol.TotalCost() != 130 {
		t.Fatalf("expected 130, got %v", sol.TotalCost())
	}
	sched, err := sol.Schedule()
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	for _, r := range sched {
		if r.Order != 0 {
			t.Errorf("period %d: ordering into a dead pipeline, order %d", r.Period, r.Order)
		}
		if r.EmergencyQty != r.Demand {
			t.Errorf("period %d: emergency %d does not cover demand %d", r.Period, r.EmergencyQty, r.Demand)
		}
	}
}

func TestPipelineMatchesDenseWhenIdle(t *testing.T) {
	// A lead time over a zero-demand horizon must cost exactly zero both ways.
	prob := model.Problem{Horizon: 3, Demand: []int{0, 0, 0}, MaxStorage: 4, LeadTime: 1}
	sol := mustSolve(t, prob, testCosts, Options{})
	if sol.TotalCost() != 0 {
		t.Fatalf("expected zero cost, got %v", sol.TotalCost())
	}
}

func TestPipelineUsesReachableStatesOnly(t *testing.T) {
	prob := model.Problem{
		Horizon:    3,
		Demand:     []int{1, 2, 1},
		MaxStorage: 4,
		LeadTime:   1,
	}
	sol := mustSolve(t, prob, testCosts, Options{})
	full := (prob.Horizon + 1) * prob.States() * prob.States()
	if sol.States() >= full {
		t.Fatalf("memoized solve expanded %d states, full product is %d", sol.States(), full)
	}
	if sol.States() == 0 {
		t.Fatalf("expected cached states")
	}
}

func TestPipelineStateLimit(t *testing.T) {
	prob := model.Problem{
		Horizon:    6,
		Demand:     []int{2, 3, 1, 4, 2, 3},
		MaxStorage: 8,
		LeadTime:   2,
	}
	s, err := New(prob, testCosts, Options{MaxStates: 5})
	if err != nil {
		t.Fatalf("new solver: %v", err)
	}
	_, err = s.Solve(context.Background())
	var serr *SizeError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SizeError, got %v", err)
	}
}

func TestPipelineEncoderOverflow(t *testing.T) {
	prob := model.Problem{
		Horizon:          1,
		Demand:           []int{1},
		MaxStorage:       1 << 20,
		InitialInventory: 0,
		LeadTime:         3,
	}
	s, err := New(prob, testCosts, Options{})
	if err != nil {
		t.Fatalf("new solver: %v", err)
	}
	_, err = s.Solve(context.Background())
	var serr *SizeError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SizeError for unencodable state space, got %v", err)
	}
}

func TestPipelineHonorsCancellation(t *testing.T) {
	prob := model.Problem{
		Horizon:    4,
		Demand:     []int{2, 3, 2, 1},
		MaxStorage: 6,
		LeadTime:   1,
	}
	s, err := New(prob, testCosts, Options{})
	if err != nil {
		t.Fatalf("new solver: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Solve(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStateEncoderRoundTrip(t *testing.T) {
	enc, err := newStateEncoder(4, 7, 2, 1000)
	if err != nil {
		t.Fatalf("encoder: %v", err)
	}
	seen := map[uint64]bool{}
	for tt := 0; tt <= 4; tt++ {
		for inv := 0; inv < 7; inv++ {
			for p1 := 0; p1 < 7; p1++ {
				for p2 := 0; p2 < 7; p2++ {
					k := enc.key(tt, inv, []int{p1, p2})
					if seen[k] {
						t.Fatalf("key collision at (%d,%d,%d,%d)", tt, inv, p1, p2)
					}
					seen[k] = true
				}
			}
		}
	}
}

package solve

import (
	"context"
	"math"
)

type stateResult struct {
	cost  float64
	order int
}

// stateEncoder packs a (period, inventory, pipeline...) state into a uint64
// cache key. Each pipeline slot ranges over [0, MaxStorage], so the state is
// a mixed-radix number with base MaxStorage+1.
type stateEncoder struct {
	base     uint64
	pipeSpan uint64 // base^LeadTime
}

func newStateEncoder(horizon, states, leadTime, limit int) (*stateEncoder, error) {
	span := float64(horizon+1) * math.Pow(float64(states), float64(leadTime+1))
	if span > float64(uint64(1)<<62) {
		return nil, &SizeError{States: math.MaxInt, Limit: limit}
	}
	e := &stateEncoder{base: uint64(states), pipeSpan: 1}
	for i := 0; i < leadTime; i++ {
		e.pipeSpan *= e.base
	}
	return e, nil
}

func (e *stateEncoder) key(t, inv int, pipe []int) uint64 {
	k := (uint64(t)*e.base + uint64(inv)) * e.pipeSpan
	mult := uint64(1)
	for _, p := range pipe {
		k += uint64(p) * mult
		mult *= e.base
	}
	return k
}

// pipelineSolver carries the memoized recursion of the lead-time variant.
// The cache is owned by the solve that created it and dies with it, so a
// re-solve with new parameters can never observe stale entries.
type pipelineSolver struct {
	*Solver
	enc  *stateEncoder
	memo map[uint64]stateResult
}

// solvePipeline runs memoized recursion over the states reachable from the
// initial inventory and an all-zero pipeline. Enumerating the full Cartesian
// product of pipeline slots would cost S^(L+1) per period; reachability keeps
// the cache far smaller in practice.
func (s *Solver) solvePipeline(ctx context.Context) (*Solution, error) {
	enc, err := newStateEncoder(s.prob.Horizon, s.prob.States(), s.prob.LeadTime, s.opts.MaxStates)
	if err != nil {
		return nil, err
	}
	ps := &pipelineSolver{Solver: s, enc: enc, memo: make(map[uint64]stateResult)}

	pipe := make([]int, s.prob.LeadTime)
	total, err := ps.costToGo(ctx, 0, s.prob.InitialInventory, pipe)
	if err != nil {
		return nil, err
	}

	s.log.Debugf("memoized solve complete, %d states cached", len(ps.memo))
	if s.opts.Bus != nil {
		s.opts.Bus.Publish(RowDone{Period: 0, States: len(ps.memo)})
	}

	return &Solution{prob: s.prob, costs: s.costs, total: total, pipeline: ps}, nil
}

// costToGo returns the minimum cost from state (t, inv, pipe) through the end
// of the horizon. The order chosen now joins the far end of the pipeline and
// has no effect on this period's transition; the pipeline head is what
// arrives.
func (ps *pipelineSolver) costToGo(ctx context.Context, t, inv int, pipe []int) (float64, error) {
	if t == ps.prob.Horizon {
		return 0, nil
	}
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	key := ps.enc.key(t, inv, pipe)
	if r, ok := ps.memo[key]; ok {
		return r.cost, nil
	}
	if len(ps.memo) >= ps.opts.MaxStates {
		return 0, &SizeError{States: len(ps.memo) + 1, Limit: ps.opts.MaxStates}
	}

	demand := ps.prob.Demand[t]
	capLimit := ps.prob.MaxStorage
	arriving := pipe[0]

	// The transition is independent of the order placed now; price it once
	// with a zero order and add ordering cost per candidate below.
	baseCost, ending, _ := ps.costs.PeriodCost(0, arriving, inv, demand, capLimit)

	next := make([]int, len(pipe))
	copy(next, pipe[1:])

	best := math.Inf(1)
	bestQ := 0
	for q := 0; q <= capLimit; q++ {
		next[len(next)-1] = q
		future, err := ps.costToGo(ctx, t+1, ending, next)
		if err != nil {
			return 0, err
		}
		total := baseCost + ps.costs.OrderingCost(q) + future
		if total < best {
			best = total
			bestQ = q
		}
	}

	ps.memo[key] = stateResult{cost: best, order: bestQ}
	return best, nil
}

// decisionAt returns the cached optimal order for a state, recomputing
// through the recursion if the state was never expanded. Recomputation is
// wasteful but correct; it only happens when reconstruction visits a state
// the solve did not.
func (ps *pipelineSolver) decisionAt(t, inv int, pipe []int) (int, error) {
	key := ps.enc.key(t, inv, pipe)
	if r, ok := ps.memo[key]; ok {
		return r.order, nil
	}
	if _, err := ps.costToGo(context.Background(), t, inv, pipe); err != nil {
		return 0, err
	}
	return ps.memo[key].order, nil
}

package solve

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// solveDense runs backward induction over the full (period, inventory) grid.
// Row t depends only on the completed row t+1, so each row fans out across
// workers; every (t, I) cell is written by exactly one goroutine.
func (s *Solver) solveDense(ctx context.Context) (*Solution, error) {
	horizon := s.prob.Horizon
	states := s.prob.States()

	cells := (horizon + 1) * states
	if cells > s.opts.MaxTableCells {
		return nil, &SizeError{States: cells, Limit: s.opts.MaxTableCells}
	}

	// Terminal row V(T, ·) = 0 is the zero value of the table.
	value := mat.NewDense(horizon+1, states, nil)
	decision := make([][]int, horizon)

	for t := horizon - 1; t >= 0; t-- {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row := make([]int, states)
		decision[t] = row

		g, _ := errgroup.WithContext(ctx)
		chunk := (states + s.opts.Workers - 1) / s.opts.Workers
		for lo := 0; lo < states; lo += chunk {
			hi := lo + chunk
			if hi > states {
				hi = states
			}
			lo, hi := lo, hi
			g.Go(func() error {
				for inv := lo; inv < hi; inv++ {
					best, bestQ, feasible := s.bestDecision(t, inv, value)
					if !feasible {
						return fmt.Errorf("period %d inventory %d: %w", t, inv, ErrNoFeasibleDecision)
					}
					value.Set(t, inv, best)
					row[inv] = bestQ
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		s.log.Debugf("row %d complete, %d states", t, states)
		if s.opts.Bus != nil {
			s.opts.Bus.Publish(RowDone{Period: t, States: states})
		}
	}

	return &Solution{
		prob:     s.prob,
		costs:    s.costs,
		total:    value.At(0, s.prob.InitialInventory),
		value:    value,
		decision: decision,
	}, nil
}

// bestDecision enumerates the feasible orders at (t, inv) and returns the
// cheapest one. Ties break toward the smallest order, which keeps results
// deterministic and avoids pointless stock buildup. Orders whose raw ending
// inventory would overflow the warehouse are pruned.
func (s *Solver) bestDecision(t, inv int, value *mat.Dense) (float64, int, bool) {
	demand := s.prob.Demand[t]
	capLimit := s.prob.MaxStorage

	best := math.Inf(1)
	bestQ := 0
	feasible := false

	maxQ := s.opts.Bound.maxOrder(inv, demand, capLimit)
	for q := 0; q <= maxQ; q++ {
		if inv+q-demand > capLimit {
			continue
		}
		c, ending, _ := s.costs.PeriodCost(q, q, inv, demand, capLimit)
		total := c + value.At(t+1, ending)
		if total < best {
			best = total
			bestQ = q
			feasible = true
		}
	}
	return best, bestQ, feasible
}

package solve

import (
	"context"
	"runtime"

	"gonum.org/v1/gonum/mat"

	"github.com/kilianp07/replenish/core/cost"
	"github.com/kilianp07/replenish/core/logger"
	"github.com/kilianp07/replenish/core/model"
	"github.com/kilianp07/replenish/internal/eventbus"
)

const (
	// defaultMaxTableCells bounds the dense value table (roughly 512 MiB of
	// float64 cells).
	defaultMaxTableCells = 64 << 20
	// defaultMaxStates bounds the memoized state cache of the lead-time
	// variant.
	defaultMaxStates = 4 << 20
)

// RowDone is published on the solver bus after a backward-induction row
// completes. Period counts down from Horizon-1 to 0.
type RowDone struct {
	Period int
	States int
}

// Options tunes a Solver. The zero value selects the canonical bound policy,
// one worker per CPU, default sizing limits and no logging.
type Options struct {
	// Bound selects the feasible-order bound policy (dense variant only;
	// the pipeline variant always applies the receiving limit).
	Bound BoundPolicy
	// Workers is the parallel fan-out of the inner inventory loop.
	Workers int
	// MaxTableCells caps the dense value table size.
	MaxTableCells int
	// MaxStates caps the memoized state cache of the lead-time variant.
	MaxStates int
	// Logger receives per-row progress at debug level.
	Logger logger.Logger
	// Bus, when set, receives RowDone events during the solve.
	Bus *eventbus.Bus
}

// Solver owns one problem instance and its tuning. It is cheap to construct
// and safe to reuse; every Solve call builds fresh tables, so stale caches
// can never leak across parameter changes.
type Solver struct {
	prob  model.Problem
	costs cost.Model
	opts  Options
	log   logger.Logger
}

// New validates the problem and cost model and returns a Solver. Violations
// are rejected here, before any table is allocated.
func New(prob model.Problem, costs cost.Model, opts Options) (*Solver, error) {
	if err := prob.Validate(); err != nil {
		return nil, err
	}
	if err := costs.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.MaxTableCells <= 0 {
		opts.MaxTableCells = defaultMaxTableCells
	}
	if opts.MaxStates <= 0 {
		opts.MaxStates = defaultMaxStates
	}
	if opts.Logger == nil {
		opts.Logger = logger.NopLogger{}
	}
	return &Solver{prob: prob, costs: costs, opts: opts, log: opts.Logger}, nil
}

// Solve runs backward induction and returns the optimal cost-to-go tables.
// The context is honored between period rows (dense) and per state expansion
// (lead time), so a large solve can be abandoned cooperatively.
func (s *Solver) Solve(ctx context.Context) (*Solution, error) {
	if s.prob.LeadTime > 0 {
		return s.solvePipeline(ctx)
	}
	return s.solveDense(ctx)
}

// Solution holds the result of one solve: the minimum total cost and the
// tables needed to reconstruct the optimal schedule. It is immutable once
// returned.
type Solution struct {
	prob  model.Problem
	costs cost.Model
	total float64

	// Dense tables, populated when LeadTime == 0.
	value    *mat.Dense
	decision [][]int

	// Memoized recursion state, populated when LeadTime > 0.
	pipeline *pipelineSolver
}

// TotalCost returns the minimum achievable total cost from the initial state.
func (s *Solution) TotalCost() float64 { return s.total }

// States returns the number of states the solve evaluated.
func (s *Solution) States() int {
	if s.pipeline != nil {
		return len(s.pipeline.memo)
	}
	return (s.prob.Horizon + 1) * s.prob.States()
}

// ValueAt returns the cost-to-go of (period, inventory). It is only defined
// for the dense variant; the pipeline variant has no two-dimensional table.
func (s *Solution) ValueAt(period, inventory int) float64 {
	return s.value.At(period, inventory)
}

// DecisionAt returns the optimal order at (period, inventory) for the dense
// variant.
func (s *Solution) DecisionAt(period, inventory int) int {
	return s.decision[period][inventory]
}

package solve

import (
	"errors"
	"fmt"
)

// ErrNoFeasibleDecision signals that every order quantity at some state was
// pruned. Ordering nothing and paying the emergency premium is always
// feasible, so hitting this is an internal invariant violation, never a
// property of the inputs.
var ErrNoFeasibleDecision = errors.New("no feasible order quantity at state")

// SizeError reports an instance whose state space exceeds the configured
// limits. It is returned before or during table construction, never as a
// crash.
type SizeError struct {
	States int
	Limit  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("state space too large: %d states exceeds limit %d", e.States, e.Limit)
}

// ConsistencyError reports a forward-reconstructed total cost that disagrees
// with the cost-to-go of the initial state beyond tolerance. It indicates an
// implementation bug and is surfaced rather than swallowed.
type ConsistencyError struct {
	Reconstructed float64
	Expected      float64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("reconstructed total cost %v disagrees with optimal cost-to-go %v", e.Reconstructed, e.Expected)
}

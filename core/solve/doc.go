// Package solve computes cost-minimizing replenishment schedules for a single
// item over a finite horizon with known per-period demand.
//
// Without lead time the solver runs dense backward induction over the
// (period, inventory) grid. With lead time the state grows by one pipeline
// slot per lead period and the solver switches to memoized recursion over the
// states reachable from the initial inventory and an empty pipeline; the two
// strategies are intentionally different because the dense grid is wasteful
// once the pipeline dimensions appear.
//
// A greedy baseline over the same transition model is provided for comparison
// only. It is feasible by construction and makes no optimality claim.
package solve

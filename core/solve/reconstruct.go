package solve

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/kilianp07/replenish/core/model"
)

// costTolerance bounds the acceptable float drift between a reconstructed
// schedule total and the cost-to-go of the initial state.
const costTolerance = 1e-6

// Schedule replays the stored optimal decisions forward from the initial
// state and returns one record per period. The reconstructed total must match
// the solved cost-to-go; a mismatch is an internal bug and is returned as a
// ConsistencyError rather than a silently wrong schedule.
func (s *Solution) Schedule() (model.Schedule, error) {
	var (
		sched model.Schedule
		err   error
	)
	if s.pipeline != nil {
		sched, err = s.reconstructPipeline()
	} else {
		sched = s.reconstructDense()
	}
	if err != nil {
		return nil, err
	}
	if !scalar.EqualWithinAbs(sched.TotalCost(), s.total, costTolerance) {
		return nil, &ConsistencyError{Reconstructed: sched.TotalCost(), Expected: s.total}
	}
	return sched, nil
}

func (s *Solution) reconstructDense() model.Schedule {
	sched := make(model.Schedule, 0, s.prob.Horizon)
	inv := s.prob.InitialInventory
	for t := 0; t < s.prob.Horizon; t++ {
		q := s.decision[t][inv]
		demand := s.prob.Demand[t]
		c, ending, shortage := s.costs.PeriodCost(q, q, inv, demand, s.prob.MaxStorage)
		sched = append(sched, model.PeriodRecord{
			Period:         t,
			StartInventory: inv,
			Arriving:       q,
			Order:          q,
			Demand:         demand,
			EmergencyQty:   shortage,
			EndInventory:   ending,
			PeriodCost:     c,
		})
		inv = ending
	}
	return sched
}

func (s *Solution) reconstructPipeline() (model.Schedule, error) {
	sched := make(model.Schedule, 0, s.prob.Horizon)
	inv := s.prob.InitialInventory
	pipe := make([]int, s.prob.LeadTime)
	for t := 0; t < s.prob.Horizon; t++ {
		q, err := s.pipeline.decisionAt(t, inv, pipe)
		if err != nil {
			return nil, err
		}
		demand := s.prob.Demand[t]
		arriving := pipe[0]
		c, ending, shortage := s.costs.PeriodCost(q, arriving, inv, demand, s.prob.MaxStorage)
		sched = append(sched, model.PeriodRecord{
			Period:         t,
			StartInventory: inv,
			Arriving:       arriving,
			Order:          q,
			Demand:         demand,
			EmergencyQty:   shortage,
			EndInventory:   ending,
			PeriodCost:     c,
		})
		copy(pipe, pipe[1:])
		pipe[len(pipe)-1] = q
		inv = ending
	}
	return sched, nil
}

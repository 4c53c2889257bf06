package solve

import (
	"github.com/kilianp07/replenish/core/cost"
	"github.com/kilianp07/replenish/core/model"
)

// Greedy computes the baseline schedule: at each period, order just enough to
// meet demand, clamped by the receiving limit and the storage fit, and let an
// emergency purchase absorb whatever still cannot be covered. It runs the
// same transition model as the optimizer but makes no optimality claim; its
// only role is producing a second schedule to diff against the DP result.
//
// The baseline is defined without lead time; a problem carrying one is
// rejected.
func Greedy(prob model.Problem, costs cost.Model) (model.Schedule, float64, error) {
	if err := prob.Validate(); err != nil {
		return nil, 0, err
	}
	if err := costs.Validate(); err != nil {
		return nil, 0, err
	}
	if prob.LeadTime != 0 {
		return nil, 0, &model.ValidationError{
			Field:  "lead_time",
			Reason: "greedy baseline is defined without lead time",
		}
	}

	capLimit := prob.MaxStorage
	sched := make(model.Schedule, 0, prob.Horizon)
	inv := prob.InitialInventory
	for t := 0; t < prob.Horizon; t++ {
		demand := prob.Demand[t]

		q := demand - inv
		if q < 0 {
			q = 0
		}
		if q > capLimit {
			q = capLimit
		}
		if fit := capLimit + demand - inv; q > fit {
			q = fit
		}
		if q < 0 {
			q = 0
		}

		c, ending, shortage := costs.PeriodCost(q, q, inv, demand, capLimit)
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
	return sched, sched.TotalCost(), nil
}

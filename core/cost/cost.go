// Package cost defines the monetary model of a replenishment problem: normal
// ordering, emergency ordering and storage. All functions are pure and O(1).
package cost

import (
	"fmt"

	"github.com/kilianp07/replenish/core/model"
)

// Model holds the four cost rates of an instance. Emergency rates are usually
// higher than normal rates but the engine does not rely on that.
type Model struct {
	// OrderFixed is charged once per non-zero normal order.
	OrderFixed float64
	// OrderUnit is charged per ordered unit.
	OrderUnit float64
	// EmergencyFixed is charged once per non-zero emergency purchase.
	EmergencyFixed float64
	// EmergencyUnit is charged per emergency unit.
	EmergencyUnit float64
	// StorageUnit is charged per unit of ending inventory per period.
	StorageUnit float64
}

// Validate checks that all rates are non-negative.
func (m Model) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"order_fixed", m.OrderFixed},
		{"order_unit", m.OrderUnit},
		{"emergency_fixed", m.EmergencyFixed},
		{"emergency_unit", m.EmergencyUnit},
		{"storage_unit", m.StorageUnit},
	}
	for _, r := range rates {
		if r.value < 0 {
			return &model.ValidationError{
				Field:  r.name,
				Reason: fmt.Sprintf("must not be negative, got %v", r.value),
			}
		}
	}
	return nil
}

// OrderingCost returns the cost of a normal order of q units. Ordering nothing
// costs nothing; the fixed component applies only to non-zero orders.
func (m Model) OrderingCost(q int) float64 {
	if q == 0 {
		return 0
	}
	return m.OrderFixed + m.OrderUnit*float64(q)
}

// EmergencyCost returns the cost of an emergency purchase covering the given
// shortage. Zero shortage costs nothing.
func (m Model) EmergencyCost(shortage int) float64 {
	if shortage == 0 {
		return 0
	}
	return m.EmergencyFixed + m.EmergencyUnit*float64(shortage)
}

// StorageCost returns the holding cost for the ending inventory. Negative
// inventory never reaches this function; it is clamped to zero defensively.
func (m Model) StorageCost(ending int) float64 {
	if ending <= 0 {
		return 0
	}
	return m.StorageUnit * float64(ending)
}

// PeriodCost applies the single-period transition and prices it.
//
// arriving is the quantity received this period: the order itself without lead
// time, or the pipeline head with lead time. order is the quantity ordered
// this period, whose ordering cost is charged now regardless of when it
// arrives. A shortage is closed instantly by an emergency purchase and never
// carries into the next period; ending inventory is clamped to maxStorage.
func (m Model) PeriodCost(order, arriving, inventory, demand, maxStorage int) (total float64, ending, shortage int) {
	available := inventory + arriving
	if available >= demand {
		ending = available - demand
		if ending > maxStorage {
			ending = maxStorage
		}
	} else {
		shortage = demand - available
		ending = 0
	}
	total = m.OrderingCost(order) + m.EmergencyCost(shortage) + m.StorageCost(ending)
	return total, ending, shortage
}

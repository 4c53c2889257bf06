package model

// PeriodRecord is one executed period of a replenishment schedule.
type PeriodRecord struct {
	// Period is the zero-based period index.
	Period int
	// StartInventory is the stock on hand at the start of the period,
	// before any pipeline arrival.
	StartInventory int
	// Arriving is the quantity received this period. Without lead time it
	// equals Order; with lead time it is the pipeline head ordered earlier.
	Arriving int
	// Order is the quantity ordered this period. Its ordering cost is
	// charged this period even when it arrives later.
	Order int
	// Demand is the demand served this period.
	Demand int
	// EmergencyQty is the same-period emergency purchase closing any gap
	// between available stock and demand.
	EmergencyQty int
	// EndInventory is the stock carried into the next period.
	EndInventory int
	// PeriodCost is ordering + emergency + storage cost for this period.
	PeriodCost float64
}

// Schedule is the ordered sequence of per-period records for one full horizon.
type Schedule []PeriodRecord

// TotalCost sums the per-period costs.
func (s Schedule) TotalCost() float64 {
	var total float64
	for _, r := range s {
		total += r.PeriodCost
	}
	return total
}

// TotalOrdered sums the normal order quantities.
func (s Schedule) TotalOrdered() int {
	var total int
	for _, r := range s {
		total += r.Order
	}
	return total
}

// TotalEmergency sums the emergency quantities.
func (s Schedule) TotalEmergency() int {
	var total int
	for _, r := range s {
		total += r.EmergencyQty
	}
	return total
}

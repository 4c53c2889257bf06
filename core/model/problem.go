package model

import "fmt"

// Problem describes one deterministic finite-horizon replenishment instance.
// All fields are fixed at construction time; the solver never mutates them.
type Problem struct {
	// Horizon is the number of planning periods T.
	Horizon int
	// Demand holds the known demand per period; len(Demand) must equal Horizon.
	Demand []int
	// MaxStorage is the warehouse capacity. Inventory states live in [0, MaxStorage].
	MaxStorage int
	// InitialInventory is the stock on hand at the start of period 0.
	InitialInventory int
	// LeadTime is the number of periods between placing and receiving a
	// normal order. 0 means orders arrive within the ordering period.
	LeadTime int
}

// ValidationError reports a malformed input parameter. The offending field is
// named so callers can surface it without parsing the message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the problem against the engine preconditions. It returns a
// *ValidationError naming the first offending field, or nil.
func (p Problem) Validate() error {
	if p.Horizon <= 0 {
		return &ValidationError{Field: "horizon", Reason: "must be positive"}
	}
	if len(p.Demand) != p.Horizon {
		return &ValidationError{
			Field:  "demand",
			Reason: fmt.Sprintf("length %d does not match horizon %d", len(p.Demand), p.Horizon),
		}
	}
	for t, d := range p.Demand {
		if d < 0 {
			return &ValidationError{
				Field:  "demand",
				Reason: fmt.Sprintf("period %d is negative (%d)", t, d),
			}
		}
	}
	if p.MaxStorage <= 0 {
		return &ValidationError{Field: "max_storage", Reason: "must be positive"}
	}
	if p.InitialInventory < 0 || p.InitialInventory > p.MaxStorage {
		return &ValidationError{
			Field:  "initial_inventory",
			Reason: fmt.Sprintf("%d outside [0, %d]", p.InitialInventory, p.MaxStorage),
		}
	}
	if p.LeadTime < 0 {
		return &ValidationError{Field: "lead_time", Reason: "must not be negative"}
	}
	return nil
}

// States returns the size of the inventory state domain, MaxStorage+1.
func (p Problem) States() int { return p.MaxStorage + 1 }

package solve

import "fmt"

// BoundPolicy selects how the feasible order range is bounded at a given
// inventory level. The source material this engine reproduces shipped several
// undocumented variants that yield different optima on the same inputs, so
// the policy is an explicit, named parameter rather than a hard-coded choice.
type BoundPolicy int

const (
	// BoundTightest caps the order by both the receiving limit (one shipment
	// cannot exceed warehouse capacity) and demand plus remaining space.
	// This is the canonical policy and the default.
	BoundTightest BoundPolicy = iota
	// BoundStorageFit caps the order by demand plus remaining space only,
	// without a separate receiving limit. Consolidating the whole horizon
	// into one large shipment is possible under this policy.
	BoundStorageFit
	// BoundStorageSpace caps the order by the remaining space alone,
	// ignoring the demand about to be served.
	BoundStorageSpace
)

func (b BoundPolicy) String() string {
	switch b {
	case BoundTightest:
		return "tightest"
	case BoundStorageFit:
		return "storage-fit"
	case BoundStorageSpace:
		return "storage-space"
	default:
		return fmt.Sprintf("BoundPolicy(%d)", int(b))
	}
}

// ParseBoundPolicy maps a configuration string to a BoundPolicy.
func ParseBoundPolicy(s string) (BoundPolicy, error) {
	switch s {
	case "", "tightest":
		return BoundTightest, nil
	case "storage-fit":
		return BoundStorageFit, nil
	case "storage-space":
		return BoundStorageSpace, nil
	default:
		return 0, fmt.Errorf("unknown bound policy %q", s)
	}
}

// maxOrder returns the largest order quantity worth enumerating for the given
// inventory and demand, clamped to be non-negative. Quantities whose raw
// ending inventory would overflow the warehouse are pruned separately.
func (b BoundPolicy) maxOrder(inv, demand, maxStorage int) int {
	var m int
	switch b {
	case BoundStorageFit:
		m = demand + maxStorage - inv
	case BoundStorageSpace:
		m = maxStorage - inv
	default:
		m = demand + maxStorage - inv
		if m > maxStorage {
			m = maxStorage
		}
	}
	if m < 0 {
		m = 0
	}
	return m
}

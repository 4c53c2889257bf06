package model

import (
	"errors"
	"testing"
)

func TestProblemValidate(t *testing.T) {
	valid := Problem{
		Horizon:          3,
		Demand:           []int{2, 3, 2},
		MaxStorage:       6,
		InitialInventory: 0,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Problem)
		field  string
	}{
		{"zero horizon", func(p *Problem) { p.Horizon = 0 }, "horizon"},
		{"demand length", func(p *Problem) { p.Demand = []int{1} }, "demand"},
		{"negative demand", func(p *Problem) { p.Demand = []int{2, -1, 2} }, "demand"},
		{"zero capacity", func(p *Problem) { p.MaxStorage = 0 }, "max_storage"},
		{"negative inventory", func(p *Problem) { p.InitialInventory = -1 }, "initial_inventory"},
		{"overfull inventory", func(p *Problem) { p.InitialInventory = 7 }, "initial_inventory"},
		{"negative lead time", func(p *Problem) { p.LeadTime = -1 }, "lead_time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			p.Demand = append([]int(nil), valid.Demand...)
			tc.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestScheduleTotals(t *testing.T) {
	s := Schedule{
		{Period: 0, Order: 5, EmergencyQty: 0, PeriodCost: 35},
		{Period: 1, Order: 0, EmergencyQty: 2, PeriodCost: 50},
	}
	if got := s.TotalCost(); got != 85 {
		t.Errorf("total cost: expected 85, got %v", got)
	}
	if got := s.TotalOrdered(); got != 5 {
		t.Errorf("total ordered: expected 5, got %d", got)
	}
	if got := s.TotalEmergency(); got != 2 {
		t.Errorf("total emergency: expected 2, got %d", got)
	}
}

package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/replenish/core/cost"
	"github.com/kilianp07/replenish/core/model"
)

type CostsDef struct {
	OrderFixed     float64 `yaml:"order_fixed"`
	OrderUnit      float64 `yaml:"order_unit"`
	EmergencyFixed float64 `yaml:"emergency_fixed"`
	EmergencyUnit  float64 `yaml:"emergency_unit"`
	StorageUnit    float64 `yaml:"storage_unit"`
}

func (c CostsDef) ToModel() cost.Model {
	return cost.Model{
		OrderFixed:     c.OrderFixed,
		OrderUnit:      c.OrderUnit,
		EmergencyFixed: c.EmergencyFixed,
		EmergencyUnit:  c.EmergencyUnit,
		StorageUnit:    c.StorageUnit,
	}
}

type Expected struct {
	OptimalCost float64  `yaml:"optimal_cost"`
	GreedyCost  *float64 `yaml:"greedy_cost,omitempty"`
	Orders      []int    `yaml:"orders,omitempty"`
}

type Scenario struct {
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description,omitempty"`
	Demand           []int    `yaml:"demand"`
	MaxStorage       int      `yaml:"max_storage"`
	InitialInventory int      `yaml:"initial_inventory"`
	LeadTime         int      `yaml:"lead_time"`
	BoundPolicy      string   `yaml:"bound_policy,omitempty"`
	Costs            CostsDef `yaml:"costs"`
	Expected         Expected `yaml:"expected"`
}

func (s Scenario) ToProblem() model.Problem {
	return model.Problem{
		Horizon:          len(s.Demand),
		Demand:           s.Demand,
		MaxStorage:       s.MaxStorage,
		InitialInventory: s.InitialInventory,
		LeadTime:         s.LeadTime,
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/replenish/core/cost"
	"github.com/kilianp07/replenish/core/metrics"
	"github.com/kilianp07/replenish/core/model"
	"github.com/kilianp07/replenish/core/solve"
)

type Config struct {
	Problem ProblemConfig  `json:"problem"`
	Costs   CostsConfig    `json:"costs"`
	Solver  SolverConfig   `json:"solver"`
	Metrics metrics.Config `json:"metrics"`
	Logging LoggingConfig  `json:"logging"`
}

// ProblemConfig describes the replenishment instance to optimize. The horizon
// is implied by the demand sequence.
type ProblemConfig struct {
	Demand           []int `json:"demand"`
	MaxStorage       int   `json:"max_storage"`
	InitialInventory int   `json:"initial_inventory"`
	LeadTime         int   `json:"lead_time"`
}

// ToModel converts the section to a core problem.
func (c ProblemConfig) ToModel() model.Problem {
	return model.Problem{
		Horizon:          len(c.Demand),
		Demand:           c.Demand,
		MaxStorage:       c.MaxStorage,
		InitialInventory: c.InitialInventory,
		LeadTime:         c.LeadTime,
	}
}

// CostsConfig holds the four cost rates.
type CostsConfig struct {
	OrderFixed     float64 `json:"order_fixed"`
	OrderUnit      float64 `json:"order_unit"`
	EmergencyFixed float64 `json:"emergency_fixed"`
	EmergencyUnit  float64 `json:"emergency_unit"`
	StorageUnit    float64 `json:"storage_unit"`
}

// ToModel converts the section to a core cost model.
func (c CostsConfig) ToModel() cost.Model {
	return cost.Model{
		OrderFixed:     c.OrderFixed,
		OrderUnit:      c.OrderUnit,
		EmergencyFixed: c.EmergencyFixed,
		EmergencyUnit:  c.EmergencyUnit,
		StorageUnit:    c.StorageUnit,
	}
}

// SolverConfig tunes the optimization engine.
type SolverConfig struct {
	// BoundPolicy selects the feasible-order bound: tightest (default),
	// storage-fit or storage-space.
	BoundPolicy string `json:"bound_policy"`
	// Workers is the parallel fan-out of the dense inner loop; 0 means one
	// worker per CPU.
	Workers       int `json:"workers"`
	MaxTableCells int `json:"max_table_cells"`
	MaxStates     int `json:"max_states"`
	// DisableGreedy skips the baseline comparison run.
	DisableGreedy bool `json:"disable_greedy"`
}

// SetDefaults applies sane defaults.
func (c *SolverConfig) SetDefaults() {
	if c.BoundPolicy == "" {
		c.BoundPolicy = "tightest"
	}
}

// Validate checks the section.
func (c SolverConfig) Validate() error {
	if _, err := solve.ParseBoundPolicy(c.BoundPolicy); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}

// Bound returns the parsed bound policy. Validate must have succeeded.
func (c SolverConfig) Bound() solve.BoundPolicy {
	b, _ := solve.ParseBoundPolicy(c.BoundPolicy)
	return b
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("R_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "r_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Solver.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Solver.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

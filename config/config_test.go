package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/replenish/core/solve"
)

const sampleYAML = `problem:
  demand: [2, 3, 2]
  max_storage: 6
  initial_inventory: 0
costs:
  order_fixed: 10
  order_unit: 5
  emergency_fixed: 20
  emergency_unit: 15
  storage_unit: 1
solver:
  bound_policy: storage-fit
metrics:
  sinks:
    - type: nop
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)

	prob := cfg.Problem.ToModel()
	assert.Equal(t, 3, prob.Horizon)
	assert.Equal(t, []int{2, 3, 2}, prob.Demand)
	assert.Equal(t, 6, prob.MaxStorage)
	require.NoError(t, prob.Validate())

	costs := cfg.Costs.ToModel()
	assert.Equal(t, 10.0, costs.OrderFixed)
	assert.Equal(t, 15.0, costs.EmergencyUnit)

	assert.Equal(t, solve.BoundStorageFit, cfg.Solver.Bound())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Len(t, cfg.Metrics.Sinks, 1)
}

func TestLoadJSON(t *testing.T) {
	data := `{"problem":{"demand":[1,1],"max_storage":4},"costs":{"order_fixed":1},"logging":{"level":"debug"}}`
	cfg, err := Load(writeConfig(t, "config.json", data))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Problem.ToModel().Horizon)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "tightest", cfg.Solver.BoundPolicy)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load(writeConfig(t, "config.toml", "x = 1"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownBoundPolicy(t *testing.T) {
	data := sampleYAML + "\n"
	cfg := writeConfig(t, "bad.yaml", data)
	t.Setenv("R_SOLVER__BOUND_POLICY", "loosest")
	_, err := Load(cfg)
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("R_SOLVER__WORKERS", "2")
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Solver.Workers)
}

func TestLoggingValidate(t *testing.T) {
	c := LoggingConfig{Level: "verbose"}
	assert.Error(t, c.Validate())
	c.Level = "warn"
	assert.NoError(t, c.Validate())
}

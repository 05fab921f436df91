package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bespaarplan/rekenkern/internal/engine"
)

const testInputJSON = `{
  "energy_profile": {
    "current_usage": {"gas_m3": 1500, "electricity_kwh": 3500},
    "tariffs": {"gas": 1.45, "electricity": 0.40, "return": 0.10},
    "house_profile": {"build_year": 1990, "energy_label": "C", "assessed_value": 400000}
  },
  "products": [
    {
      "name": "Hybride warmtepomp 5kW",
      "category": "Heating",
      "quantity": 1,
      "total_price": 7000,
      "subsidy": {"code": "ISDE-WP", "amount_per_unit": 2100, "unit": "stuk"}
    }
  ]
}`

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestCalculateCommandStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(testInputJSON), 0o644))

	out := runCommand(t, "calculate", path)

	var metrics engine.ComprehensiveMetrics
	require.NoError(t, json.Unmarshal([]byte(out), &metrics))

	assert.NotEmpty(t, metrics.CalculationID)
	assert.Positive(t, metrics.Summary.AnnualSaving)
	assert.Equal(t, engine.LabelC, metrics.Label.Current)
}

func TestCalculateCommandOutDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proposal.json")
	require.NoError(t, os.WriteFile(path, []byte(testInputJSON), 0o644))
	outDir := filepath.Join(dir, "out")

	runCommand(t, "calculate", path, "--out-dir", outDir)

	data, err := os.ReadFile(filepath.Join(outDir, "proposal.metrics.json"))
	require.NoError(t, err)

	var metrics engine.ComprehensiveMetrics
	require.NoError(t, json.Unmarshal(data, &metrics))
	assert.InDelta(t, 7000, metrics.Financial.TotalInvestment, 0.001)
	assert.InDelta(t, 2100, metrics.Financial.TotalSubsidies, 0.001)
}

func TestCalculateCommandMissingInput(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"calculate", filepath.Join(t.TempDir(), "absent.json")})

	assert.Error(t, cmd.Execute())
}

func TestScenariosCommand(t *testing.T) {
	out := runCommand(t, "scenarios", "1000", "--years", "20")

	var scenarios []engine.PriceScenario
	require.NoError(t, json.Unmarshal([]byte(out), &scenarios))
	require.Len(t, scenarios, 3)

	assert.Equal(t, "conservative", scenarios[0].ID)
	assert.InDelta(t, 24297.37, scenarios[0].TotalSavings, 0.01)
}

func TestScenariosCommandRejectsGarbage(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"scenarios", "not-a-number"})

	assert.Error(t, cmd.Execute())
}

func TestFactorsFlag(t *testing.T) {
	dir := t.TempDir()
	factorsPath := filepath.Join(dir, "factors.yaml")
	require.NoError(t, os.WriteFile(factorsPath, []byte("gas_co2_per_m3: 2.0\n"), 0o644))
	inputPath := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(testInputJSON), 0o644))

	out := runCommand(t, "calculate", inputPath, "--factors", factorsPath)

	var metrics engine.ComprehensiveMetrics
	require.NoError(t, json.Unmarshal([]byte(out), &metrics))

	// Hybrid CO2 at the raised gas factor: 945*2.0 - 2242.215*0.4.
	assert.InDelta(t, 993, metrics.Energy.CO2ReductionKg, 0.001)
}

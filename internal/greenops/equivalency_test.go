package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	got := Calculate(2261)

	assert.False(t, got.IsEmpty)
	assert.InDelta(t, 2261, got.CO2ReductionKg, 0.001)
	assert.InDelta(t, 113, got.Trees, 0.001)
	assert.InDelta(t, 18842, got.CarKm, 0.001)
	assert.InDelta(t, 9, got.Flights, 0.001)
	assert.InDelta(t, 5.4, got.HouseholdMonths, 0.001)
	assert.InDelta(t, 45, got.IndependencePct, 0.001)
	assert.InDelta(t, 52, got.ClimateGoalPct, 0.001)
	assert.Equal(t, StatusConscious, got.ClimateStatus)
	assert.Equal(t, "Goed bezig! Elke stap telt in de strijd tegen klimaatverandering.", got.ClimateMessage)

	require.Len(t, got.Results, 4)
	assert.Equal(t, EquivalencyTrees, got.Results[0].Type)
	assert.Equal(t, "113", got.Results[0].FormattedValue)
	assert.Equal(t, "18.842", got.Results[1].FormattedValue)

	assert.Equal(t,
		"Vergelijkbaar met 113 bomen, 18.842 autokilometers of 9 retourvluchten per jaar",
		got.DisplayText)
}

func TestCalculateNonPositive(t *testing.T) {
	for _, kg := range []float64{0, -5} {
		got := Calculate(kg)

		assert.True(t, got.IsEmpty, "input %v", kg)
		assert.Zero(t, got.CO2ReductionKg)
		assert.Zero(t, got.Trees)
		assert.Zero(t, got.CarKm)
		assert.Empty(t, got.Results)
		assert.Empty(t, got.DisplayText)
	}
}

func TestCalculateMonotonic(t *testing.T) {
	small := Calculate(1000)
	large := Calculate(2000)

	assert.Greater(t, large.Trees, small.Trees)
	assert.Greater(t, large.CarKm, small.CarKm)
	assert.Greater(t, large.Flights, small.Flights)
	assert.Greater(t, large.HouseholdMonths, small.HouseholdMonths)
	assert.Greater(t, large.ClimateGoalPct, small.ClimateGoalPct)
}

func TestCalculateClimateBands(t *testing.T) {
	tests := []struct {
		name       string
		kg         float64
		wantStatus ClimateStatus
	}{
		{"well beyond the personal goal", 10000, StatusFrontrunner},
		{"more than half of the goal", 2500, StatusConscious},
		{"modest contribution", 1000, StatusGoodStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.kg)
			assert.Equal(t, tt.wantStatus, got.ClimateStatus)
			assert.NotEmpty(t, got.ClimateMessage)
		})
	}
}

func TestCalculateIndependenceCapped(t *testing.T) {
	got := Calculate(10000)

	// 10000 kg is twice the household footprint; the percentage caps at 100.
	assert.InDelta(t, 100, got.IndependencePct, 0.001)
	assert.Greater(t, got.ClimateGoalPct, 100.0)
}

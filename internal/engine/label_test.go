package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelImprovementHybridOnly(t *testing.T) {
	e := New()
	usage := CurrentUsage{GasM3: 1500, ElectricityKWh: 3500}
	mix := summarizeMix([]ProductKind{KindHybridHeatPump})
	impact := EnergyImpact{GasSavingsM3: 945, ElectricityDeltaKWh: -2242}

	got := e.labelImprovement(LabelC, impact, mix, usage, 1985, 7000)

	assert.Equal(t, LabelC, got.Current)
	assert.Equal(t, LabelB, got.New)
	assert.Equal(t, 1, got.ImprovementSteps)
	assert.Equal(t, "C → B", got.Transition)
	assert.InDelta(t, 19.3, got.ReductionPct, 0.001)
	assert.Equal(t, 35, got.Scores.Total)
	// Residual gas rules out anything beyond A.
	assert.Equal(t, LabelA, got.Factors.MaxAchievableLabel)
	assert.InDelta(t, 1.0, got.Factors.AgeModifier, 0.001)
	assert.True(t, got.Factors.HasHeatPump)
	assert.Empty(t, got.Warnings)
}

func TestLabelImprovementHybridNearFullReduction(t *testing.T) {
	e := New()
	usage := CurrentUsage{GasM3: 1500, ElectricityKWh: 3500}
	mix := summarizeMix([]ProductKind{
		KindHybridHeatPump,
		KindWallInsulation, KindRoofInsulation, KindFloorInsulation,
		KindSolarPanels,
	})
	impact := EnergyImpact{
		GasSavingsM3:        1300,
		ElectricityDeltaKWh: -2242,
		SolarProductionKWh:  3690,
	}

	got := e.labelImprovement(LabelC, impact, mix, usage, 1950, 24000)

	// Gas reduction above 80% lifts the hybrid ceiling from A to A+.
	assert.Equal(t, LabelAPlus, got.Factors.MaxAchievableLabel)
	assert.Equal(t, LabelAPlus, got.New)
	assert.Equal(t, 3, got.ImprovementSteps)
	assert.InDelta(t, 71.1, got.ReductionPct, 0.1)
	assert.Equal(t, 85, got.Scores.Total)
	assert.Len(t, got.Warnings, 2)
	assert.Contains(t, got.Warnings[0], "Large label improvement")
	assert.Contains(t, got.Warnings[1], "Hybrid systems")
}

func TestLabelImprovementForcedStep(t *testing.T) {
	e := New()
	usage := CurrentUsage{GasM3: 1500, ElectricityKWh: 3500}
	mix := summarizeMix([]ProductKind{KindWallInsulation})
	impact := EnergyImpact{GasSavingsM3: 300}

	t.Run("large investment forces one step", func(t *testing.T) {
		got := e.labelImprovement(LabelD, impact, mix, usage, 1950, 26000)

		assert.Equal(t, LabelC, got.New)
		assert.Equal(t, 1, got.ImprovementSteps)
		assert.InDelta(t, 13.1, got.ReductionPct, 0.1)
	})

	t.Run("modest investment stays put", func(t *testing.T) {
		got := e.labelImprovement(LabelD, impact, mix, usage, 1950, 5000)

		assert.Equal(t, LabelD, got.New)
		assert.Zero(t, got.ImprovementSteps)
	})
}

func TestLabelImprovementStepCaps(t *testing.T) {
	e := New()
	usage := CurrentUsage{GasM3: 1500, ElectricityKWh: 3500}

	// All-electric, full insulation, solar and glazing maxes the score;
	// only the per-label table caps the step count.
	mix := summarizeMix([]ProductKind{
		KindAllElectricHeatPump,
		KindWallInsulation, KindRoofInsulation, KindFloorInsulation,
		KindSolarPanels, KindTripleGlazing,
	})
	impact := EnergyImpact{
		GasSavingsM3:        1500,
		ElectricityDeltaKWh: -3714,
		SolarProductionKWh:  3690,
	}

	tests := []struct {
		current  Label
		maxSteps int
	}{
		{LabelG, 4},
		{LabelF, 4},
		{LabelE, 3},
		{LabelD, 4},
		{LabelC, 3},
		{LabelB, 2},
		{LabelA, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			got := e.labelImprovement(tt.current, impact, mix, usage, 1950, 30000)

			assert.LessOrEqual(t, got.ImprovementSteps, tt.maxSteps)
			currentIdx, _ := tt.current.Index()
			newIdx, ok := got.New.Index()
			assert.True(t, ok)
			assert.GreaterOrEqual(t, newIdx, currentIdx)
		})
	}
}

func TestLabelImprovementDefaultsAndEdges(t *testing.T) {
	e := New()

	t.Run("invalid current label defaults to D", func(t *testing.T) {
		usage := CurrentUsage{GasM3: 1500, ElectricityKWh: 3500}
		mix := summarizeMix([]ProductKind{KindWallInsulation})
		impact := EnergyImpact{GasSavingsM3: 300}

		got := e.labelImprovement(Label("X"), impact, mix, usage, 1950, 5000)

		assert.Equal(t, LabelD, got.Current)
	})

	t.Run("no gas usage yields no reduction", func(t *testing.T) {
		usage := CurrentUsage{ElectricityKWh: 3500}
		mix := summarizeMix([]ProductKind{KindSolarPanels})
		impact := EnergyImpact{SolarProductionKWh: 3690}

		got := e.labelImprovement(LabelC, impact, mix, usage, 1990, 6000)

		assert.Zero(t, got.ReductionPct)
		assert.Equal(t, LabelC, got.New)
		assert.Zero(t, got.ImprovementSteps)
	})
}

func TestBuildingAgeModifier(t *testing.T) {
	tests := []struct {
		year int
		want float64
	}{
		{1950, 1.1},
		{1960, 1.05},
		{1979, 1.05},
		{1990, 1.0},
		{2005, 0.9},
		{2010, 0.8},
		{2020, 0.8},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, buildingAgeModifier(tt.year), 0.001, "year %d", tt.year)
	}
}

func TestBaseStepsForScore(t *testing.T) {
	tests := []struct {
		total int
		want  float64
	}{
		{95, 3.5},
		{85, 3.0},
		{75, 2.5},
		{65, 2.0},
		{50, 1.5},
		{35, 1.0},
		{25, 0.5},
		{10, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, baseStepsForScore(tt.total), 0.001, "score %d", tt.total)
	}
}

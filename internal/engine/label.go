package engine

import (
	"fmt"
	"math"
)

// LabelScores is the weighted scoring breakdown behind a label transition.
type LabelScores struct {
	// EnergyImpact scores the achieved reduction percentage (0-40).
	EnergyImpact int `json:"energy_impact"`

	// BuildingTransformation scores the breadth of measures (0-30).
	BuildingTransformation int `json:"building_transformation"`

	// FutureReadiness scores electrification and generation (0-30).
	FutureReadiness int `json:"future_readiness"`

	Total int `json:"total"`
}

// LabelCalcFactors records the constraints applied to a transition.
type LabelCalcFactors struct {
	BuildYear          int     `json:"building_year"`
	AgeModifier        float64 `json:"age_modifier"`
	MaxAchievableLabel Label   `json:"max_achievable_label"`
	InsulationMeasures int     `json:"insulation_measures"`
	HasHeatPump        bool    `json:"has_heat_pump"`
	HasSolar           bool    `json:"has_solar"`
}

// LabelResult is the label-transition estimate with its full breakdown.
// Warnings are advisory, never fatal.
type LabelResult struct {
	Current          Label            `json:"current"`
	New              Label            `json:"new"`
	ImprovementSteps int              `json:"improvement_steps"`
	Transition       string           `json:"improvement"`
	ReductionPct     float64          `json:"energy_reduction_pct"`
	Scores           LabelScores      `json:"scores"`
	Factors          LabelCalcFactors `json:"factors"`
	Warnings         []string         `json:"warnings,omitempty"`
}

// labelImprovement estimates the label transition from the aggregated energy
// impact and the product mix.
//
// The score is a weighted sum of three components, mapped to a base step
// count, scaled by a building-age multiplier, then capped three ways: by a
// per-starting-label step table, by the reduction percentage (one step per
// 15%), and for hybrid-only systems by a label ceiling of A (A+ when the
// gas reduction reaches 80%) that overrides the score outright.
//
// Reference outcomes the banding was validated against:
//
//	C + hybrid pump + full insulation + solar -> A (2 steps)
//	D + all-electric + partial insulation -> B (2 steps)
//	E + hybrid pump + minimal insulation -> D (1 step)
//	F + insulation only -> E (1 step)
//	D + all-electric + full insulation + solar -> A+ (3 steps)
func (e *Engine) labelImprovement(
	current Label,
	impact EnergyImpact,
	mix productMix,
	usage CurrentUsage,
	buildYear int,
	totalInvestment float64,
) LabelResult {
	lf := e.factors.Labeling

	if !current.IsValid() {
		current = LabelD
	}
	currentIdx, _ := current.Index()

	reduction := e.reductionPercent(impact, usage.GasM3)
	scores := e.labelScores(reduction, impact, mix, usage.GasM3)

	baseSteps := baseStepsForScore(scores.Total)
	ageModifier := buildingAgeModifier(buildYear)
	adjusted := baseSteps * ageModifier

	maxAchievable := LabelAPlusPlusPlus4
	if mix.hasHybrid && !mix.hasAllElectric {
		// A hybrid system keeps burning gas, which rules out the
		// highest labels regardless of score.
		maxAchievable = LabelA
		if e.hybridReachesAPlus(impact, usage.GasM3) {
			maxAchievable = LabelAPlus
		}
	}

	maxSteps, ok := lf.MaxSteps[current]
	if !ok {
		maxSteps = lf.DefaultMaxSteps
	}

	steps := minInt(
		int(math.Round(adjusted)),
		maxSteps,
		int(reduction/lf.MinReductionPerStepPct),
	)

	// Significant investments with real reduction always move at least
	// one step.
	if totalInvestment > lf.ForcedStepInvestment && steps < 1 && reduction >= lf.ForcedStepMinReductionPct {
		steps = 1
	}
	if steps < 0 {
		steps = 0
	}

	maxIdx, _ := maxAchievable.Index()
	newIdx := minInt(currentIdx+steps, maxIdx, len(labelOrder)-1)
	newLabel := labelAt(newIdx)

	var warnings []string
	if steps >= 3 {
		warnings = append(warnings, "Large label improvement - verify with professional energy assessment")
	}
	if steps == 0 && reduction >= lf.MinReductionPerStepPct {
		warnings = append(warnings, "Significant energy reduction but no label improvement - current label may be incorrect")
	}
	if aIdx, _ := LabelA.Index(); mix.hasHybrid && newIdx > aIdx {
		warnings = append(warnings, "Hybrid systems typically cannot achieve labels beyond A")
	}

	result := LabelResult{
		Current:          current,
		New:              newLabel,
		ImprovementSteps: newIdx - currentIdx,
		Transition:       fmt.Sprintf("%s → %s", current, newLabel),
		ReductionPct:     round1(reduction),
		Scores:           scores,
		Factors: LabelCalcFactors{
			BuildYear:          buildYear,
			AgeModifier:        ageModifier,
			MaxAchievableLabel: maxAchievable,
			InsulationMeasures: len(mix.insulationTypes),
			HasHeatPump:        mix.hasHybrid || mix.hasAllElectric,
			HasSolar:           mix.hasSolar,
		},
		Warnings: warnings,
	}

	e.logger.Debug().
		Str("component", "engine").
		Str("operation", "label_improvement").
		Str("transition", result.Transition).
		Int("score", scores.Total).
		Float64("reduction_pct", result.ReductionPct).
		Msg("label transition estimated")

	return result
}

// reductionPercent is the larger of the primary-energy-weighted and
// CO2-weighted reduction percentages against the current baseline.
//
// Both metrics use the fixed BaselineElectricityKWh assumption (3500 kWh)
// instead of the customer's actual electricity usage. Known quirk of the
// upstream formula, preserved pending an explicit product decision.
func (e *Engine) reductionPercent(impact EnergyImpact, gas float64) float64 {
	f := e.factors
	lf := f.Labeling

	if gas <= 0 {
		return 0
	}

	elecAfter := lf.BaselineElectricityKWh +
		math.Abs(impact.ElectricityDeltaKWh) - impact.SolarProductionKWh

	currentPrimary := gas*f.GasEnergyKWhPerM3 +
		lf.BaselineElectricityKWh*lf.PrimaryElectricityFactor
	newPrimary := (gas-impact.GasSavingsM3)*f.GasEnergyKWhPerM3 +
		elecAfter*lf.PrimaryElectricityFactor
	primaryReduction := (currentPrimary - newPrimary) / currentPrimary * 100

	co2Before := gas*f.GasCO2PerM3 + lf.BaselineElectricityKWh*f.ElectricityCO2PerKWh
	co2After := (gas-impact.GasSavingsM3)*f.GasCO2PerM3 + elecAfter*f.ElectricityCO2PerKWh
	co2Reduction := (co2Before - co2After) / co2Before * 100

	return math.Max(primaryReduction, co2Reduction)
}

// labelScores computes the three weighted components.
func (e *Engine) labelScores(reduction float64, impact EnergyImpact, mix productMix, gas float64) LabelScores {
	var s LabelScores

	switch {
	case reduction >= 60:
		s.EnergyImpact = 40
	case reduction >= 45:
		s.EnergyImpact = 35
	case reduction >= 30:
		s.EnergyImpact = 30
	case reduction >= 20:
		s.EnergyImpact = 25
	case reduction >= 15:
		s.EnergyImpact = 20
	case reduction >= 10:
		s.EnergyImpact = 15
	case reduction >= 5:
		s.EnergyImpact = 10
	default:
		s.EnergyImpact = 5
	}

	transformation := 0
	switch len(mix.insulationTypes) {
	case 0:
	case 1:
		transformation += 5
	case 2:
		transformation += 10
	default:
		transformation += 15
	}
	switch {
	case mix.hasAllElectric:
		transformation += 10
	case mix.hasHybrid:
		transformation += 7
	case mix.hasBoiler:
		transformation += 3
	}
	if mix.hasGlazing {
		transformation += 5
	}
	s.BuildingTransformation = minInt(30, transformation)

	future := 0
	switch {
	case mix.hasAllElectric && gas > 0 && impact.GasSavingsM3 >= gas*0.95:
		future += 15
	case mix.hasHybrid:
		future += 8
	}
	if mix.hasSolar {
		switch {
		case impact.SolarProductionKWh >= 3000:
			future += 10
		case impact.SolarProductionKWh >= 1500:
			future += 7
		default:
			future += 5
		}
	}
	if reduction >= 50 && mix.hasSolar {
		future += 5
	}
	s.FutureReadiness = minInt(30, future)

	s.Total = s.EnergyImpact + s.BuildingTransformation + s.FutureReadiness
	return s
}

// hybridReachesAPlus reports whether a hybrid system saves enough gas
// (>= 80% of current usage) to justify the A+ ceiling instead of A.
func (e *Engine) hybridReachesAPlus(impact EnergyImpact, gas float64) bool {
	return gas > 0 &&
		impact.GasSavingsM3 >= gas*e.factors.Labeling.HybridCapReductionPct
}

// baseStepsForScore maps the total score onto the fixed step band table.
func baseStepsForScore(total int) float64 {
	switch {
	case total >= 90:
		return 3.5
	case total >= 80:
		return 3.0
	case total >= 70:
		return 2.5
	case total >= 60:
		return 2.0
	case total >= 45:
		return 1.5
	case total >= 30:
		return 1.0
	case total >= 20:
		return 0.5
	default:
		return 0
	}
}

// buildingAgeModifier scales the step count by construction era: older
// buildings gain more from retrofits, recent ones are already efficient.
func buildingAgeModifier(year int) float64 {
	switch {
	case year < 1960:
		return 1.1
	case year < 1980:
		return 1.05
	case year < 2000:
		return 1.0
	case year < 2010:
		return 0.9
	default:
		return 0.8
	}
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

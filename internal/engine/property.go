package engine

import "strings"

// fallbackMatrixPct is used when a label pair has no published figure.
// Recorded on the result as a fallback, not an error.
const fallbackMatrixPct = 3.0

// Technology premiums on top of the label-transition increase.
const (
	heatPumpPremiumPct   = 1.0
	solarPremiumPct      = 0.5
	insulationPremiumPct = 0.5
)

// PropertyValueImpact is the projected property value change from the label
// transition and the installed technology.
type PropertyValueImpact struct {
	CurrentValue float64 `json:"current_value"`
	CurrentLabel Label   `json:"current_energy_label"`
	NewLabel     Label   `json:"projected_energy_label"`

	// MatrixIncreasePct is the published label-pair percentage, or the
	// 3% fallback when the pair is absent from the matrix.
	MatrixIncreasePct float64 `json:"value_increase_percentage"`

	// MatrixFallback records that no published figure matched the pair.
	MatrixFallback bool `json:"value_increase_fallback"`

	// PremiumPct sums the technology premiums.
	PremiumPct float64 `json:"sustainability_premium_percentage"`

	TotalIncreasePct float64 `json:"total_value_increase_percentage"`
	ValueIncrease    float64 `json:"total_value_increase_amount"`
	ProjectedValue   float64 `json:"projected_property_value"`
}

// propertyValueImpact looks up the label transition in the value-increase
// matrix and applies the technology premiums to the assessed value.
func (e *Engine) propertyValueImpact(transition string, value float64, mix productMix) PropertyValueImpact {
	from, to := ParseTransition(transition)

	impact := PropertyValueImpact{
		CurrentValue: round2(value),
		CurrentLabel: from,
		NewLabel:     to,
	}

	pct, ok := e.lookupValueIncrease(from, to)
	if !ok {
		pct = fallbackMatrixPct
		impact.MatrixFallback = true
		e.logger.Debug().
			Str("component", "engine").
			Str("operation", "property_value").
			Str("transition", transition).
			Msg("no published figure for label pair, using fallback percentage")
	}
	impact.MatrixIncreasePct = round1(pct)

	if mix.hasHeatPump() {
		impact.PremiumPct += heatPumpPremiumPct
	}
	if mix.hasSolar {
		impact.PremiumPct += solarPremiumPct
	}
	if mix.insulationCount > 0 {
		impact.PremiumPct += insulationPremiumPct
	}

	impact.TotalIncreasePct = round1(impact.MatrixIncreasePct + impact.PremiumPct)
	impact.ValueIncrease = round2(value * impact.TotalIncreasePct / 100)
	impact.ProjectedValue = round2(value + impact.ValueIncrease)

	return impact
}

// lookupValueIncrease reads the matrix with the published-label collapse
// applied: figures only exist up to A+, so higher labels fold onto it.
func (e *Engine) lookupValueIncrease(from, to Label) (float64, bool) {
	row, ok := e.factors.ValueMatrix[collapseLabel(from)]
	if !ok {
		return 0, false
	}
	pct, ok := row[collapseLabel(to)]
	return pct, ok
}

// collapseLabel folds labels beyond A+ onto the published matrix keys.
func collapseLabel(l Label) Label {
	s := string(l)
	s = strings.ReplaceAll(s, "+++", "")
	s = strings.ReplaceAll(s, "++", "+")
	return Label(s)
}

// ParseTransition splits a "current → new" (or "current->new") label pair.
// Unparseable input falls back to the conservative D → C pair.
func ParseTransition(s string) (from, to Label) {
	var parts []string
	switch {
	case strings.Contains(s, "→"):
		parts = strings.SplitN(s, "→", 2)
	case strings.Contains(s, "->"):
		parts = strings.SplitN(s, "->", 2)
	default:
		return LabelD, LabelC
	}

	from = Label(strings.TrimSpace(parts[0]))
	to = Label(strings.TrimSpace(parts[1]))
	if !from.IsValid() || !to.IsValid() {
		return LabelD, LabelC
	}
	return from, to
}

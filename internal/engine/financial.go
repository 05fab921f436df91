package engine

import "math"

// PaybackNever is the sentinel payback value used when savings never repay
// the investment. The output schema stays complete instead of raising.
const PaybackNever = 999

// Projection horizon constants.
const (
	npvHorizonYears     = 20
	paybackHorizonYears = 30
	monthsPerYear       = 12
)

// productSubsidy computes one product's ISDE subsidy from its catalog rule.
//
// For area-based ("m2") insulation rules the multiple-measures incentive
// applies: with two or more insulation-category products in the proposal
// each uses the documented maximum per-unit rate, otherwise the minimum.
// For piece ("stuk") rules the per-unit amount is clamped to the documented
// total bounds.
func (e *Engine) productSubsidy(p Product, kind ProductKind, insulationCount int) float64 {
	if p.Quantity <= 0 {
		return 0
	}
	r := p.Subsidy
	if r.Code == "" && r.PerUnit == 0 && r.Min == 0 && r.Max == 0 {
		return 0
	}

	if r.Unit == "m2" {
		rate := r.PerUnit
		if kind.IsInsulation() {
			if insulationCount >= 2 {
				if r.Max > 0 {
					rate = r.Max
				}
			} else {
				rate = r.Min
			}
		}
		return p.Quantity * rate
	}

	// Piece subsidies: min/max bound the total amount.
	amount := p.Quantity * r.PerUnit
	if r.Max > 0 {
		amount = math.Min(amount, r.Max)
	}
	return math.Max(amount, r.Min)
}

// productInvestment returns the product's price, falling back to unit price
// times quantity when the catalog carries no line total.
func productInvestment(p Product) float64 {
	if p.Quantity <= 0 {
		return 0
	}
	if p.TotalPrice > 0 {
		return p.TotalPrice
	}
	return p.UnitPrice * p.Quantity
}

// financialImpact computes investment totals and the return projections.
//
// total_subsidies is always the sum of per-product computed subsidies; an
// externally supplied total is never copied (see applyEstimateOverride for
// the analogous energy rule).
func (e *Engine) financialImpact(totalInvestment, totalSubsidies, annualSaving float64) FinancialImpact {
	f := e.factors
	net := totalInvestment - totalSubsidies

	impact := FinancialImpact{
		TotalInvestment:         totalInvestment,
		TotalSubsidies:          totalSubsidies,
		NetInvestment:           net,
		PaybackYears:            PaybackNever,
		PaybackYearsInflation:   PaybackNever,
		EnergyPriceInflationPct: f.EnergyPriceInflation * 100,
	}

	if annualSaving > 0 {
		impact.PaybackYears = net / annualSaving

		cumulative := 0.0
		for year := 1; year <= paybackHorizonYears; year++ {
			cumulative += annualSaving * math.Pow(1+f.EnergyPriceInflation, float64(year-1))
			if cumulative >= net {
				impact.PaybackYearsInflation = float64(year)
				break
			}
		}
	}

	// 20-year NPV: each year's inflated saving discounted to present.
	npv := 0.0
	for year := 1; year <= npvHorizonYears; year++ {
		inflated := annualSaving * math.Pow(1+f.EnergyPriceInflation, float64(year))
		npv += inflated / math.Pow(1+f.DiscountRate, float64(year))
	}
	npv -= net
	impact.NPV20Years = npv

	if net > 0 {
		impact.ROI20Years = (npv + net) / net
	}

	return impact
}

// PriceScenario is one energy-price trajectory in a scenario projection.
type PriceScenario struct {
	ID             string  `json:"id"`
	Description    string  `json:"description"`
	AnnualIncrease float64 `json:"annual_increase"`
	TotalSavings   float64 `json:"total_savings"`
	AverageAnnual  float64 `json:"average_annual_savings"`
	Year10Savings  float64 `json:"year_10_savings"`
	Year20Savings  float64 `json:"year_20_savings"`
}

// PriceScenarios projects cumulative savings over the given horizon under
// conservative (2%), moderate (4%), and high (6%) annual energy price
// increases. The base saving is the year-one annual saving.
func (e *Engine) PriceScenarios(annualSaving float64, years int) []PriceScenario {
	if years <= 0 {
		years = npvHorizonYears
	}

	definitions := []struct {
		id          string
		increase    float64
		description string
	}{
		{"conservative", 0.02, "Conservatief (2% stijging/jaar)"},
		{"moderate", 0.04, "Gematigd (4% stijging/jaar)"},
		{"high", 0.06, "Hoog (6% stijging/jaar)"},
	}

	scenarios := make([]PriceScenario, 0, len(definitions))
	for _, def := range definitions {
		total := 0.0
		for year := 1; year <= years; year++ {
			total += annualSaving * math.Pow(1+def.increase, float64(year-1))
		}
		scenarios = append(scenarios, PriceScenario{
			ID:             def.id,
			Description:    def.description,
			AnnualIncrease: def.increase,
			TotalSavings:   round2(total),
			AverageAnnual:  round2(total / float64(years)),
			Year10Savings:  round2(annualSaving * math.Pow(1+def.increase, 9)),
			Year20Savings:  round2(annualSaving * math.Pow(1+def.increase, 19)),
		})
	}
	return scenarios
}

// round2 rounds to cents. Applied at output boundaries only; intermediate
// money stays unrounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/bespaarplan/rekenkern/internal/greenops"
)

// Engine is the retrofit savings calculation engine. It carries the injected
// factor tables and a logger; it holds no mutable state, so a single Engine
// can serve concurrent calculations.
type Engine struct {
	factors Factors
	logger  zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithFactors substitutes the factor tables. Tests use this to inject
// controlled fixtures.
func WithFactors(f Factors) Option {
	return func(e *Engine) { e.factors = f }
}

// WithLogger sets the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an Engine with the production factor set.
func New(opts ...Option) *Engine {
	e := &Engine{
		factors: DefaultFactors(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calculate runs the full metrics pipeline for one proposal: per-product
// savings, aggregation with net metering, financial projection, financing,
// label transition, property value, and CO2 equivalents.
//
// The calculation is pure: identical inputs produce identical numeric
// output. Only CalculationID and CalculatedAt vary between calls, and they
// never feed back into the math.
func (e *Engine) Calculate(input Input) (*ComprehensiveMetrics, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	profile := e.withProfileDefaults(input.Profile)

	e.logger.Debug().
		Str("component", "engine").
		Str("operation", "calculate").
		Int("product_count", len(input.Products)).
		Float64("gas_m3", profile.CurrentUsage.GasM3).
		Float64("electricity_kwh", profile.CurrentUsage.ElectricityKWh).
		Msg("starting comprehensive calculation")

	// Classify once; everything downstream dispatches on the closed set.
	kinds := make([]ProductKind, len(input.Products))
	for i, p := range input.Products {
		kinds[i] = Classify(p)
		if kinds[i] == KindUnknown && p.Name != "" {
			e.logger.Debug().
				Str("component", "engine").
				Str("product", p.Name).
				Msg("unrecognized product, contributes zero impact")
		}
	}
	mix := summarizeMix(kinds)

	perProduct := make([]ProductSavings, len(input.Products))
	for i, p := range input.Products {
		perProduct[i] = e.productSavings(p, kinds[i], profile)
	}

	baseline := e.baselineCosts(profile)
	impact := e.aggregate(profile, perProduct)
	impact, _ = e.applyEstimateOverride(impact, input.Estimate, profile.CurrentUsage, mix)

	// Investment and subsidy totals, always recomputed per product.
	var totalInvestment, totalSubsidies float64
	subsidies := make([]float64, len(input.Products))
	for i, p := range input.Products {
		subsidies[i] = e.productSubsidy(p, kinds[i], mix.insulationCount)
		totalInvestment += productInvestment(p)
		totalSubsidies += subsidies[i]
	}

	financial := e.financialImpact(totalInvestment, totalSubsidies, impact.AnnualSaving)
	products := e.productMetrics(input.Products, kinds, perProduct, subsidies, input.Loan)
	financing := e.financingMetrics(input.Loan, totalInvestment, totalSubsidies, impact.MonthlySaving)

	label := e.labelImprovement(
		profile.HouseProfile.EnergyLabel,
		impact,
		mix,
		profile.CurrentUsage,
		profile.HouseProfile.BuildYear,
		totalInvestment,
	)

	property := e.propertyValueImpact(label.Transition, profile.HouseProfile.AssessedValue, mix)
	equivalents := greenops.Calculate(impact.CO2ReductionKg)

	metrics := &ComprehensiveMetrics{
		Baseline:    roundBaselineCosts(baseline),
		Energy:      roundEnergyImpact(impact),
		Products:    products,
		Financial:   roundFinancialImpact(financial),
		Financing:   financing,
		Label:       label,
		Property:    property,
		Equivalents: equivalents,
		Summary: e.buildSummary(
			baseline, impact, financial, input.Loan,
		),
		CalculationID: ulid.Make().String(),
		CalculatedAt:  time.Now().UTC(),
	}

	e.logger.Info().
		Str("component", "engine").
		Str("operation", "calculate").
		Str("calculation_id", metrics.CalculationID).
		Float64("annual_savings", metrics.Summary.AnnualSaving).
		Str("label_transition", label.Transition).
		Msg("comprehensive calculation complete")

	return metrics, nil
}

// withProfileDefaults fills the documented defaults for optional fields.
func (e *Engine) withProfileDefaults(p EnergyProfile) EnergyProfile {
	if p.HouseProfile.BuildYear == 0 {
		p.HouseProfile.BuildYear = e.factors.DefaultBuildYear
	}
	if p.HouseProfile.AssessedValue <= 0 {
		p.HouseProfile.AssessedValue = e.factors.DefaultAssessedValue
	}
	if !p.HouseProfile.EnergyLabel.IsValid() {
		p.HouseProfile.EnergyLabel = LabelD
	}
	return p
}

// productMetrics builds the per-product output lines. Payback falls back to
// the loan term for financed products whose saving cannot carry the cost.
func (e *Engine) productMetrics(
	products []Product,
	kinds []ProductKind,
	savings []ProductSavings,
	subsidies []float64,
	loan *LoanTerms,
) []ProductMetrics {
	// Annual savings below this are treated as unable to repay on their
	// own; financed products then report the loan term instead.
	const minSelfPayback = 10.0

	out := make([]ProductMetrics, len(products))
	for i, p := range products {
		investment := productInvestment(p)
		netCost := investment - subsidies[i]
		s := savings[i]

		payback := float64(PaybackNever)
		if s.AnnualCostSaving > 0 {
			payback = netCost / s.AnnualCostSaving
		}
		if loan != nil && s.AnnualCostSaving <= minSelfPayback {
			payback = float64(loanTermYears(loan))
		}

		out[i] = ProductMetrics{
			Name:                p.Name,
			Category:            p.Category,
			Kind:                kinds[i].String(),
			Quantity:            p.Quantity,
			UnitPrice:           round2(p.UnitPrice),
			TotalInvestment:     round2(investment),
			SubsidyAmount:       round2(subsidies[i]),
			NetCost:             round2(netCost),
			AnnualSaving:        round2(s.AnnualCostSaving),
			MonthlySaving:       round2(s.AnnualCostSaving / 12),
			PaybackYears:        round1(payback),
			CO2ReductionKg:      math.Round(s.CO2Kg),
			GasReductionM3:      math.Round(s.GasM3),
			ElectricityDeltaKWh: math.Round(s.ElectricityKWh),
			SolarProductionKWh:  math.Round(s.SolarProductionKWh),
		}
	}
	return out
}

// buildSummary assembles the headline block. The CO2 percentage is always
// against the customer's own baseline emissions.
func (e *Engine) buildSummary(
	baseline BaselineCosts,
	impact EnergyImpact,
	financial FinancialImpact,
	loan *LoanTerms,
) Summary {
	f := e.factors

	var co2Pct float64
	if baseline.CO2Kg > 0 {
		co2Pct = math.Round(impact.CO2ReductionKg / baseline.CO2Kg * 100)
	}

	effectivePayback := financial.PaybackYearsInflation
	note := fmt.Sprintf("Berekend met %.0f%% jaarlijkse energieprijsstijging",
		f.EnergyPriceInflation*100)

	// Under Warmtefonds financing a proposal with negative or marginal
	// savings repays over the loan term, not never.
	if loan != nil && impact.AnnualSaving <= 50 {
		term := float64(loanTermYears(loan))
		if effectivePayback > term {
			effectivePayback = term
			if impact.AnnualSaving < 0 {
				note = "Met Warmtefonds financiering is de terugverdientijd gelijk aan de looptijd"
			} else {
				note = "Door lage besparingen is de effectieve terugverdientijd de looptijd van de lening"
			}
		}
	}

	return Summary{
		TotalInvestment:        round2(financial.TotalInvestment),
		TotalSubsidies:         round2(financial.TotalSubsidies),
		NetInvestment:          round2(financial.NetInvestment),
		AnnualSaving:           round2(impact.AnnualSaving),
		MonthlySaving:          round2(impact.MonthlySaving),
		PaybackYears:           round1(effectivePayback),
		PaybackNote:            note,
		ROI20YearsPct:          math.Round(financial.ROI20Years * 100),
		CO2ReductionKg:         math.Round(impact.CO2ReductionKg),
		CO2ReductionPct:        co2Pct,
		NetElectricityUsageKWh: math.Round(impact.NetElectricityUsageKWh),
		NetMeteringApplied:     true,
	}
}

// loanTermYears returns the term with the Warmtefonds default applied.
func loanTermYears(loan *LoanTerms) int {
	if loan.TermYears > 0 {
		return loan.TermYears
	}
	return 15
}

// roundBaselineCosts rounds the baseline block at the output boundary.
func roundBaselineCosts(b BaselineCosts) BaselineCosts {
	b.GasCost = round2(b.GasCost)
	b.ElectricityCost = round2(b.ElectricityCost)
	b.FeedInIncome = round2(b.FeedInIncome)
	b.NetworkCost = round2(b.NetworkCost)
	b.TotalAnnualCost = round2(b.TotalAnnualCost)
	b.CO2Kg = math.Round(b.CO2Kg)
	return b
}

// roundEnergyImpact rounds the aggregate block at the output boundary.
func roundEnergyImpact(i EnergyImpact) EnergyImpact {
	i.GasSavingsM3 = math.Round(i.GasSavingsM3)
	i.ElectricityDeltaKWh = math.Round(i.ElectricityDeltaKWh)
	i.ElectricityIncreaseKWh = math.Round(i.ElectricityIncreaseKWh)
	i.SolarProductionKWh = math.Round(i.SolarProductionKWh)
	i.CO2ReductionKg = math.Round(i.CO2ReductionKg)
	i.NetElectricityUsageKWh = math.Round(i.NetElectricityUsageKWh)
	i.NetElectricityCost = round2(i.NetElectricityCost)
	i.GasCostSaving = round2(i.GasCostSaving)
	i.ElectricityCostSaving = round2(i.ElectricityCostSaving)
	i.AnnualSaving = round2(i.AnnualSaving)
	i.MonthlySaving = round2(i.MonthlySaving)
	return i
}

// roundFinancialImpact rounds the financial block at the output boundary.
func roundFinancialImpact(f FinancialImpact) FinancialImpact {
	f.TotalInvestment = round2(f.TotalInvestment)
	f.TotalSubsidies = round2(f.TotalSubsidies)
	f.NetInvestment = round2(f.NetInvestment)
	f.PaybackYears = round1(f.PaybackYears)
	f.PaybackYearsInflation = round1(f.PaybackYearsInflation)
	f.NPV20Years = round2(f.NPV20Years)
	f.ROI20Years = round2(f.ROI20Years)
	return f
}

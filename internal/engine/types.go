// Package engine implements the retrofit savings calculation core.
//
// Given a resolved energy profile, a product list, and optional loan terms,
// it produces energy savings, cost savings, payback, ROI/NPV, CO2 reduction,
// an energy-label transition, and property-value impact. The engine is pure:
// no I/O, no shared state, and identical inputs yield identical numeric
// output. Timestamps and calculation IDs on the output are metadata only and
// never feed back into the math.
package engine

import (
	"time"

	"github.com/bespaarplan/rekenkern/internal/greenops"
)

// CurrentUsage holds the household's annual energy consumption.
type CurrentUsage struct {
	// GasM3 is annual natural gas consumption in cubic meters.
	GasM3 float64 `json:"gas_m3"`

	// ElectricityKWh is annual grid electricity consumption in kWh.
	ElectricityKWh float64 `json:"electricity_kwh"`

	// SolarReturnKWh is annual electricity fed back to the grid in kWh.
	SolarReturnKWh float64 `json:"solar_return_kwh"`
}

// Tariffs holds the customer's energy prices.
type Tariffs struct {
	// Gas is the gas price in EUR per m3.
	Gas float64 `json:"gas"`

	// Electricity is the electricity price in EUR per kWh.
	Electricity float64 `json:"electricity"`

	// Return is the feed-in tariff in EUR per kWh.
	Return float64 `json:"return"`

	// Network is the fixed monthly network cost in EUR.
	Network float64 `json:"network"`
}

// HouseProfile describes the dwelling being retrofitted.
type HouseProfile struct {
	Type        string  `json:"type"`
	BuildYear   int     `json:"build_year"`
	AreaM2      float64 `json:"area_m2"`
	Residents   int     `json:"residents"`
	EnergyLabel Label   `json:"energy_label"`

	// AssessedValue is the municipal (WOZ) property valuation in EUR.
	AssessedValue float64 `json:"assessed_value"`
}

// EnergyProfile is the resolved input document describing the household's
// current situation. It is treated as immutable by the engine.
type EnergyProfile struct {
	CurrentUsage CurrentUsage `json:"current_usage"`
	Tariffs      Tariffs      `json:"tariffs"`
	HouseProfile HouseProfile `json:"house_profile"`
}

// ProductCategory is the coarse catalog category of a proposed product.
type ProductCategory string

// Catalog categories as supplied by the product store.
const (
	CategoryInsulation ProductCategory = "Insulation"
	CategoryHeating    ProductCategory = "Heating"
	CategorySolar      ProductCategory = "Solar"
	CategoryGlazing    ProductCategory = "Glass"
	CategoryOther      ProductCategory = "Other"
)

// TechnicalSpecs carries the product-level technical parameters used by the
// savings models. Zero values mean "not specified".
type TechnicalSpecs struct {
	// COPHeating is the heating coefficient of performance.
	COPHeating float64 `json:"cop_heating,omitempty"`

	// SCOP is the seasonal COP, used when COPHeating is absent.
	SCOP float64 `json:"scop,omitempty"`

	// PowerWp is the rated panel power in watt-peak.
	PowerWp float64 `json:"power_wp,omitempty"`

	// CapacityKWp is the rated panel capacity in kilowatt-peak. Takes
	// precedence over PowerWp when both are present.
	CapacityKWp float64 `json:"capacity_kwp,omitempty"`
}

// SubsidyRule holds the ISDE subsidy parameters from the product catalog.
type SubsidyRule struct {
	Code string `json:"code,omitempty"`

	// PerUnit is the documented subsidy rate per unit.
	PerUnit float64 `json:"amount_per_unit,omitempty"`

	// Min and Max bound the subsidy. For "m2" rules they are per-unit
	// rates (minimum vs. multiple-measures maximum); for "stuk" rules
	// they bound the total amount. Max zero means unbounded.
	Min float64 `json:"amount_min,omitempty"`
	Max float64 `json:"amount_max,omitempty"`

	// Unit is the subsidy unit type: "m2" or "stuk" (piece).
	Unit string `json:"unit,omitempty"`
}

// Product is one proposed retrofit measure from the quote.
type Product struct {
	Name       string          `json:"name"`
	Category   ProductCategory `json:"category"`
	Quantity   float64         `json:"quantity"`
	UnitPrice  float64         `json:"unit_price"`
	TotalPrice float64         `json:"total_price"`
	Specs      TechnicalSpecs  `json:"technical_specs"`
	Subsidy    SubsidyRule     `json:"subsidy"`
}

// LoanTerms describes the optional Warmtefonds financing of the proposal.
type LoanTerms struct {
	// Amount is the requested loan amount in EUR.
	Amount float64 `json:"amount"`

	// InterestRate is the annual rate as a decimal (0.04 = 4%).
	InterestRate float64 `json:"interest_rate"`

	TermYears int `json:"term_years"`

	// MonthlyPayment, when non-zero, is a pre-supplied payment that is
	// used verbatim instead of recomputing the amortization.
	MonthlyPayment float64 `json:"monthly_payment,omitempty"`

	IncomeCategory string `json:"income_category,omitempty"`
}

// ExternalEstimate carries savings figures supplied by an upstream quote.
// Recomputed totals always supersede these values; they are only consulted
// by the override step (see applyEstimateOverride).
type ExternalEstimate struct {
	GasSavingsM3          float64 `json:"gas_savings_m3,omitempty"`
	ElectricitySavingsKWh float64 `json:"electricity_savings_kwh,omitempty"`
	CO2SavingsKg          float64 `json:"co2_savings_kg,omitempty"`
}

// Input is the single input document for a calculation.
type Input struct {
	Profile  EnergyProfile     `json:"energy_profile"`
	Products []Product         `json:"products"`
	Loan     *LoanTerms        `json:"loan_terms,omitempty"`
	Estimate *ExternalEstimate `json:"external_estimate,omitempty"`
}

// ProductSavings holds the computed annual deltas for one product.
// Gas and CO2 deltas are positive for reductions; ElectricityKWh is
// negative for a consumption increase.
type ProductSavings struct {
	GasM3              float64 `json:"gas_m3"`
	ElectricityKWh     float64 `json:"electricity_kwh"`
	SolarProductionKWh float64 `json:"solar_production_kwh"`
	CO2Kg              float64 `json:"co2_reduction_kg"`
	AnnualCostSaving   float64 `json:"annual_cost_saving"`
}

// BaselineCosts prices the household's current situation before any measure
// is applied: annual energy costs net of feed-in income, fixed network
// costs, and baseline emissions.
type BaselineCosts struct {
	GasCost         float64 `json:"gas_cost"`
	ElectricityCost float64 `json:"electricity_cost"`

	// FeedInIncome is the current solar feed-in revenue, subtracted from
	// the total.
	FeedInIncome float64 `json:"feed_in_income"`

	// NetworkCost is twelve months of fixed network charges.
	NetworkCost float64 `json:"network_cost"`

	TotalAnnualCost float64 `json:"total_annual_cost"`

	// CO2Kg is the baseline annual emission the reduction percentage is
	// expressed against.
	CO2Kg float64 `json:"co2_kg"`
}

// EnergyImpact is the aggregated annual impact across all products, with
// net metering applied to the electricity balance.
type EnergyImpact struct {
	GasSavingsM3           float64 `json:"gas_m3"`
	ElectricityDeltaKWh    float64 `json:"electricity_kwh"`
	ElectricityIncreaseKWh float64 `json:"electricity_increase_kwh"`
	SolarProductionKWh     float64 `json:"solar_production_kwh"`
	CO2ReductionKg         float64 `json:"co2_reduction_kg"`

	// NetElectricityUsageKWh is current consumption plus the increase
	// minus solar production. Negative means net production.
	NetElectricityUsageKWh float64 `json:"net_electricity_usage_kwh"`

	// NetElectricityCost prices net usage at the electricity tariff
	// regardless of sign; negative cost is feed-in income.
	NetElectricityCost float64 `json:"net_electricity_cost"`

	GasCostSaving         float64 `json:"gas_cost_reduction"`
	ElectricityCostSaving float64 `json:"electricity_cost_savings"`
	AnnualSaving          float64 `json:"annual_savings"`
	MonthlySaving         float64 `json:"monthly_savings"`
}

// FinancialImpact holds investment totals and return projections.
type FinancialImpact struct {
	TotalInvestment float64 `json:"total_investment"`
	TotalSubsidies  float64 `json:"total_subsidies"`
	NetInvestment   float64 `json:"net_investment"`

	// PaybackYears is net investment over annual saving, or the
	// PaybackNever sentinel when annual saving is not positive.
	PaybackYears float64 `json:"payback_years"`

	// PaybackYearsInflation compounds the saving at the energy price
	// inflation rate, capped at 30 years (sentinel when not reached).
	PaybackYearsInflation float64 `json:"payback_years_with_inflation"`

	NPV20Years float64 `json:"npv_20_years"`
	ROI20Years float64 `json:"roi_20_years"`

	// EnergyPriceInflationPct records the inflation assumption used.
	EnergyPriceInflationPct float64 `json:"energy_price_inflation_used"`
}

// FinancingMetrics is the amortization schedule summary for a Warmtefonds
// loan on the net investment.
type FinancingMetrics struct {
	// InitialLoanAmount is the gross loan for the full investment.
	InitialLoanAmount float64 `json:"initial_loan_amount"`

	// SubsidyLoanReduction is paid onto the principal immediately.
	SubsidyLoanReduction float64 `json:"subsidy_loan_reduction"`

	// EffectiveLoanAmount is the financed amount after subsidy paydown.
	EffectiveLoanAmount float64 `json:"effective_loan_amount"`

	InterestRatePct   float64 `json:"interest_rate"`
	TermYears         int     `json:"term_years"`
	MonthlyPayment    float64 `json:"monthly_payment"`
	TotalInterest     float64 `json:"total_interest"`
	TotalPayments     float64 `json:"total_payments"`
	MonthlyNetBenefit float64 `json:"monthly_net_benefit"`
	IncomeCategory    string  `json:"income_category,omitempty"`
	LoanType          string  `json:"loan_type"`
}

// ProductMetrics is the per-product line in the output document.
type ProductMetrics struct {
	Name     string          `json:"name"`
	Category ProductCategory `json:"category"`

	// Kind is the classified measure the savings model used.
	Kind string `json:"kind"`

	Quantity            float64 `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	TotalInvestment     float64 `json:"total_investment"`
	SubsidyAmount       float64 `json:"subsidy_amount"`
	NetCost             float64 `json:"net_cost"`
	AnnualSaving        float64 `json:"annual_savings"`
	MonthlySaving       float64 `json:"monthly_savings"`
	PaybackYears        float64 `json:"payback_period"`
	CO2ReductionKg      float64 `json:"co2_reduction"`
	GasReductionM3      float64 `json:"gas_reduction_m3"`
	ElectricityDeltaKWh float64 `json:"electricity_change_kwh"`
	SolarProductionKWh  float64 `json:"solar_production_kwh"`
}

// Summary is the headline block of the output document. The CO2 reduction
// percentage is always expressed against the customer's own current-usage
// baseline, never a population average.
type Summary struct {
	TotalInvestment        float64 `json:"total_investment"`
	TotalSubsidies         float64 `json:"total_subsidies"`
	NetInvestment          float64 `json:"net_investment"`
	AnnualSaving           float64 `json:"annual_savings"`
	MonthlySaving          float64 `json:"monthly_savings"`
	PaybackYears           float64 `json:"payback_period"`
	PaybackNote            string  `json:"payback_note,omitempty"`
	ROI20YearsPct          float64 `json:"roi_20_years"`
	CO2ReductionKg         float64 `json:"co2_reduction_annual"`
	CO2ReductionPct        float64 `json:"co2_reduction_percentage"`
	NetElectricityUsageKWh float64 `json:"net_electricity_usage_kwh"`
	NetMeteringApplied     bool    `json:"net_metering_applied"`
}

// ComprehensiveMetrics is the single output aggregate of a calculation.
type ComprehensiveMetrics struct {
	Baseline    BaselineCosts        `json:"current_situation"`
	Energy      EnergyImpact         `json:"basic_metrics"`
	Products    []ProductMetrics     `json:"products_with_metrics"`
	Financial   FinancialImpact      `json:"financial_impact"`
	Financing   *FinancingMetrics    `json:"financing_metrics,omitempty"`
	Label       LabelResult          `json:"energy_label"`
	Property    PropertyValueImpact  `json:"property_value_impact"`
	Equivalents greenops.Equivalents `json:"co2_equivalents"`
	Summary     Summary              `json:"summary"`

	// CalculationID and CalculatedAt are isolated metadata; they never
	// participate in any calculation.
	CalculationID string    `json:"calculation_id"`
	CalculatedAt  time.Time `json:"calculated_at"`
}

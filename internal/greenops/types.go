// Package greenops converts annual CO2 reductions into relatable
// real-world equivalents: trees absorbing for a year, car kilometers not
// driven, short-haul flights avoided, and months of an average Dutch
// household's emissions. It also expresses the reduction as an energy
// independence percentage and a contribution to the national climate goal.
package greenops

import "fmt"

// EquivalencyType represents a category of CO2 reduction equivalency.
type EquivalencyType int

const (
	// EquivalencyTrees converts CO2 to mature trees absorbing for a year.
	EquivalencyTrees EquivalencyType = iota

	// EquivalencyCarKm converts CO2 to petrol-car kilometers not driven.
	EquivalencyCarKm

	// EquivalencyFlights converts CO2 to short-haul return flights.
	EquivalencyFlights

	// EquivalencyHouseholdMonths converts CO2 to months of an average
	// Dutch household's emissions.
	EquivalencyHouseholdMonths
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyTrees:
		return "Trees"
	case EquivalencyCarKm:
		return "CarKm"
	case EquivalencyFlights:
		return "Flights"
	case EquivalencyHouseholdMonths:
		return "HouseholdMonths"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// ClimateStatus is the qualitative band for a climate-goal contribution.
type ClimateStatus string

// Climate-goal contribution bands, best first.
const (
	StatusFrontrunner ClimateStatus = "Klimaatkoploper"
	StatusConscious   ClimateStatus = "Klimaatbewust"
	StatusGoodStart   ClimateStatus = "Goede start"
)

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	// Type identifies the equivalency category.
	Type EquivalencyType `json:"type"`

	// Value is the raw calculated equivalency value.
	Value float64 `json:"value"`

	// FormattedValue is the display-ready string with separators.
	FormattedValue string `json:"formatted_value"`

	// Label is the descriptive Dutch phrase for the report.
	Label string `json:"label"`
}

// Equivalents contains all equivalency results for one CO2 reduction.
// Every numeric field is zero when the reduction is not positive.
type Equivalents struct {
	// CO2ReductionKg is the input reduction in kg per year.
	CO2ReductionKg float64 `json:"co2_reduction_kg"`

	Trees           float64 `json:"trees"`
	CarKm           float64 `json:"car_km"`
	Flights         float64 `json:"flights"`
	HouseholdMonths float64 `json:"months_household"`

	// IndependencePct relates the reduction to a full average
	// household's annual emissions, capped at 100.
	IndependencePct float64 `json:"energy_independence_percentage"`

	// ClimateGoalPct is the reduction as a share of one person's part
	// of the national reduction target.
	ClimateGoalPct float64 `json:"climate_goal_contribution_pct"`

	ClimateStatus  ClimateStatus `json:"climate_status"`
	ClimateMessage string        `json:"climate_message"`

	// Results contains the formatted equivalencies in priority order.
	Results []EquivalencyResult `json:"results,omitempty"`

	// DisplayText is the full prose line for CLI output.
	DisplayText string `json:"display_text,omitempty"`

	// IsEmpty is true when no equivalencies were calculated.
	IsEmpty bool `json:"is_empty"`
}

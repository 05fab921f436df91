package greenops

// Equivalency factors for the Dutch market.
//
// Each constant is the kg CO2 represented by one unit of the activity; the
// equivalency is the reduction divided by the factor:
//
//	equivalency = kg_CO2 / factor
const (
	// TreeAbsorptionFactor is kg CO2 absorbed by one mature tree per year.
	TreeAbsorptionFactor = 20.0

	// CarKmFactor is kg CO2 per kilometer for an average petrol car
	// (120 g/km).
	CarKmFactor = 0.12

	// FlightFactor is kg CO2 for a short-haul return flight.
	FlightFactor = 250.0

	// HouseholdMonthFactor is kg CO2 per month for an average Dutch
	// household (about 5000 kg/year).
	HouseholdMonthFactor = 416.0
)

// National reference figures behind the percentage metrics.
const (
	// HouseholdAnnualKg is the annual CO2 footprint of an average Dutch
	// household, the denominator of the independence percentage.
	HouseholdAnnualKg = 5000.0

	// PersonalAnnualKg is the annual CO2 footprint per Dutch resident.
	PersonalAnnualKg = 8800.0

	// ClimateGoalFraction is the national reduction target share
	// (49% by 2030 from 1990 levels).
	ClimateGoalFraction = 0.49
)

// Climate-goal contribution band thresholds, in percent.
const (
	frontrunnerThresholdPct = 100.0
	consciousThresholdPct   = 50.0
)

// LargeNumberThreshold is the value at or above which formatted
// equivalencies switch to abbreviated "~X,X miljoen" notation.
const LargeNumberThreshold = 1_000_000

// BillionThreshold is the threshold for billion-scale display.
const BillionThreshold = 1_000_000_000

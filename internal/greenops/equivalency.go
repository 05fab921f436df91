package greenops

import (
	"fmt"
	"math"
)

// Calculate converts an annual CO2 reduction in kilograms into the full set
// of equivalents.
//
// A reduction at or below zero yields a complete but all-zero Equivalents
// value with IsEmpty set; the output schema stays intact so callers never
// branch on missing fields. Values are monotonic in the input: a larger
// reduction yields strictly larger equivalents.
func Calculate(co2ReductionKg float64) Equivalents {
	if co2ReductionKg <= 0 {
		return Equivalents{IsEmpty: true}
	}

	trees := co2ReductionKg / TreeAbsorptionFactor
	carKm := co2ReductionKg / CarKmFactor
	flights := co2ReductionKg / FlightFactor
	months := co2ReductionKg / HouseholdMonthFactor

	independence := math.Min(100, co2ReductionKg/HouseholdAnnualKg*100)
	goalPct := co2ReductionKg / (PersonalAnnualKg * ClimateGoalFraction) * 100

	out := Equivalents{
		CO2ReductionKg:  math.Round(co2ReductionKg),
		Trees:           math.Round(trees),
		CarKm:           math.Round(carKm),
		Flights:         math.Round(flights),
		HouseholdMonths: math.Round(months*10) / 10,
		IndependencePct: math.Round(independence),
		ClimateGoalPct:  math.Round(goalPct),
		ClimateStatus:   climateStatus(goalPct),
		ClimateMessage:  climateMessage(goalPct),
	}

	out.Results = []EquivalencyResult{
		{
			Type:           EquivalencyTrees,
			Value:          trees,
			FormattedValue: formatEquivalencyValue(trees),
			Label:          "volwassen bomen die een jaar lang CO₂ opnemen",
		},
		{
			Type:           EquivalencyCarKm,
			Value:          carKm,
			FormattedValue: formatEquivalencyValue(carKm),
			Label:          "kilometer niet rijden met een benzineauto",
		},
		{
			Type:           EquivalencyFlights,
			Value:          flights,
			FormattedValue: formatEquivalencyValue(flights),
			Label:          "retourvluchten vermijden",
		},
		{
			Type:           EquivalencyHouseholdMonths,
			Value:          months,
			FormattedValue: FormatFloat(months, 1),
			Label:          "maanden gemiddeld Nederlands huishouden",
		},
	}

	out.DisplayText = fmt.Sprintf(
		"Vergelijkbaar met %s bomen, %s autokilometers of %s retourvluchten per jaar",
		out.Results[0].FormattedValue,
		out.Results[1].FormattedValue,
		out.Results[2].FormattedValue,
	)

	return out
}

// climateStatus maps a climate-goal contribution percentage to its band.
func climateStatus(goalPct float64) ClimateStatus {
	switch {
	case goalPct > frontrunnerThresholdPct:
		return StatusFrontrunner
	case goalPct > consciousThresholdPct:
		return StatusConscious
	default:
		return StatusGoodStart
	}
}

// climateMessage returns the report message for a contribution level.
func climateMessage(goalPct float64) string {
	switch {
	case goalPct >= 100:
		return "U doet meer dan uw deel voor het klimaat! Een inspiratie voor anderen."
	case goalPct >= 75:
		return "Uitstekend! U bent goed op weg om uw klimaatdoelen te halen."
	case goalPct >= 50:
		return "Goed bezig! Elke stap telt in de strijd tegen klimaatverandering."
	case goalPct >= 25:
		return "Een mooie start! Met deze maatregelen zet u belangrijke stappen."
	default:
		return "Een begin is gemaakt. Overweeg extra maatregelen voor meer impact."
	}
}

// formatEquivalencyValue formats an equivalency for display: abbreviated
// notation at the million scale, comma-separated integers below it.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}

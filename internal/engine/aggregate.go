package engine

import "math"

// aggregate sums per-product deltas and applies the net-metering settlement
// (salderingsregeling) to the electricity balance.
//
// Per-product energy figures are rounded to whole units before summation so
// the totals always match the per-product lines in the output document.
func (e *Engine) aggregate(profile EnergyProfile, perProduct []ProductSavings) EnergyImpact {
	var impact EnergyImpact

	for _, s := range perProduct {
		impact.GasSavingsM3 += math.Round(s.GasM3)
		impact.ElectricityDeltaKWh += math.Round(s.ElectricityKWh)
		impact.SolarProductionKWh += math.Round(s.SolarProductionKWh)
		impact.CO2ReductionKg += math.Round(s.CO2Kg)
	}
	if impact.ElectricityDeltaKWh < 0 {
		impact.ElectricityIncreaseKWh = -impact.ElectricityDeltaKWh
	}

	tariffs := profile.Tariffs
	currentElec := profile.CurrentUsage.ElectricityKWh

	// Net usage may be negative: net production, credited at the full
	// electricity rate under 1:1 net metering.
	impact.NetElectricityUsageKWh = currentElec +
		impact.ElectricityIncreaseKWh - impact.SolarProductionKWh
	impact.NetElectricityCost = impact.NetElectricityUsageKWh * tariffs.Electricity

	currentElecCost := currentElec * tariffs.Electricity
	impact.ElectricityCostSaving = currentElecCost - impact.NetElectricityCost
	impact.GasCostSaving = impact.GasSavingsM3 * tariffs.Gas

	impact.AnnualSaving = impact.GasCostSaving + impact.ElectricityCostSaving
	impact.MonthlySaving = impact.AnnualSaving / 12

	return impact
}

// baselineCosts prices the current situation: what the household pays per
// year before any measure, and the emission baseline behind the reduction
// percentage.
func (e *Engine) baselineCosts(profile EnergyProfile) BaselineCosts {
	u := profile.CurrentUsage
	t := profile.Tariffs

	b := BaselineCosts{
		GasCost:         u.GasM3 * t.Gas,
		ElectricityCost: u.ElectricityKWh * t.Electricity,
		FeedInIncome:    u.SolarReturnKWh * t.Return,
		NetworkCost:     t.Network * monthsPerYear,
		CO2Kg: u.GasM3*e.factors.GasCO2PerM3 +
			u.ElectricityKWh*e.factors.ElectricityCO2PerKWh,
	}
	b.TotalAnnualCost = b.GasCost + b.ElectricityCost - b.FeedInIncome + b.NetworkCost
	return b
}

// applyEstimateOverride is the single place external savings estimates are
// reconciled with the recomputed totals. Recomputed totals always win:
// upstream quotes are known to overstate gas reduction for hybrid systems.
//
// When the external estimate implies a full (>=100%) gas reduction and the
// proposal contains a hybrid heat pump, the assumed reduction in that
// estimate is capped at the hybrid reduction share of current usage before
// any further use of the figure.
//
// It returns the authoritative impact and the capped estimate for logging.
func (e *Engine) applyEstimateOverride(
	impact EnergyImpact,
	est *ExternalEstimate,
	usage CurrentUsage,
	mix productMix,
) (EnergyImpact, *ExternalEstimate) {
	if est == nil {
		return impact, nil
	}

	capped := *est
	if mix.hasHybrid && !mix.hasAllElectric && est.GasSavingsM3 >= usage.GasM3 && usage.GasM3 > 0 {
		capped.GasSavingsM3 = usage.GasM3 * e.factors.HeatPump.HybridReduction
		e.logger.Debug().
			Str("component", "engine").
			Str("operation", "estimate_override").
			Float64("estimate_gas_m3", est.GasSavingsM3).
			Float64("capped_gas_m3", capped.GasSavingsM3).
			Msg("hybrid system present, external gas estimate capped")
	}

	e.logger.Debug().
		Str("component", "engine").
		Str("operation", "estimate_override").
		Float64("external_gas_m3", capped.GasSavingsM3).
		Float64("computed_gas_m3", impact.GasSavingsM3).
		Msg("external estimate superseded by recomputed totals")

	return impact, &capped
}

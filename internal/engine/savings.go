package engine

// savings.go holds the per-product physics models. Each model produces the
// annual gas/electricity/CO2 deltas and the annual cost saving for one
// product; aggregation and net metering happen in aggregate.go.

// productSavings computes the annual impact of a single classified product.
//
// Sign conventions: GasM3 and CO2Kg are positive for reductions,
// ElectricityKWh is negative for a consumption increase, and solar output is
// reported as SolarProductionKWh (positive generation) rather than a
// negative consumption delta.
//
// A product with a non-positive quantity contributes exactly zero to every
// aggregate, as do gas-boiler replacements and unrecognized products.
func (e *Engine) productSavings(p Product, kind ProductKind, profile EnergyProfile) ProductSavings {
	if p.Quantity <= 0 {
		return ProductSavings{}
	}

	usage := profile.CurrentUsage
	tariffs := profile.Tariffs
	f := e.factors

	switch kind {
	case KindWallInsulation:
		return e.insulationSavings(usage, tariffs, f.Insulation.Wall)
	case KindRoofInsulation:
		return e.insulationSavings(usage, tariffs, f.Insulation.Roof)
	case KindFloorInsulation:
		return e.insulationSavings(usage, tariffs, f.Insulation.Floor)
	case KindGenericInsulation:
		return e.insulationSavings(usage, tariffs, f.Insulation.Unspecified)

	case KindHybridHeatPump:
		return e.hybridHeatPumpSavings(p, profile)
	case KindAllElectricHeatPump:
		return e.allElectricSavings(p, profile)
	case KindHeatPumpBoiler:
		return e.heatPumpBoilerSavings(usage, tariffs)

	case KindSolarPanels:
		return e.solarSavings(p, tariffs)

	case KindHRGlazing:
		return e.insulationSavings(usage, tariffs, f.Glazing.HRPlusPlus)
	case KindTripleGlazing:
		return e.insulationSavings(usage, tariffs, f.Glazing.Triple)

	case KindGasBoiler, KindUnknown:
		return ProductSavings{}
	default:
		return ProductSavings{}
	}
}

// insulationSavings removes a fixed fraction of current gas usage. The same
// model serves glazing, which differs only in the fraction applied.
func (e *Engine) insulationSavings(usage CurrentUsage, tariffs Tariffs, fraction float64) ProductSavings {
	gasSaved := usage.GasM3 * fraction
	return ProductSavings{
		GasM3:            gasSaved,
		CO2Kg:            gasSaved * e.factors.GasCO2PerM3,
		AnnualCostSaving: gasSaved * tariffs.Gas,
	}
}

// hybridHeatPumpSavings models a hybrid pump that replaces most of the
// space-heating gas but leaves hot water on the boiler. Electricity demand
// follows from the useful heat replaced and the pump's COP.
func (e *Engine) hybridHeatPumpSavings(p Product, profile EnergyProfile) ProductSavings {
	f := e.factors
	usage := profile.CurrentUsage
	tariffs := profile.Tariffs

	heatingGas := usage.GasM3 * f.HeatPump.SpaceHeatingShare
	gasSaved := heatingGas * f.HeatPump.HybridReduction

	cop := p.Specs.COPHeating
	if cop == 0 {
		cop = p.Specs.SCOP
	}
	if cop == 0 {
		if profile.HouseProfile.BuildYear > 2010 {
			cop = f.HeatPump.COPHybridOptimal
		} else {
			cop = f.HeatPump.COPHybridConservative
		}
	}

	// Useful heat replaced: m3 x energy content x boiler efficiency.
	heatEnergy := gasSaved * f.GasEnergyKWhPerM3 * f.BoilerEfficiency
	elecIncrease := heatEnergy / cop

	return ProductSavings{
		GasM3:          gasSaved,
		ElectricityKWh: -elecIncrease,
		CO2Kg:          gasSaved*f.GasCO2PerM3 - elecIncrease*f.ElectricityCO2PerKWh,
		AnnualCostSaving: gasSaved*tariffs.Gas -
			elecIncrease*tariffs.Electricity,
	}
}

// allElectricSavings models full gas removal: all heat demand moves to the
// pump, plus a fixed induction-cooking load. COP defaults are tiered by
// build year when the specs carry none.
func (e *Engine) allElectricSavings(p Product, profile EnergyProfile) ProductSavings {
	f := e.factors
	usage := profile.CurrentUsage
	tariffs := profile.Tariffs

	gasSaved := usage.GasM3

	cop := p.Specs.COPHeating
	if cop == 0 {
		cop = p.Specs.SCOP
	}
	if cop == 0 {
		year := profile.HouseProfile.BuildYear
		switch {
		case year > 2010:
			cop = f.HeatPump.COPAllElectricNew
		case year > 2000:
			cop = f.HeatPump.COPAllElectricMedium
		default:
			cop = f.HeatPump.COPAllElectricOld
		}
	}

	totalHeat := gasSaved * f.GasEnergyKWhPerM3 * f.BoilerEfficiency
	elecIncrease := totalHeat/cop + f.CookingElectricityKWh

	return ProductSavings{
		GasM3:          gasSaved,
		ElectricityKWh: -elecIncrease,
		CO2Kg:          gasSaved*f.GasCO2PerM3 - elecIncrease*f.ElectricityCO2PerKWh,
		AnnualCostSaving: gasSaved*tariffs.Gas -
			elecIncrease*tariffs.Electricity,
	}
}

// heatPumpBoilerSavings models hot-water-only replacement at the water
// heating COP.
func (e *Engine) heatPumpBoilerSavings(usage CurrentUsage, tariffs Tariffs) ProductSavings {
	f := e.factors

	hotWaterGas := usage.GasM3 * f.HeatPump.HotWaterShare
	gasSaved := hotWaterGas * f.HeatPump.BoilerReduction

	heatEnergy := gasSaved * f.GasEnergyKWhPerM3 * f.BoilerEfficiency
	elecIncrease := heatEnergy / f.HeatPump.COPWaterBoiler

	return ProductSavings{
		GasM3:          gasSaved,
		ElectricityKWh: -elecIncrease,
		CO2Kg:          gasSaved*f.GasCO2PerM3 - elecIncrease*f.ElectricityCO2PerKWh,
		AnnualCostSaving: gasSaved*tariffs.Gas -
			elecIncrease*tariffs.Electricity,
	}
}

// solarSavings computes annual production from rated capacity and quantity.
// Production is valued at the feed-in tariff here; the net-metering
// settlement against consumption happens at aggregation.
func (e *Engine) solarSavings(p Product, tariffs Tariffs) ProductSavings {
	f := e.factors

	kwp := p.Specs.CapacityKWp
	if kwp == 0 && p.Specs.PowerWp > 0 {
		kwp = p.Specs.PowerWp / 1000.0
	}
	if kwp == 0 {
		kwp = f.DefaultPanelKWp
	}

	production := kwp * p.Quantity * f.SolarKWhPerKWpYear

	return ProductSavings{
		SolarProductionKWh: production,
		CO2Kg:              production * f.ElectricityCO2PerKWh,
		AnnualCostSaving:   production * tariffs.Return,
	}
}

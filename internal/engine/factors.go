package engine

// Factors bundles the physical and market constants the savings models rely
// on. The engine never reaches for package-level literals: a Factors value is
// injected at construction so tests and regional deployments can substitute
// controlled fixtures. Load-time YAML overrides live in internal/config.
type Factors struct {
	// GasCO2PerM3 is kg CO2 per m3 of natural gas (CBS official figure).
	GasCO2PerM3 float64 `yaml:"gas_co2_per_m3"`

	// ElectricityCO2PerKWh is kg CO2 per kWh (Dutch grid average).
	ElectricityCO2PerKWh float64 `yaml:"electricity_co2_per_kwh"`

	// GasEnergyKWhPerM3 is the energy content of natural gas (CBS).
	GasEnergyKWhPerM3 float64 `yaml:"gas_energy_kwh_per_m3"`

	// BoilerEfficiency is the real-world efficiency of gas boilers.
	BoilerEfficiency float64 `yaml:"boiler_efficiency"`

	// SolarKWhPerKWpYear is annual yield per kWp in the Netherlands.
	SolarKWhPerKWpYear float64 `yaml:"solar_kwh_per_kwp_year"`

	// DefaultPanelKWp is the assumed panel capacity when specs omit it.
	DefaultPanelKWp float64 `yaml:"default_panel_kwp"`

	// CookingElectricityKWh is the fixed induction-cooking load added for
	// all-electric conversions. Zero disables the addition.
	CookingElectricityKWh float64 `yaml:"cooking_electricity_kwh"`

	// EnergyPriceInflation is the assumed annual energy price increase.
	EnergyPriceInflation float64 `yaml:"energy_price_inflation"`

	// DiscountRate is the NPV discount rate.
	DiscountRate float64 `yaml:"discount_rate"`

	// DefaultAssessedValue is the fallback WOZ value (CBS 2024 average).
	DefaultAssessedValue float64 `yaml:"default_assessed_value"`

	// DefaultBuildYear is assumed when the house profile omits one.
	DefaultBuildYear int `yaml:"default_build_year"`

	Insulation InsulationFactors `yaml:"insulation"`
	HeatPump   HeatPumpFactors   `yaml:"heat_pump"`
	Glazing    GlazingFactors    `yaml:"glazing"`
	Labeling   LabelFactorTable  `yaml:"labeling"`

	// ValueMatrix maps label transitions to property value increase
	// percentages (Brainbay Q3 2024), keyed from-label then to-label.
	ValueMatrix map[Label]map[Label]float64 `yaml:"value_matrix"`
}

// InsulationFactors holds the gas-reduction fractions per insulation type.
type InsulationFactors struct {
	Wall        float64 `yaml:"wall"`
	Roof        float64 `yaml:"roof"`
	Floor       float64 `yaml:"floor"`
	Unspecified float64 `yaml:"unspecified"`
}

// HeatPumpFactors holds the heat pump model parameters.
type HeatPumpFactors struct {
	// SpaceHeatingShare is the fraction of gas used for space heating;
	// hybrid pumps only replace this share.
	SpaceHeatingShare float64 `yaml:"space_heating_share"`

	// HybridReduction is the fraction of space-heating gas a hybrid
	// pump removes.
	HybridReduction float64 `yaml:"hybrid_reduction"`

	// HotWaterShare is the fraction of gas used for hot water.
	HotWaterShare float64 `yaml:"hot_water_share"`

	// BoilerReduction is the fraction of hot-water gas a heat-pump
	// boiler removes (some backup remains).
	BoilerReduction float64 `yaml:"boiler_reduction"`

	// COP defaults by scenario, applied when specs carry no COP.
	COPHybridConservative float64 `yaml:"cop_hybrid_conservative"`
	COPHybridOptimal      float64 `yaml:"cop_hybrid_optimal"`
	COPAllElectricOld     float64 `yaml:"cop_all_electric_old"`
	COPAllElectricMedium  float64 `yaml:"cop_all_electric_medium"`
	COPAllElectricNew     float64 `yaml:"cop_all_electric_new"`
	COPWaterBoiler        float64 `yaml:"cop_water_boiler"`
}

// GlazingFactors holds the gas-reduction fractions per glazing type.
type GlazingFactors struct {
	HRPlusPlus float64 `yaml:"hr_plus_plus"`
	Triple     float64 `yaml:"triple"`
}

// LabelFactorTable holds the label-scoring constants.
type LabelFactorTable struct {
	// BaselineElectricityKWh is the fixed electricity assumption used in
	// the reduction metrics. The upstream formula uses 3500 kWh instead
	// of the input's actual usage; preserved pending a product decision.
	BaselineElectricityKWh float64 `yaml:"baseline_electricity_kwh"`

	// PrimaryElectricityFactor converts electricity to primary energy.
	PrimaryElectricityFactor float64 `yaml:"primary_electricity_factor"`

	// MinReductionPerStepPct is the reduction percentage required per
	// label step.
	MinReductionPerStepPct float64 `yaml:"min_reduction_per_step_pct"`

	// ForcedStepInvestment is the investment above which a proposal with
	// meaningful reduction is guaranteed at least one step.
	ForcedStepInvestment float64 `yaml:"forced_step_investment"`

	// ForcedStepMinReductionPct gates the forced step.
	ForcedStepMinReductionPct float64 `yaml:"forced_step_min_reduction_pct"`

	// HybridCapReductionPct is the gas-reduction share above which a
	// hybrid-only system may reach A+ instead of A.
	HybridCapReductionPct float64 `yaml:"hybrid_cap_reduction_pct"`

	// MaxSteps caps improvement steps per starting label.
	MaxSteps map[Label]int `yaml:"max_steps"`

	// DefaultMaxSteps applies to labels absent from MaxSteps.
	DefaultMaxSteps int `yaml:"default_max_steps"`
}

// DefaultFactors returns the production factor set for the Dutch market.
func DefaultFactors() Factors {
	return Factors{
		GasCO2PerM3:           1.78,
		ElectricityCO2PerKWh:  0.4,
		GasEnergyKWhPerM3:     9.77,
		BoilerEfficiency:      0.85,
		SolarKWhPerKWpYear:    900,
		DefaultPanelKWp:       0.41,
		CookingElectricityKWh: 600,
		EnergyPriceInflation:  0.04,
		DiscountRate:          0.03,
		DefaultAssessedValue:  450000,
		DefaultBuildYear:      1985,
		Insulation: InsulationFactors{
			Wall:        0.20,
			Roof:        0.25,
			Floor:       0.15,
			Unspecified: 0.10,
		},
		HeatPump: HeatPumpFactors{
			SpaceHeatingShare:     0.90,
			HybridReduction:       0.70,
			HotWaterShare:         0.10,
			BoilerReduction:       0.85,
			COPHybridConservative: 3.5,
			COPHybridOptimal:      4.0,
			COPAllElectricOld:     3.0,
			COPAllElectricMedium:  3.5,
			COPAllElectricNew:     4.0,
			COPWaterBoiler:        3.0,
		},
		Glazing: GlazingFactors{
			HRPlusPlus: 0.08,
			Triple:     0.12,
		},
		Labeling: LabelFactorTable{
			BaselineElectricityKWh:    3500,
			PrimaryElectricityFactor:  2.5,
			MinReductionPerStepPct:    15,
			ForcedStepInvestment:      25000,
			ForcedStepMinReductionPct: 10,
			HybridCapReductionPct:     0.80,
			MaxSteps: map[Label]int{
				LabelG: 4,
				LabelF: 4,
				LabelE: 3,
				LabelD: 4,
				LabelC: 3,
				LabelB: 2,
				LabelA: 2,
			},
			DefaultMaxSteps: 1,
		},
		ValueMatrix: defaultValueMatrix(),
	}
}

// defaultValueMatrix returns the Brainbay Q3 2024 label-pair value-increase
// percentages. Pairs marked with an asterisk in the source publication
// (jumps beyond four steps) carry the nearest published figure.
func defaultValueMatrix() map[Label]map[Label]float64 {
	return map[Label]map[Label]float64{
		LabelA: {LabelAPlus: 3.1},
		LabelB: {LabelAPlus: 5.8, LabelA: 2.6},
		LabelC: {LabelAPlus: 8.4, LabelA: 5.1, LabelB: 2.4},
		LabelD: {LabelAPlus: 11.0, LabelA: 11.0, LabelB: 4.9, LabelC: 2.5},
		LabelE: {LabelAPlus: 10.2, LabelA: 10.2, LabelB: 7.3, LabelC: 4.9, LabelD: 2.3},
		LabelF: {LabelAPlus: 9.9, LabelA: 9.9, LabelB: 9.9, LabelC: 7.3, LabelD: 4.7, LabelE: 2.3},
		LabelG: {LabelAPlus: 9.7, LabelA: 9.7, LabelB: 9.7, LabelC: 9.7, LabelD: 7.0, LabelE: 4.5, LabelF: 2.2},
	}
}

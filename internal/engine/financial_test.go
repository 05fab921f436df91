package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductSubsidyAreaRules(t *testing.T) {
	e := New()

	rule := SubsidyRule{Code: "ISDE-VL", Min: 7.50, Max: 10, Unit: "m2"}
	product := Product{Name: "Vloerisolatie", Category: CategoryInsulation, Quantity: 50, Subsidy: rule}

	t.Run("single insulation measure uses minimum rate", func(t *testing.T) {
		got := e.productSubsidy(product, KindFloorInsulation, 1)
		assert.InDelta(t, 375, got, 0.001)
	})

	t.Run("two or more insulation measures use maximum rate", func(t *testing.T) {
		got := e.productSubsidy(product, KindFloorInsulation, 2)
		assert.InDelta(t, 500, got, 0.001)
	})

	t.Run("non-insulation area rule uses the per-unit rate", func(t *testing.T) {
		glazing := Product{
			Name:     "HR++ beglazing",
			Category: CategoryGlazing,
			Quantity: 10,
			Subsidy:  SubsidyRule{Code: "ISDE-GL", PerUnit: 46, Unit: "m2"},
		}
		got := e.productSubsidy(glazing, KindHRGlazing, 2)
		assert.InDelta(t, 460, got, 0.001)
	})
}

func TestProductSubsidyPieceRules(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		rule SubsidyRule
		qty  float64
		want float64
	}{
		{
			name: "per-unit amount within bounds",
			rule: SubsidyRule{Code: "ISDE-WP", PerUnit: 2100, Unit: "stuk"},
			qty:  1,
			want: 2100,
		},
		{
			name: "total clamped to maximum",
			rule: SubsidyRule{Code: "ISDE-WP", PerUnit: 2100, Max: 3000, Unit: "stuk"},
			qty:  2,
			want: 3000,
		},
		{
			name: "total raised to minimum",
			rule: SubsidyRule{Code: "ISDE-WP", PerUnit: 400, Min: 600, Unit: "stuk"},
			qty:  1,
			want: 600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Name: "Warmtepomp", Category: CategoryHeating, Quantity: tt.qty, Subsidy: tt.rule}
			assert.InDelta(t, tt.want, e.productSubsidy(p, KindAllElectricHeatPump, 0), 0.001)
		})
	}
}

func TestProductSubsidyZeroCases(t *testing.T) {
	e := New()

	t.Run("no subsidy rule", func(t *testing.T) {
		p := Product{Name: "Zonnepanelen", Quantity: 10}
		assert.Zero(t, e.productSubsidy(p, KindSolarPanels, 0))
	})

	t.Run("zero quantity", func(t *testing.T) {
		p := Product{
			Name:    "Vloerisolatie",
			Subsidy: SubsidyRule{Code: "ISDE-VL", Min: 7.50, Max: 10, Unit: "m2"},
		}
		assert.Zero(t, e.productSubsidy(p, KindFloorInsulation, 2))
	})
}

func TestProductInvestment(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    float64
	}{
		{
			name:    "line total wins",
			product: Product{Quantity: 3, UnitPrice: 100, TotalPrice: 5000},
			want:    5000,
		},
		{
			name:    "unit price times quantity fallback",
			product: Product{Quantity: 3, UnitPrice: 100},
			want:    300,
		},
		{
			name:    "zero quantity costs nothing",
			product: Product{UnitPrice: 100, TotalPrice: 5000},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, productInvestment(tt.product), 0.001)
		})
	}
}

func TestFinancialImpact(t *testing.T) {
	e := New()

	impact := e.financialImpact(13000, 1183, 1000)

	assert.InDelta(t, 11817, impact.NetInvestment, 0.001)
	assert.InDelta(t, 11.817, impact.PaybackYears, 0.001)
	// Savings compound at 4%: the cumulative total crosses the net
	// investment in year 10.
	assert.InDelta(t, 10, impact.PaybackYearsInflation, 0.001)
	assert.InDelta(t, 4, impact.EnergyPriceInflationPct, 0.001)
	assert.Positive(t, impact.NPV20Years)
}

func TestFinancialImpactROI(t *testing.T) {
	e := New()

	impact := e.financialImpact(10000, 0, 1000)

	// 20 years of 1000/yr inflated at 4% and discounted at 3%.
	assert.InDelta(t, 12170, impact.NPV20Years, 5)
	assert.InDelta(t, 2.217, impact.ROI20Years, 0.002)
}

func TestFinancialImpactNoSavings(t *testing.T) {
	e := New()

	impact := e.financialImpact(10000, 0, 0)

	assert.InDelta(t, PaybackNever, impact.PaybackYears, 0.001)
	assert.InDelta(t, PaybackNever, impact.PaybackYearsInflation, 0.001)
	assert.InDelta(t, -10000, impact.NPV20Years, 0.001)
	assert.Zero(t, impact.ROI20Years)
}

func TestFinancialImpactSubsidyCoversInvestment(t *testing.T) {
	e := New()

	impact := e.financialImpact(5000, 6000, 500)

	assert.InDelta(t, -1000, impact.NetInvestment, 0.001)
	// Negative net investment repays immediately.
	assert.LessOrEqual(t, impact.PaybackYears, 0.0)
	assert.Zero(t, impact.ROI20Years)
}

func TestPriceScenarios(t *testing.T) {
	e := New()

	scenarios := e.PriceScenarios(1000, 20)
	require.Len(t, scenarios, 3)

	conservative, moderate, high := scenarios[0], scenarios[1], scenarios[2]

	assert.Equal(t, "conservative", conservative.ID)
	assert.Equal(t, "Conservatief (2% stijging/jaar)", conservative.Description)
	assert.InDelta(t, 24297.37, conservative.TotalSavings, 0.01)
	assert.InDelta(t, 1195.09, conservative.Year10Savings, 0.01)
	assert.InDelta(t, 1456.81, conservative.Year20Savings, 0.01)

	assert.Equal(t, "moderate", moderate.ID)
	assert.InDelta(t, 29778.08, moderate.TotalSavings, 0.01)
	assert.InDelta(t, 1488.90, moderate.AverageAnnual, 0.01)

	assert.Equal(t, "high", high.ID)
	assert.InDelta(t, 36785.59, high.TotalSavings, 0.01)
	assert.InDelta(t, 3025.61, high.Year20Savings, 0.01)

	// Steeper price growth always saves more.
	assert.Greater(t, moderate.TotalSavings, conservative.TotalSavings)
	assert.Greater(t, high.TotalSavings, moderate.TotalSavings)
}

func TestPriceScenariosDefaultHorizon(t *testing.T) {
	e := New()

	scenarios := e.PriceScenarios(1000, 0)
	require.Len(t, scenarios, 3)
	// Zero years falls back to the 20-year horizon.
	assert.InDelta(t, 24297.37, scenarios[0].TotalSavings, 0.01)
}

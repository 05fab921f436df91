package engine

import (
	"fmt"
	"strings"
)

// ProductKind is the closed set of retrofit measures the savings models
// understand. Classification happens once, up front, so the per-product
// dispatch is an exhaustive switch instead of repeated substring scanning.
type ProductKind int

const (
	// KindUnknown marks a product no model matched. Its contribution to
	// every aggregate is zero; this is recorded but never fatal.
	KindUnknown ProductKind = iota

	KindWallInsulation
	KindRoofInsulation
	KindFloorInsulation
	KindGenericInsulation

	// KindHybridHeatPump keeps the gas boiler for peaks and hot water.
	KindHybridHeatPump

	// KindAllElectricHeatPump replaces all gas usage.
	KindAllElectricHeatPump

	// KindHeatPumpBoiler replaces gas-fired hot water only.
	KindHeatPumpBoiler

	// KindGasBoiler is a like-for-like cv-ketel replacement: no savings.
	KindGasBoiler

	KindSolarPanels
	KindHRGlazing
	KindTripleGlazing
)

// String returns a human-readable representation of the ProductKind.
func (k ProductKind) String() string {
	switch k {
	case KindWallInsulation:
		return "WallInsulation"
	case KindRoofInsulation:
		return "RoofInsulation"
	case KindFloorInsulation:
		return "FloorInsulation"
	case KindGenericInsulation:
		return "GenericInsulation"
	case KindHybridHeatPump:
		return "HybridHeatPump"
	case KindAllElectricHeatPump:
		return "AllElectricHeatPump"
	case KindHeatPumpBoiler:
		return "HeatPumpBoiler"
	case KindGasBoiler:
		return "GasBoiler"
	case KindSolarPanels:
		return "SolarPanels"
	case KindHRGlazing:
		return "HRGlazing"
	case KindTripleGlazing:
		return "TripleGlazing"
	case KindUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("ProductKind(%d)", int(k))
	}
}

// IsInsulation reports whether k is one of the insulation kinds.
func (k ProductKind) IsInsulation() bool {
	switch k {
	case KindWallInsulation, KindRoofInsulation, KindFloorInsulation, KindGenericInsulation:
		return true
	default:
		return false
	}
}

// IsGlazing reports whether k is one of the glazing kinds.
func (k ProductKind) IsGlazing() bool {
	return k == KindHRGlazing || k == KindTripleGlazing
}

// Classify maps a catalog product onto the closed ProductKind set using its
// category and a case-insensitive scan of its name. Catalog names follow the
// Dutch product conventions (spouwmuurisolatie, hybride warmtepomp,
// zonnepanelen, HR++ beglazing, ...).
func Classify(p Product) ProductKind {
	name := strings.ToLower(p.Name)

	// Heating sub-types are name-driven; order matters because
	// "warmtepompboiler" also contains "warmtepomp".
	switch {
	case strings.Contains(name, "warmtepompboiler"),
		strings.Contains(name, "boiler") && strings.Contains(name, "warmtepomp"):
		return KindHeatPumpBoiler
	case strings.Contains(name, "hybride") && strings.Contains(name, "warmtepomp"):
		return KindHybridHeatPump
	case strings.Contains(name, "warmtepomp"),
		strings.Contains(name, "all-electric"),
		strings.Contains(name, "all electric"):
		return KindAllElectricHeatPump
	case strings.Contains(name, "cv") && strings.Contains(name, "ketel"):
		return KindGasBoiler
	}

	if p.Category == CategorySolar || strings.Contains(name, "zonnepanelen") || strings.Contains(name, "solar") {
		return KindSolarPanels
	}

	if p.Category == CategoryInsulation {
		switch {
		case strings.Contains(name, "spouwmuur"):
			return KindWallInsulation
		case strings.Contains(name, "dak"):
			return KindRoofInsulation
		case strings.Contains(name, "vloer"), strings.Contains(name, "bodem"):
			return KindFloorInsulation
		default:
			return KindGenericInsulation
		}
	}

	if p.Category == CategoryGlazing || strings.Contains(name, "beglazing") || strings.Contains(name, "glas") {
		// hr+++ contains hr++, so the triple check goes first.
		switch {
		case strings.Contains(name, "triple"), strings.Contains(name, "hr+++"):
			return KindTripleGlazing
		case strings.Contains(name, "hr++"):
			return KindHRGlazing
		}
	}

	return KindUnknown
}

// productMix summarizes which measure kinds a proposal contains. The label
// scorer and property estimator consume it instead of re-scanning names.
type productMix struct {
	hasHybrid      bool
	hasAllElectric bool
	hasBoiler      bool
	hasSolar       bool
	hasGlazing     bool

	// insulationTypes holds the distinct insulation kinds present,
	// excluding the unspecified fallback.
	insulationTypes map[ProductKind]bool

	// insulationCount counts insulation-category products for the ISDE
	// multiple-measures subsidy rule.
	insulationCount int
}

// summarizeMix classifies every product and folds the kinds into a mix.
func summarizeMix(kinds []ProductKind) productMix {
	mix := productMix{insulationTypes: make(map[ProductKind]bool)}
	for _, k := range kinds {
		switch k {
		case KindHybridHeatPump:
			mix.hasHybrid = true
		case KindAllElectricHeatPump:
			mix.hasAllElectric = true
		case KindHeatPumpBoiler:
			mix.hasBoiler = true
		case KindSolarPanels:
			mix.hasSolar = true
		case KindHRGlazing, KindTripleGlazing:
			mix.hasGlazing = true
		case KindWallInsulation, KindRoofInsulation, KindFloorInsulation:
			mix.insulationTypes[k] = true
			mix.insulationCount++
		case KindGenericInsulation:
			mix.insulationCount++
		}
	}
	return mix
}

// hasHeatPump reports whether any heat pump variant is present.
func (m productMix) hasHeatPump() bool {
	return m.hasHybrid || m.hasAllElectric || m.hasBoiler
}

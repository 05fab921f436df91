package engine

import "fmt"

// Validate checks the input document for the fields the calculation cannot
// proceed without. It fails fast with an error naming the first missing or
// invalid field; the caller decides whether to retry with corrected input.
//
// Optional fields (energy label, build year, assessed value) are not
// validated here; the orchestrator substitutes documented defaults.
func (in *Input) Validate() error {
	u := in.Profile.CurrentUsage
	if u.GasM3 == 0 && u.ElectricityKWh == 0 {
		return fmt.Errorf("%w: energy_profile.current_usage", ErrMissingField)
	}
	if u.GasM3 < 0 {
		return fmt.Errorf("%w: energy_profile.current_usage.gas_m3", ErrInvalidField)
	}
	if u.ElectricityKWh < 0 {
		return fmt.Errorf("%w: energy_profile.current_usage.electricity_kwh", ErrInvalidField)
	}
	if u.SolarReturnKWh < 0 {
		return fmt.Errorf("%w: energy_profile.current_usage.solar_return_kwh", ErrInvalidField)
	}

	t := in.Profile.Tariffs
	if t.Gas <= 0 {
		return fmt.Errorf("%w: energy_profile.tariffs.gas", ErrMissingField)
	}
	if t.Electricity <= 0 {
		return fmt.Errorf("%w: energy_profile.tariffs.electricity", ErrMissingField)
	}
	if t.Return < 0 || t.Network < 0 {
		return fmt.Errorf("%w: energy_profile.tariffs", ErrInvalidField)
	}

	for i, p := range in.Products {
		if p.Quantity < 0 {
			return fmt.Errorf("%w: products[%d].quantity", ErrInvalidField, i)
		}
		if p.TotalPrice < 0 || p.UnitPrice < 0 {
			return fmt.Errorf("%w: products[%d] price", ErrInvalidField, i)
		}
	}

	if l := in.Loan; l != nil {
		if l.TermYears < 0 {
			return fmt.Errorf("%w: loan_terms.term_years", ErrInvalidField)
		}
		if l.InterestRate < 0 {
			return fmt.Errorf("%w: loan_terms.interest_rate", ErrInvalidField)
		}
	}

	return nil
}

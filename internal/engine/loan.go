package engine

import "math"

// warmtefondsLoanType identifies the regional financing product the
// amortization below is specific to.
const warmtefondsLoanType = "Warmtefonds"

// financingMetrics builds the amortization summary for a financed proposal.
//
// The accounting is specific to the Warmtefonds scheme: the gross loan
// covers the full investment, the ISDE subsidy is assumed to pay down the
// principal immediately, and the amortization runs over the remaining
// effective amount (= net investment). This is NOT generic loan math; flag
// and revisit when retargeting a different financing product.
//
// A pre-supplied monthly payment in the terms is used verbatim instead of
// recomputing, since it reflects the lender's own assessment.
//
// Returns nil when terms are absent or nothing is left to finance.
func (e *Engine) financingMetrics(
	terms *LoanTerms,
	totalInvestment, totalSubsidies, monthlySaving float64,
) *FinancingMetrics {
	if terms == nil {
		return nil
	}
	effective := totalInvestment - totalSubsidies
	if effective <= 0 {
		return nil
	}

	termYears := terms.TermYears
	if termYears <= 0 {
		termYears = 15
	}
	payments := float64(termYears * monthsPerYear)

	var monthly float64
	switch {
	case terms.MonthlyPayment > 0:
		monthly = terms.MonthlyPayment
	case terms.InterestRate > 0:
		// Standard fixed-payment amortization on the effective amount.
		rate := terms.InterestRate / monthsPerYear
		growth := math.Pow(1+rate, payments)
		monthly = effective * (rate * growth) / (growth - 1)
	default:
		monthly = effective / payments
	}

	totalPayments := monthly * payments

	return &FinancingMetrics{
		InitialLoanAmount:    round2(totalInvestment),
		SubsidyLoanReduction: round2(totalSubsidies),
		EffectiveLoanAmount:  round2(effective),
		InterestRatePct:      round1(terms.InterestRate * 100),
		TermYears:            termYears,
		MonthlyPayment:       round2(monthly),
		TotalInterest:        round2(totalPayments - effective),
		TotalPayments:        round2(totalPayments),
		MonthlyNetBenefit:    round2(monthlySaving - monthly),
		IncomeCategory:       terms.IncomeCategory,
		LoanType:             warmtefondsLoanType,
	}
}

package calculation

import (
	"taxguide/internal/domain"

	"github.com/shopspring/decimal"
)

// Income normalization: every raw input is clamped at zero before use, so
// malformed negative values degrade to "field absent" instead of failing.

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)

	// Rent below this share of salary is assumed to be a monthly figure when
	// the caller did not state a period.
	monthlyRentHeuristic = decimal.NewFromFloat(0.15)
)

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}

func capAt(d, cap decimal.Decimal) decimal.Decimal {
	return decimal.Min(clampZero(d), cap)
}

// basicSalary resolves the basic-pay figure used for the HRA exemption.
// An override of 100 or less is a percentage of salary, larger overrides are
// absolute amounts; with no override, basic pay is BasicPayRate of salary.
func basicSalary(in domain.TaxInput, rules domain.RegimeRules) decimal.Decimal {
	salary := clampZero(in.Salary)
	override := clampZero(in.BasicSalaryOverride)
	if override.IsZero() {
		return salary.Mul(rules.BasicPayRate)
	}
	if override.LessThanOrEqual(hundred) {
		return salary.Mul(override).Div(hundred)
	}
	return override
}

// annualRent normalizes RentPaid to an annual figure. Explicit periods win;
// auto applies the magnitude heuristic against salary.
func annualRent(in domain.TaxInput) decimal.Decimal {
	rent := clampZero(in.RentPaid)
	switch in.RentPeriod {
	case domain.RentPeriodMonthly:
		return rent.Mul(twelve)
	case domain.RentPeriodAnnual:
		return rent
	}
	if rent.IsZero() {
		return rent
	}
	if rent.LessThan(clampZero(in.Salary).Mul(monthlyRentHeuristic)) {
		return rent.Mul(twelve)
	}
	return rent
}

// hraExemption is the lesser of rent paid in excess of 10% of basic pay and
// the HRA cap share of basic pay, floored at zero.
func hraExemption(rent, basic decimal.Decimal, rules domain.RegimeRules) decimal.Decimal {
	excess := rent.Sub(basic.Mul(decimal.NewFromFloat(0.10)))
	capped := decimal.Min(excess, basic.Mul(rules.HRACapRate))
	return clampZero(capped)
}

// oldRegimeDeductions aggregates every Old-regime deduction, each clamped to
// its statutory cap. The New regime permits none of these.
func oldRegimeDeductions(in domain.TaxInput, rules domain.RegimeRules, age int) decimal.Decimal {
	basic := basicSalary(in, rules)
	hra := hraExemption(annualRent(in), basic, rules)

	savingsCap := rules.Caps.SavingsInterest
	if age >= 60 {
		savingsCap = rules.Caps.SavingsInterestSenior
	}

	total := rules.Old.StandardDeduction.
		Add(hra).
		Add(capAt(in.Investment80C, rules.Caps.Section80C)).
		Add(clampZero(in.MedicalInsurance80D)).
		Add(capAt(in.HomeLoanInterest, rules.Caps.HomeLoan24B)).
		Add(capAt(in.NPSContribution, rules.Caps.NPS80CCD1B)).
		Add(clampZero(in.EducationLoanInterest)).
		Add(clampZero(in.Donations80G)).
		Add(capAt(in.SavingsInterest80TTA, savingsCap)).
		Add(clampZero(in.OtherDeductions))
	return total
}

package domain

import "github.com/shopspring/decimal"

// Regime identifies one of the two statutory income-tax computation tracks.
type Regime string

const (
	RegimeNew Regime = "NEW"
	RegimeOld Regime = "OLD"
)

// RentPeriod states the unit of TaxInput.RentPaid. Callers should pass an
// explicit period; RentPeriodAuto falls back to a magnitude heuristic (rent
// below 15% of salary is treated as a monthly figure).
type RentPeriod string

const (
	RentPeriodAuto    RentPeriod = "auto"
	RentPeriodMonthly RentPeriod = "monthly"
	RentPeriodAnnual  RentPeriod = "annual"
)

// Valid reports whether the period is one of the known values. The empty
// string is accepted and treated as auto.
func (p RentPeriod) Valid() bool {
	switch p {
	case "", RentPeriodAuto, RentPeriodMonthly, RentPeriodAnnual:
		return true
	}
	return false
}

// TaxInput is the request to the tax computation engine for one fiscal year.
// All amounts are annual rupees unless noted. Missing numeric fields default
// to zero; a zero Age is treated as 30 by the engine.
type TaxInput struct {
	Age            int             `yaml:"age" json:"age"`
	Salary         decimal.Decimal `yaml:"salary" json:"salary"`
	BusinessIncome decimal.Decimal `yaml:"business_income" json:"businessIncome"`

	// RentPaid is interpreted according to RentPeriod.
	RentPaid   decimal.Decimal `yaml:"rent_paid" json:"rentPaid"`
	RentPeriod RentPeriod      `yaml:"rent_period" json:"rentPeriod"`

	Investment80C       decimal.Decimal `yaml:"investment_80c" json:"investment80C"`
	MedicalInsurance80D decimal.Decimal `yaml:"medical_insurance_80d" json:"medicalInsurance80D"`

	// BasicSalaryOverride replaces the 50%-of-salary basic pay assumption used
	// for HRA exemption. Values of 100 or less are read as a percentage of
	// Salary; larger values as an absolute annual amount.
	BasicSalaryOverride decimal.Decimal `yaml:"basic_salary_override" json:"basicSalaryOverride"`

	HomeLoanInterest      decimal.Decimal `yaml:"home_loan_interest" json:"homeLoanInterest"`
	NPSContribution       decimal.Decimal `yaml:"nps_contribution" json:"npsContribution"`
	EducationLoanInterest decimal.Decimal `yaml:"education_loan_interest" json:"educationLoanInterest"`
	Donations80G          decimal.Decimal `yaml:"donations_80g" json:"donations80G"`
	SavingsInterest80TTA  decimal.Decimal `yaml:"savings_interest_80tta" json:"savingsInterest80TTA"`
	OtherDeductions       decimal.Decimal `yaml:"other_deductions" json:"otherDeductions"`
}

// TaxBreakdown is the per-regime result: slab tax, surcharge and cess on the
// net taxable income, with the grand total truncated to whole rupees.
type TaxBreakdown struct {
	Regime           Regime          `json:"regime"`
	NetTaxableIncome decimal.Decimal `json:"netTaxableIncome"`
	BaseTax          decimal.Decimal `json:"baseTax"`
	Surcharge        decimal.Decimal `json:"surcharge"`
	Cess             decimal.Decimal `json:"cess"`
	Total            decimal.Decimal `json:"total"`
}

// TaxComparisonResult compares the two regimes for a single TaxInput.
// Savings is the absolute total difference, always non-negative.
type TaxComparisonResult struct {
	NewRegime         TaxBreakdown    `json:"newRegime"`
	OldRegime         TaxBreakdown    `json:"oldRegime"`
	RecommendedRegime Regime          `json:"recommendedRegime"`
	Savings           decimal.Decimal `json:"savings"`
}

// TaxProfile is a named person plus their inputs, the unit of the YAML
// profile files consumed by the CLI.
type TaxProfile struct {
	Name  string   `yaml:"name" json:"name"`
	Notes string   `yaml:"notes,omitempty" json:"notes,omitempty"`
	Input TaxInput `yaml:"input" json:"input"`
}

package domain

import "github.com/shopspring/decimal"

// TaxSlab is one marginal band: income between Min and Max is taxed at Rate.
// Bands must be contiguous and sorted ascending. For the Old regime the Min
// of the first taxed band is replaced at computation time by the age-based
// exemption limit.
type TaxSlab struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// SurchargeTier applies Rate to the base tax when net taxable income exceeds
// Threshold. Tiers must be sorted ascending; the highest matching tier wins.
type SurchargeTier struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// NewRegimeRules holds the statutory parameters of the simplified track.
type NewRegimeRules struct {
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standardDeduction"`
	RebateLimit       decimal.Decimal `yaml:"rebate_limit" json:"rebateLimit"`
	Slabs             []TaxSlab       `yaml:"slabs" json:"slabs"`
	Surcharge         []SurchargeTier `yaml:"surcharge" json:"surcharge"`
}

// OldRegimeRules holds the statutory parameters of the traditional track.
type OldRegimeRules struct {
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standardDeduction"`
	RebateLimit       decimal.Decimal `yaml:"rebate_limit" json:"rebateLimit"`

	// Basic exemption limits by age bracket.
	ExemptionBase        decimal.Decimal `yaml:"exemption_base" json:"exemptionBase"`               // age < 60
	ExemptionSenior      decimal.Decimal `yaml:"exemption_senior" json:"exemptionSenior"`           // 60 <= age < 80
	ExemptionSuperSenior decimal.Decimal `yaml:"exemption_super_senior" json:"exemptionSuperSenior"` // age >= 80

	Slabs     []TaxSlab       `yaml:"slabs" json:"slabs"`
	Surcharge []SurchargeTier `yaml:"surcharge" json:"surcharge"`
}

// DeductionCaps bounds the Old-regime deduction categories.
type DeductionCaps struct {
	Section80C            decimal.Decimal `yaml:"section_80c" json:"section80C"`
	NPS80CCD1B            decimal.Decimal `yaml:"nps_80ccd1b" json:"nps80CCD1B"`
	HomeLoan24B           decimal.Decimal `yaml:"home_loan_24b" json:"homeLoan24B"`
	SavingsInterest       decimal.Decimal `yaml:"savings_interest" json:"savingsInterest"`             // 80TTA, age < 60
	SavingsInterestSenior decimal.Decimal `yaml:"savings_interest_senior" json:"savingsInterestSenior"` // 80TTB, age >= 60
}

// RegimeRules is the complete statutory parameter set for one fiscal year.
// The calculation package ships FY 2025-26 defaults; a rules YAML file can
// override any of it.
type RegimeRules struct {
	FiscalYear string         `yaml:"fiscal_year" json:"fiscalYear"`
	New        NewRegimeRules `yaml:"new_regime" json:"newRegime"`
	Old        OldRegimeRules `yaml:"old_regime" json:"oldRegime"`
	Caps       DeductionCaps  `yaml:"deduction_caps" json:"deductionCaps"`

	CessRate              decimal.Decimal `yaml:"cess_rate" json:"cessRate"`
	PresumptiveProfitRate decimal.Decimal `yaml:"presumptive_profit_rate" json:"presumptiveProfitRate"`

	// BasicPayRate is the assumed basic-pay share of gross salary when no
	// override is supplied; HRACapRate is the metro-city HRA exemption cap as
	// a share of basic pay.
	BasicPayRate decimal.Decimal `yaml:"basic_pay_rate" json:"basicPayRate"`
	HRACapRate   decimal.Decimal `yaml:"hra_cap_rate" json:"hraCapRate"`
}

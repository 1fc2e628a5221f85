package calculation

import (
	"taxguide/internal/domain"

	"github.com/shopspring/decimal"
)

// STATUTORY ASSUMPTIONS (FY 2025-26):
//
// 1. New Regime: 75,000 standard deduction, slab rates 5/10/15/20/25/30%
//    starting at 4L, full Section 87A rebate up to 12L net taxable income.
//
// 2. Old Regime: 50,000 standard deduction, basic exemption 2.5L/3L/5L by
//    age bracket, 5/20/30% bands, rebate up to 5L.
//
// 3. Surcharge: 10/15/25% above 50L/1Cr/2Cr in both regimes; the Old regime
//    adds 37% above 5Cr. The New regime surcharge is capped at 25% by statute.
//
// 4. Health & education cess: flat 4% on base tax plus surcharge.
//
// 5. Presumptive business profit (44ADA): flat 50% of gross receipts.
//
// 6. HRA: basic pay assumed 50% of salary unless overridden; exemption capped
//    at 50% of basic (metro). The 40% non-metro cap is not modelled unless
//    configured through a rules file.

// slabCeiling stands in for an unbounded top band.
var slabCeiling = decimal.NewFromInt(999_999_999_999)

// DefaultRegimeRules returns the built-in FY 2025-26 statutory parameters.
func DefaultRegimeRules() domain.RegimeRules {
	return domain.RegimeRules{
		FiscalYear: "2025-26",
		New: domain.NewRegimeRules{
			StandardDeduction: decimal.NewFromInt(75000),
			RebateLimit:       decimal.NewFromInt(1_200_000),
			Slabs: []domain.TaxSlab{
				{Min: decimal.Zero, Max: decimal.NewFromInt(400_000), Rate: decimal.Zero},
				{Min: decimal.NewFromInt(400_000), Max: decimal.NewFromInt(800_000), Rate: decimal.NewFromFloat(0.05)},
				{Min: decimal.NewFromInt(800_000), Max: decimal.NewFromInt(1_200_000), Rate: decimal.NewFromFloat(0.10)},
				{Min: decimal.NewFromInt(1_200_000), Max: decimal.NewFromInt(1_600_000), Rate: decimal.NewFromFloat(0.15)},
				{Min: decimal.NewFromInt(1_600_000), Max: decimal.NewFromInt(2_000_000), Rate: decimal.NewFromFloat(0.20)},
				{Min: decimal.NewFromInt(2_000_000), Max: decimal.NewFromInt(2_400_000), Rate: decimal.NewFromFloat(0.25)},
				{Min: decimal.NewFromInt(2_400_000), Max: slabCeiling, Rate: decimal.NewFromFloat(0.30)},
			},
			Surcharge: []domain.SurchargeTier{
				{Threshold: decimal.NewFromInt(5_000_000), Rate: decimal.NewFromFloat(0.10)},
				{Threshold: decimal.NewFromInt(10_000_000), Rate: decimal.NewFromFloat(0.15)},
				{Threshold: decimal.NewFromInt(20_000_000), Rate: decimal.NewFromFloat(0.25)},
			},
		},
		Old: domain.OldRegimeRules{
			StandardDeduction:    decimal.NewFromInt(50000),
			RebateLimit:          decimal.NewFromInt(500_000),
			ExemptionBase:        decimal.NewFromInt(250_000),
			ExemptionSenior:      decimal.NewFromInt(300_000),
			ExemptionSuperSenior: decimal.NewFromInt(500_000),
			Slabs: []domain.TaxSlab{
				// The first band's Min is replaced by the age-based exemption.
				{Min: decimal.NewFromInt(250_000), Max: decimal.NewFromInt(500_000), Rate: decimal.NewFromFloat(0.05)},
				{Min: decimal.NewFromInt(500_000), Max: decimal.NewFromInt(1_000_000), Rate: decimal.NewFromFloat(0.20)},
				{Min: decimal.NewFromInt(1_000_000), Max: slabCeiling, Rate: decimal.NewFromFloat(0.30)},
			},
			Surcharge: []domain.SurchargeTier{
				{Threshold: decimal.NewFromInt(5_000_000), Rate: decimal.NewFromFloat(0.10)},
				{Threshold: decimal.NewFromInt(10_000_000), Rate: decimal.NewFromFloat(0.15)},
				{Threshold: decimal.NewFromInt(20_000_000), Rate: decimal.NewFromFloat(0.25)},
				{Threshold: decimal.NewFromInt(50_000_000), Rate: decimal.NewFromFloat(0.37)},
			},
		},
		Caps: domain.DeductionCaps{
			Section80C:            decimal.NewFromInt(150_000),
			NPS80CCD1B:            decimal.NewFromInt(50_000),
			HomeLoan24B:           decimal.NewFromInt(200_000),
			SavingsInterest:       decimal.NewFromInt(10_000),
			SavingsInterestSenior: decimal.NewFromInt(50_000),
		},
		CessRate:              decimal.NewFromFloat(0.04),
		PresumptiveProfitRate: decimal.NewFromFloat(0.50),
		BasicPayRate:          decimal.NewFromFloat(0.50),
		HRACapRate:            decimal.NewFromFloat(0.50),
	}
}

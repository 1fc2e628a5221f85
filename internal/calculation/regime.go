package calculation

import (
	"taxguide/internal/domain"

	"github.com/shopspring/decimal"
)

// RegimeCalculator turns a net taxable income into a full TaxBreakdown for
// one regime: marginal slab tax, rebate, surcharge, cess.
type RegimeCalculator struct {
	Regime      domain.Regime
	Slabs       []domain.TaxSlab
	RebateLimit decimal.Decimal
	Surcharge   []domain.SurchargeTier
	CessRate    decimal.Decimal
}

// NewRegimeCalculator builds the calculator for the simplified track.
func NewRegimeCalculator(rules domain.RegimeRules) *RegimeCalculator {
	return &RegimeCalculator{
		Regime:      domain.RegimeNew,
		Slabs:       rules.New.Slabs,
		RebateLimit: rules.New.RebateLimit,
		Surcharge:   rules.New.Surcharge,
		CessRate:    rules.CessRate,
	}
}

// OldRegimeCalculator builds the calculator for the traditional track. The
// basic exemption depends on age, so the first taxed band is rebuilt with the
// age-appropriate lower bound.
func OldRegimeCalculator(rules domain.RegimeRules, age int) *RegimeCalculator {
	limit := rules.Old.ExemptionBase
	switch {
	case age >= 80:
		limit = rules.Old.ExemptionSuperSenior
	case age >= 60:
		limit = rules.Old.ExemptionSenior
	}

	slabs := make([]domain.TaxSlab, len(rules.Old.Slabs))
	copy(slabs, rules.Old.Slabs)
	if len(slabs) > 0 {
		slabs[0].Min = limit
	}

	return &RegimeCalculator{
		Regime:      domain.RegimeOld,
		Slabs:       slabs,
		RebateLimit: rules.Old.RebateLimit,
		Surcharge:   rules.Old.Surcharge,
		CessRate:    rules.CessRate,
	}
}

// Breakdown computes the regime's tax on a net taxable income. The rebate
// zeroes the slab tax at or below RebateLimit; surcharge and cess both derive
// from the (possibly rebated) base tax, so they vanish with it.
func (rc *RegimeCalculator) Breakdown(netTaxable decimal.Decimal) domain.TaxBreakdown {
	netTaxable = clampZero(netTaxable)

	baseTax := rc.slabTax(netTaxable)
	if netTaxable.LessThanOrEqual(rc.RebateLimit) {
		baseTax = decimal.Zero
	}

	surcharge := baseTax.Mul(rc.surchargeRate(netTaxable))
	cess := baseTax.Add(surcharge).Mul(rc.CessRate)

	return domain.TaxBreakdown{
		Regime:           rc.Regime,
		NetTaxableIncome: netTaxable,
		BaseTax:          baseTax,
		Surcharge:        surcharge,
		Cess:             cess,
		Total:            baseTax.Add(surcharge).Add(cess).Floor(),
	}
}

// slabTax computes marginal tax across the bands.
func (rc *RegimeCalculator) slabTax(taxable decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	for _, slab := range rc.Slabs {
		if taxable.LessThanOrEqual(slab.Min) {
			break
		}
		inSlab := decimal.Min(taxable, slab.Max).Sub(slab.Min)
		if inSlab.GreaterThan(decimal.Zero) {
			tax = tax.Add(inSlab.Mul(slab.Rate))
		}
	}
	return tax
}

// surchargeRate picks the highest tier whose threshold is strictly exceeded.
func (rc *RegimeCalculator) surchargeRate(netTaxable decimal.Decimal) decimal.Decimal {
	rate := decimal.Zero
	for _, tier := range rc.Surcharge {
		if netTaxable.GreaterThan(tier.Threshold) {
			rate = tier.Rate
		}
	}
	return rate
}

package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewRegime_RebateBoundary(t *testing.T) {
	calc := NewRegimeCalculator(DefaultRegimeRules())

	atLimit := calc.Breakdown(d(1_200_000))
	assert.True(t, atLimit.BaseTax.IsZero(), "Net taxable of 1,200,000 should be fully rebated")
	assert.True(t, atLimit.Total.IsZero(), "Rebated base tax should zero surcharge and cess too")

	overLimit := calc.Breakdown(d(1_200_001))
	assert.True(t, overLimit.BaseTax.GreaterThan(decimal.Zero),
		"Net taxable of 1,200,001 should owe tax, got %s", overLimit.BaseTax)
}

func TestNewRegime_MarginalSlabs(t *testing.T) {
	calc := NewRegimeCalculator(DefaultRegimeRules())

	// 5% of 4L + 10% of 4L + 15% of 2.25L on 14.25L.
	bd := calc.Breakdown(d(1_425_000))
	assert.True(t, bd.BaseTax.Equal(d(93_750)), "Base tax should be 93,750, got %s", bd.BaseTax)

	// Top band: 30% above 24L.
	top := calc.Breakdown(d(3_000_000))
	expected := d(20_000).Add(d(40_000)).Add(d(60_000)).Add(d(80_000)).Add(d(100_000)).Add(d(180_000))
	assert.True(t, top.BaseTax.Equal(expected), "Base tax should be %s, got %s", expected, top.BaseTax)
}

func TestOldRegime_RebateBoundary(t *testing.T) {
	calc := OldRegimeCalculator(DefaultRegimeRules(), 45)

	atLimit := calc.Breakdown(d(500_000))
	assert.True(t, atLimit.BaseTax.IsZero(), "Net taxable of 500,000 should be fully rebated")

	overLimit := calc.Breakdown(d(500_001))
	assert.True(t, overLimit.BaseTax.GreaterThan(decimal.Zero),
		"Net taxable of 500,001 should owe tax, got %s", overLimit.BaseTax)
}

func TestOldRegime_ExemptionByAge(t *testing.T) {
	rules := DefaultRegimeRules()
	net := d(600_000) // above the rebate limit so the slab tax is observable

	tests := []struct {
		name    string
		age     int
		baseTax decimal.Decimal
	}{
		{"age 59 uses 250,000 exemption", 59, d(32_500)},
		{"age 60 uses 300,000 exemption", 60, d(30_000)},
		{"age 79 uses 300,000 exemption", 79, d(30_000)},
		{"age 80 uses 500,000 exemption", 80, d(20_000)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bd := OldRegimeCalculator(rules, tc.age).Breakdown(net)
			assert.True(t, bd.BaseTax.Equal(tc.baseTax),
				"Base tax should be %s, got %s", tc.baseTax, bd.BaseTax)
		})
	}
}

func TestSurcharge_Thresholds(t *testing.T) {
	calc := NewRegimeCalculator(DefaultRegimeRules())

	atThreshold := calc.Breakdown(d(5_000_000))
	assert.True(t, atThreshold.Surcharge.IsZero(), "No surcharge at exactly 50L")

	over := calc.Breakdown(d(5_000_001))
	assert.True(t, over.Surcharge.Equal(over.BaseTax.Mul(decimal.NewFromFloat(0.10))),
		"Surcharge above 50L should be 10%% of base tax")

	mid := calc.Breakdown(d(10_000_001))
	assert.True(t, mid.Surcharge.Equal(mid.BaseTax.Mul(decimal.NewFromFloat(0.15))),
		"Surcharge above 1Cr should be 15%% of base tax")

	high := calc.Breakdown(d(20_000_001))
	assert.True(t, high.Surcharge.Equal(high.BaseTax.Mul(decimal.NewFromFloat(0.25))),
		"Surcharge above 2Cr should be 25%% of base tax")
}

func TestSurcharge_OldRegimeTopTier(t *testing.T) {
	rules := DefaultRegimeRules()
	net := d(60_000_000)

	old := OldRegimeCalculator(rules, 45).Breakdown(net)
	assert.True(t, old.Surcharge.Equal(old.BaseTax.Mul(decimal.NewFromFloat(0.37))),
		"Old regime should apply 37%% above 5Cr")

	// The New regime tops out at 25% by statute.
	new_ := NewRegimeCalculator(rules).Breakdown(net)
	assert.True(t, new_.Surcharge.Equal(new_.BaseTax.Mul(decimal.NewFromFloat(0.25))),
		"New regime surcharge should stay capped at 25%%")
}

func TestBreakdown_CessDerivation(t *testing.T) {
	calc := OldRegimeCalculator(DefaultRegimeRules(), 45)

	bd := calc.Breakdown(d(600_000))
	assert.True(t, bd.BaseTax.Equal(d(32_500)), "Base tax should be 32,500, got %s", bd.BaseTax)
	assert.True(t, bd.Cess.Equal(d(1_300)), "Cess should be 4%% of base tax, got %s", bd.Cess)
	assert.True(t, bd.Total.Equal(d(33_800)), "Total should be 33,800, got %s", bd.Total)
}

func TestBreakdown_NegativeNetTaxableClamped(t *testing.T) {
	calc := NewRegimeCalculator(DefaultRegimeRules())

	bd := calc.Breakdown(d(-100_000))
	assert.True(t, bd.NetTaxableIncome.IsZero(), "Negative net taxable should clamp to zero")
	assert.True(t, bd.Total.IsZero(), "Clamped income should owe nothing")
}

func TestBreakdown_TotalIsWholeRupees(t *testing.T) {
	calc := NewRegimeCalculator(DefaultRegimeRules())

	bd := calc.Breakdown(decimal.NewFromFloat(1_500_000.75))
	assert.True(t, bd.Total.Equal(bd.Total.Floor()), "Total must be truncated to whole rupees")
}

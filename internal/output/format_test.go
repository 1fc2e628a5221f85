package output

import (
	"testing"

	"taxguide/internal/calculation"
	"taxguide/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *domain.TaxComparisonResult {
	engine := calculation.NewEngine()
	result := engine.Compare(domain.TaxInput{
		Age:                 35,
		Salary:              decimal.NewFromInt(1_500_000),
		RentPaid:            decimal.NewFromInt(240_000),
		RentPeriod:          domain.RentPeriodAnnual,
		Investment80C:       decimal.NewFromInt(150_000),
		MedicalInsurance80D: decimal.NewFromInt(25_000),
	})
	return &result
}

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{100_000, "₹1,00,000"},
		{1_234_567, "₹12,34,567"},
		{12_345_678, "₹1,23,45,678"},
		{50_000_000, "₹5,00,00,000"},
	}

	for _, tc := range tests {
		got := FormatRupees(decimal.NewFromInt(tc.amount))
		assert.Equal(t, tc.want, got, "amount %d", tc.amount)
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"table", "console", "json", "csv", "markdown", "md"} {
		assert.NotNil(t, GetFormatterByName(name), "formatter %q should exist", name)
	}
	assert.Nil(t, GetFormatterByName("html"), "unknown format should return nil")
}

func TestTableFormatter(t *testing.T) {
	data, err := (&TableFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "INCOME TAX REGIME COMPARISON")
	assert.Contains(t, out, "₹97,500", "New regime total should appear")
	assert.Contains(t, out, "₹1,51,320", "Old regime total should appear")
	assert.Contains(t, out, "Recommendation: New Regime (saves ₹53,820)")
}

func TestMarkdownFormatter(t *testing.T) {
	data, err := (&MarkdownFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "### Tax Report")
	assert.Contains(t, out, "| **New Regime** | **₹97,500** |")
	assert.Contains(t, out, "| **Old Regime** | **₹1,51,320** |")
	assert.Contains(t, out, "You save **₹53,820**")
}

func TestCSVFormatter(t *testing.T) {
	data, err := (&CSVFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "regime,net_taxable_income,base_tax,surcharge,cess,total,recommended")
	assert.Contains(t, out, "NEW,1425000,93750,0,3750,97500,true")
	assert.Contains(t, out, "OLD,1110000,145500,0,5820,151320,false")
}

func TestJSONFormatter(t *testing.T) {
	data, err := (&JSONFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"recommendedRegime": "NEW"`)
	assert.Contains(t, out, `"savings": "53820"`)
}

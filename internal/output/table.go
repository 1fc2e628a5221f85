package output

import (
	"fmt"
	"strings"

	"taxguide/internal/domain"
)

// TableFormatter renders the comparison as a console table.
type TableFormatter struct{}

func (tf *TableFormatter) Name() string { return "table" }

func (tf *TableFormatter) Format(result *domain.TaxComparisonResult) ([]byte, error) {
	var sb strings.Builder

	labelWidth := 22
	numWidth := 16

	sb.WriteString("INCOME TAX REGIME COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		labelWidth, "",
		numWidth, "New Regime",
		numWidth, "Old Regime"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	rows := []struct {
		label    string
		new, old string
	}{
		{"Net Taxable Income", FormatRupees(result.NewRegime.NetTaxableIncome), FormatRupees(result.OldRegime.NetTaxableIncome)},
		{"Slab Tax", FormatRupees(result.NewRegime.BaseTax), FormatRupees(result.OldRegime.BaseTax)},
		{"Surcharge", FormatRupees(result.NewRegime.Surcharge), FormatRupees(result.OldRegime.Surcharge)},
		{"Health & Edu Cess", FormatRupees(result.NewRegime.Cess), FormatRupees(result.OldRegime.Cess)},
		{"Total Tax Payable", FormatRupees(result.NewRegime.Total), FormatRupees(result.OldRegime.Total)},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n", labelWidth, row.label, numWidth, row.new, numWidth, row.old))
	}

	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Recommendation: %s (saves %s)\n",
		regimeLabel(result.RecommendedRegime), FormatRupees(result.Savings)))

	return []byte(sb.String()), nil
}

package output

import (
	"fmt"
	"strings"

	"taxguide/internal/domain"
)

// MarkdownFormatter renders the report the conversational layer shows in
// chat: a two-column regime table with the recommendation underneath.
type MarkdownFormatter struct{}

func (mf *MarkdownFormatter) Name() string { return "markdown" }

func (mf *MarkdownFormatter) Format(result *domain.TaxComparisonResult) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("### Tax Report\n\n")
	sb.WriteString("| Regime | Tax Payable |\n")
	sb.WriteString("| :--- | :--- |\n")
	sb.WriteString(fmt.Sprintf("| **New Regime** | **%s** |\n", FormatRupees(result.NewRegime.Total)))
	sb.WriteString(fmt.Sprintf("| **Old Regime** | **%s** |\n", FormatRupees(result.OldRegime.Total)))
	sb.WriteString("\n")

	sb.WriteString("**Breakdown**\n\n")
	sb.WriteString("| | New | Old |\n")
	sb.WriteString("| :--- | :--- | :--- |\n")
	sb.WriteString(fmt.Sprintf("| Net taxable income | %s | %s |\n",
		FormatRupees(result.NewRegime.NetTaxableIncome), FormatRupees(result.OldRegime.NetTaxableIncome)))
	sb.WriteString(fmt.Sprintf("| Slab tax | %s | %s |\n",
		FormatRupees(result.NewRegime.BaseTax), FormatRupees(result.OldRegime.BaseTax)))
	sb.WriteString(fmt.Sprintf("| Surcharge | %s | %s |\n",
		FormatRupees(result.NewRegime.Surcharge), FormatRupees(result.OldRegime.Surcharge)))
	sb.WriteString(fmt.Sprintf("| Cess (4%%) | %s | %s |\n",
		FormatRupees(result.NewRegime.Cess), FormatRupees(result.OldRegime.Cess)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("**Recommendation:** go with the **%s**. You save **%s**.\n",
		regimeLabel(result.RecommendedRegime), FormatRupees(result.Savings)))

	return []byte(sb.String()), nil
}

package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"taxguide/internal/domain"
)

// CSVFormatter renders one row per regime, amounts as plain numbers.
type CSVFormatter struct{}

func (cf *CSVFormatter) Name() string { return "csv" }

func (cf *CSVFormatter) Format(result *domain.TaxComparisonResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"regime", "net_taxable_income", "base_tax", "surcharge", "cess", "total", "recommended"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, bd := range []domain.TaxBreakdown{result.NewRegime, result.OldRegime} {
		row := []string{
			string(bd.Regime),
			bd.NetTaxableIncome.StringFixed(0),
			bd.BaseTax.StringFixed(0),
			bd.Surcharge.StringFixed(0),
			bd.Cess.StringFixed(0),
			bd.Total.StringFixed(0),
			fmt.Sprintf("%t", bd.Regime == result.RecommendedRegime),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

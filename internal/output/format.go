package output

import (
	"strings"

	"github.com/shopspring/decimal"
	"taxguide/internal/domain"
)

// Formatter renders a regime comparison in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.TaxComparisonResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil for an
// unknown name.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "table", "console":
		return &TableFormatter{}
	case "json":
		return &JSONFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "markdown", "md":
		return &MarkdownFormatter{}
	}
	return nil
}

// FormatRupees renders a whole-rupee amount with Indian digit grouping
// (₹12,34,567): the last three digits form one group, the rest pair up.
func FormatRupees(amount decimal.Decimal) string {
	digits := amount.Floor().Abs().String()

	var groups []string
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		groups = append(groups, digits[len(digits)-3:])
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
	} else {
		groups = []string{digits}
	}

	sign := ""
	if amount.LessThan(decimal.Zero) {
		sign = "-"
	}
	return "₹" + sign + strings.Join(groups, ",")
}

func regimeLabel(r domain.Regime) string {
	if r == domain.RegimeNew {
		return "New Regime"
	}
	return "Old Regime"
}

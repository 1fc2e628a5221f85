package output

import (
	"encoding/json"

	"taxguide/internal/domain"
)

// JSONFormatter renders the comparison as indented JSON.
type JSONFormatter struct{}

func (jf *JSONFormatter) Name() string { return "json" }

func (jf *JSONFormatter) Format(result *domain.TaxComparisonResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

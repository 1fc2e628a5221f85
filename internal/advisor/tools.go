package advisor

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"taxguide/internal/domain"
)

// CalculateTaxToolName is the function the model calls once it has gathered
// enough of the user's financial picture.
const CalculateTaxToolName = "calculate_tax"

// CalculateTaxTool declares the structured calculation entry point exposed to
// the model. Every amount is annual rupees unless noted otherwise.
func CalculateTaxTool() *genai.Tool {
	number := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeNumber, Description: desc}
	}

	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name: CalculateTaxToolName,
				Description: "Compute Indian income tax under both the New and Old regimes " +
					"and recommend the cheaper one. Call this only after collecting the " +
					"user's income details. All amounts are in rupees per year.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"age": {
							Type:        genai.TypeInteger,
							Description: "Age of the taxpayer in years. Defaults to 30 when unknown.",
						},
						"salary":          number("Gross annual salary income."),
						"business_income": number("Gross annual receipts from business or profession (taxed presumptively at 50%)."),
						"rent_paid":       number("Rent paid for accommodation."),
						"rent_period": {
							Type:        genai.TypeString,
							Description: "Whether rent_paid is a monthly or annual figure.",
							Enum:        []string{"monthly", "annual"},
						},
						"investment_80c":         number("Investments eligible under Section 80C (PPF, ELSS, EPF, life insurance)."),
						"medical_insurance_80d":  number("Medical insurance premium under Section 80D."),
						"basic_salary_override":  number("Basic pay, either as a percentage of salary (values up to 100) or an absolute annual amount."),
						"home_loan_interest":     number("Home loan interest paid, deductible under Section 24(b)."),
						"nps_contribution":       number("NPS contribution under Section 80CCD(1B)."),
						"education_loan_interest": number("Education loan interest under Section 80E."),
						"donations_80g":          number("Eligible donations under Section 80G."),
						"savings_interest_80tta": number("Savings account interest under Section 80TTA/80TTB."),
						"other_deductions":       number("Any other old-regime deductions."),
					},
					Required: []string{"salary"},
				},
			},
		},
	}
}

// DecodeTaxInput converts a model-supplied argument map into a TaxInput.
// Missing fields stay zero; age falls back to the engine default. Numbers
// arrive as float64 from JSON but strings and json.Number are tolerated.
func DecodeTaxInput(args map[string]any) (domain.TaxInput, error) {
	var in domain.TaxInput

	if v, ok := args["age"]; ok {
		age, err := toInt(v)
		if err != nil {
			return in, fmt.Errorf("invalid age: %w", err)
		}
		in.Age = age
	}

	fields := map[string]*decimal.Decimal{
		"salary":                  &in.Salary,
		"business_income":         &in.BusinessIncome,
		"rent_paid":               &in.RentPaid,
		"investment_80c":          &in.Investment80C,
		"medical_insurance_80d":   &in.MedicalInsurance80D,
		"basic_salary_override":   &in.BasicSalaryOverride,
		"home_loan_interest":      &in.HomeLoanInterest,
		"nps_contribution":        &in.NPSContribution,
		"education_loan_interest": &in.EducationLoanInterest,
		"donations_80g":           &in.Donations80G,
		"savings_interest_80tta":  &in.SavingsInterest80TTA,
		"other_deductions":        &in.OtherDeductions,
	}
	for name, dst := range fields {
		v, ok := args[name]
		if !ok || v == nil {
			continue
		}
		d, err := toDecimal(v)
		if err != nil {
			return in, fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = d
	}

	if v, ok := args["rent_period"]; ok {
		s, _ := v.(string)
		period := domain.RentPeriod(s)
		if !period.Valid() {
			return in, fmt.Errorf("invalid rent_period %q", s)
		}
		in.RentPeriod = period
	}

	return in, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		return decimal.NewFromString(n)
	default:
		return decimal.Zero, fmt.Errorf("unsupported number type %T", v)
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	case string:
		var i int
		_, err := fmt.Sscanf(n, "%d", &i)
		return i, err
	default:
		return 0, fmt.Errorf("unsupported integer type %T", v)
	}
}

package config

import (
	"fmt"
	"os"

	"taxguide/internal/domain"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of profile and rules files. The engine itself
// clamps out-of-range values; the file boundary is stricter and rejects
// negative amounts so typos surface early.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadProfile loads a tax profile from a YAML file.
func (ip *InputParser) LoadProfile(filename string) (*domain.TaxProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.TaxProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// ValidateProfile validates a loaded profile.
func (ip *InputParser) ValidateProfile(profile *domain.TaxProfile) error {
	if profile.Name == "" {
		return fmt.Errorf("name is required")
	}
	return ip.validateInput(&profile.Input)
}

func (ip *InputParser) validateInput(in *domain.TaxInput) error {
	if in.Age < 0 || in.Age > 120 {
		return fmt.Errorf("age %d out of range", in.Age)
	}
	if !in.RentPeriod.Valid() {
		return fmt.Errorf("unknown rent period %q", in.RentPeriod)
	}

	amounts := map[string]decimal.Decimal{
		"salary":                  in.Salary,
		"business_income":         in.BusinessIncome,
		"rent_paid":               in.RentPaid,
		"investment_80c":          in.Investment80C,
		"medical_insurance_80d":   in.MedicalInsurance80D,
		"basic_salary_override":   in.BasicSalaryOverride,
		"home_loan_interest":      in.HomeLoanInterest,
		"nps_contribution":        in.NPSContribution,
		"education_loan_interest": in.EducationLoanInterest,
		"donations_80g":           in.Donations80G,
		"savings_interest_80tta":  in.SavingsInterest80TTA,
		"other_deductions":        in.OtherDeductions,
	}
	for field, amount := range amounts {
		if amount.LessThan(decimal.Zero) {
			return fmt.Errorf("%s must not be negative", field)
		}
	}
	return nil
}

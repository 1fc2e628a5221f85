package config

import (
	"fmt"
	"os"

	"taxguide/internal/calculation"
	"taxguide/internal/domain"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// LoadRegimeRules loads statutory rules from a YAML file, or returns the
// built-in defaults when filename is empty.
func (ip *InputParser) LoadRegimeRules(filename string) (domain.RegimeRules, error) {
	if filename == "" {
		return calculation.DefaultRegimeRules(), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.RegimeRules{}, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}

	// Start from defaults so a rules file only needs to override what changed.
	rules := calculation.DefaultRegimeRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return domain.RegimeRules{}, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	if err := validateRules(&rules); err != nil {
		return domain.RegimeRules{}, fmt.Errorf("rules validation failed: %w", err)
	}
	return rules, nil
}

func validateRules(rules *domain.RegimeRules) error {
	if len(rules.New.Slabs) == 0 {
		return fmt.Errorf("new regime needs at least one slab")
	}
	if len(rules.Old.Slabs) == 0 {
		return fmt.Errorf("old regime needs at least one slab")
	}
	if err := validateSlabs("new_regime", rules.New.Slabs); err != nil {
		return err
	}
	if err := validateSlabs("old_regime", rules.Old.Slabs); err != nil {
		return err
	}
	if rules.CessRate.LessThan(decimal.Zero) {
		return fmt.Errorf("cess rate must not be negative")
	}
	if rules.PresumptiveProfitRate.LessThan(decimal.Zero) || rules.PresumptiveProfitRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("presumptive profit rate must be between 0 and 1")
	}
	return nil
}

func validateSlabs(regime string, slabs []domain.TaxSlab) error {
	prev := decimal.Zero
	for i, slab := range slabs {
		if slab.Max.LessThanOrEqual(slab.Min) {
			return fmt.Errorf("%s slab %d: max must exceed min", regime, i)
		}
		if slab.Rate.LessThan(decimal.Zero) {
			return fmt.Errorf("%s slab %d: rate must not be negative", regime, i)
		}
		if i > 0 && !slab.Min.Equal(prev) {
			return fmt.Errorf("%s slab %d: bands must be contiguous", regime, i)
		}
		prev = slab.Max
	}
	return nil
}

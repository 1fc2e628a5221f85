package calculation

import (
	"taxguide/internal/domain"

	"github.com/shopspring/decimal"
)

// defaultAge is assumed when the caller supplies no age; it only affects the
// Old-regime exemption bracket and the savings-interest cap.
const defaultAge = 30

// Engine is the pure tax computation engine. It owns no state beyond its
// statutory rules, never performs I/O, and is safe for concurrent use.
type Engine struct {
	Rules  domain.RegimeRules
	Logger Logger
}

// NewEngine creates an engine with the built-in FY 2025-26 rules.
func NewEngine() *Engine {
	return NewEngineWithRules(DefaultRegimeRules())
}

// NewEngineWithRules creates an engine with caller-supplied statutory rules.
func NewEngineWithRules(rules domain.RegimeRules) *Engine {
	return &Engine{Rules: rules, Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// Compare computes both regimes for one input and recommends the cheaper one.
// Identical inputs always produce identical results; out-of-range values are
// clamped, never rejected.
func (e *Engine) Compare(in domain.TaxInput) domain.TaxComparisonResult {
	age := in.Age
	if age <= 0 {
		age = defaultAge
	}

	salary := clampZero(in.Salary)
	presumptive := clampZero(in.BusinessIncome).Mul(e.Rules.PresumptiveProfitRate)
	gross := salary.Add(presumptive)

	netOld := clampZero(gross.Sub(oldRegimeDeductions(in, e.Rules, age)))
	netNew := clampZero(gross.Sub(e.Rules.New.StandardDeduction))

	e.Logger.Debugf("compare: gross=%s netOld=%s netNew=%s age=%d",
		gross.StringFixed(0), netOld.StringFixed(0), netNew.StringFixed(0), age)

	newBD := NewRegimeCalculator(e.Rules).Breakdown(netNew)
	oldBD := OldRegimeCalculator(e.Rules, age).Breakdown(netOld)

	recommended := domain.RegimeOld
	if newBD.Total.LessThan(oldBD.Total) {
		recommended = domain.RegimeNew
	}

	return domain.TaxComparisonResult{
		NewRegime:         newBD,
		OldRegime:         oldBD,
		RecommendedRegime: recommended,
		Savings:           newBD.Total.Sub(oldBD.Total).Abs().Floor(),
	}
}

// GrossIncome exposes the normalized gross figure (salary plus presumptive
// business profit) for display layers.
func (e *Engine) GrossIncome(in domain.TaxInput) decimal.Decimal {
	return clampZero(in.Salary).Add(clampZero(in.BusinessIncome).Mul(e.Rules.PresumptiveProfitRate))
}

package convert

import (
	"unitconv/internal/catalog"
	"unitconv/internal/domain"
)

// Linear converts value between two units of a linear category.
//
// Identical units short-circuit to value exactly; otherwise the result is
// value * (factor[to] / factor[from]).
func Linear(value float64, from, to, category string) (domain.Result, error) {
	fromFactor, err := catalog.Factor(category, from)
	if err != nil {
		return domain.Result{}, err
	}
	toFactor, err := catalog.Factor(category, to)
	if err != nil {
		return domain.Result{}, err
	}
	if from == to {
		return domain.Result{Value: value, Formula: FormulaIdentity}, nil
	}
	result := value * (toFactor / fromFactor)
	return domain.Result{Value: result, Formula: linearFormula(value, toFactor, fromFactor, result)}, nil
}

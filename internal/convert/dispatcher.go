package convert

import (
	"context"

	"unitconv/internal/catalog"
	"unitconv/internal/domain"
	apperrors "unitconv/internal/errors"
)

// Dispatcher is the single entry point that selects a conversion strategy.
type Dispatcher struct {
	currency *Currency
}

// New returns a Dispatcher whose currency strategy uses lookup and reports
// failures to reporter.
func New(lookup domain.RateLookup, reporter domain.ErrorReporter) *Dispatcher {
	return &Dispatcher{currency: NewCurrency(lookup, reporter)}
}

// Convert converts value from one unit to another within category.
//
// Routing is decided by the category's strategy: Affine goes to the
// temperature formulas, ExternalRate to the currency lookup, and Linear to
// the factor table with an exact identity short-circuit when from == to.
// Only catalog misuse (UnknownCategory, UnknownUnit) is returned as an error.
func (d *Dispatcher) Convert(ctx context.Context, value float64, from, to, category string) (domain.Result, error) {
	c, err := catalog.Lookup(category)
	if err != nil {
		return domain.Result{}, err
	}
	switch c.Strategy {
	case domain.Affine:
		return Temperature(value, from, to), nil
	case domain.ExternalRate:
		if err := checkUnits(category, from, to); err != nil {
			return domain.Result{}, err
		}
		return d.currency.Convert(ctx, value, from, to), nil
	}
	if err := checkUnits(category, from, to); err != nil {
		return domain.Result{}, err
	}
	if from == to {
		return domain.Result{Value: value, Formula: FormulaIdentity}, nil
	}
	return Linear(value, from, to, category)
}

func checkUnits(category string, units ...string) error {
	for _, u := range units {
		if !catalog.HasUnit(category, u) {
			return apperrors.UnknownUnit(category, u)
		}
	}
	return nil
}

// Compile-time assertion that Dispatcher implements domain.Converter.
var _ domain.Converter = (*Dispatcher)(nil)

package convert

import (
	"context"
	stderrors "errors"

	"unitconv/internal/domain"
	apperrors "unitconv/internal/errors"
)

// ErrNoRateProvider is the cause reported when no exchange-rate provider is
// configured, typically because no API key is available.
var ErrNoRateProvider = stderrors.New("no exchange-rate provider configured")

// Currency converts amounts using one live lookup per call.
type Currency struct {
	lookup   domain.RateLookup
	reporter domain.ErrorReporter
}

// NewCurrency returns a currency converter. A nil lookup makes every
// conversion fail softly; a nil reporter discards failure reports.
func NewCurrency(lookup domain.RateLookup, reporter domain.ErrorReporter) *Currency {
	if reporter == nil {
		reporter = discard{}
	}
	return &Currency{lookup: lookup, reporter: reporter}
}

// Convert returns the provider's converted amount. On any failure it reports
// the error through the ErrorReporter and returns value unchanged with
// FormulaFailed; it never returns an error.
func (c *Currency) Convert(ctx context.Context, value float64, from, to string) domain.Result {
	if c.lookup == nil {
		return c.fail(value, apperrors.RateUnavailable(from, to, ErrNoRateProvider))
	}
	q, err := c.lookup.LookupRate(ctx, from, to, value)
	if err != nil {
		if !apperrors.IsCode(err, apperrors.CodeExternalRateUnavailable) {
			err = apperrors.RateUnavailable(from, to, err)
		}
		return c.fail(value, err)
	}
	rate := q.Rate
	if rate == 0 && value != 0 {
		rate = q.Result / value
	}
	return domain.Result{Value: q.Result, Formula: currencyFormula(value, from, rate, q.Result, to)}
}

func (c *Currency) fail(value float64, err error) domain.Result {
	c.reporter.ReportError("Currency conversion failed", err)
	return domain.Result{Value: value, Formula: FormulaFailed}
}

type discard struct{}

func (discard) ReportError(string, error) {}

// Package display renders conversion state for people: numbers are formatted
// for the user's locale, unit names and formulas are shown as they are.
package display

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"unitconv/internal/domain"
)

// MaxFractionDigits caps the decimals shown for a value.
const MaxFractionDigits = 6

// Printer formats values for one locale.
type Printer struct {
	p *message.Printer
}

// New returns a Printer for locale, a BCP 47 tag such as "en-US" or "de".
func New(locale string) (*Printer, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Printer{p: message.NewPrinter(tag)}, nil
}

// Number formats v with locale grouping and at most MaxFractionDigits decimals.
func (p *Printer) Number(v float64) string {
	return p.p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(MaxFractionDigits)))
}

// Tuple renders the (value, unit, value, unit) part of a state.
func (p *Printer) Tuple(s domain.State) string {
	return fmt.Sprintf("%s %s = %s %s", p.Number(s.InputValue), s.FromUnit, p.Number(s.ConvertedValue), s.ToUnit)
}

// WriteState writes the tuple and formula of s on two lines.
func (p *Printer) WriteState(w io.Writer, s domain.State) error {
	_, err := fmt.Fprintf(w, "%s\nFormula: %s\n", p.Tuple(s), s.Formula)
	return err
}

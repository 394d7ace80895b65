package convert

import (
	"fmt"
	"strconv"
)

const (
	// FormulaIdentity is reported when source and target units coincide.
	FormulaIdentity = "No conversion needed"
	// FormulaFailed is reported when a currency lookup could not be completed.
	FormulaFailed = "Conversion failed"
)

// num formats x in its shortest round-trip decimal form.
func num(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func linearFormula(value, toFactor, fromFactor, result float64) string {
	return fmt.Sprintf("(%s * %s / %s) = %s", num(value), num(toFactor), num(fromFactor), num(result))
}

func currencyFormula(value float64, from string, rate, result float64, to string) string {
	return fmt.Sprintf("%s %s * %s = %s %s (real-time exchange rate)", num(value), from, num(rate), num(result), to)
}

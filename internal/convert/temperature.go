package convert

import (
	"fmt"

	"unitconv/internal/domain"
)

const (
	Celsius    = "Celsius"
	Fahrenheit = "Fahrenheit"
	Kelvin     = "Kelvin"
)

// Temperature converts value between Celsius, Fahrenheit and Kelvin.
//
// Identical or unrecognised units return value unchanged with the identity
// formula.
func Temperature(value float64, from, to string) domain.Result {
	var r float64
	var f string
	switch {
	case from == Celsius && to == Fahrenheit:
		r = value*9/5 + 32
		f = fmt.Sprintf("(%s * 9/5) + 32 = %s", num(value), num(r))
	case from == Celsius && to == Kelvin:
		r = value + 273.15
		f = fmt.Sprintf("%s + 273.15 = %s", num(value), num(r))
	case from == Fahrenheit && to == Celsius:
		r = (value - 32) * 5 / 9
		f = fmt.Sprintf("(%s - 32) * 5/9 = %s", num(value), num(r))
	case from == Fahrenheit && to == Kelvin:
		r = (value-32)*5/9 + 273.15
		f = fmt.Sprintf("(%s - 32) * 5/9 + 273.15 = %s", num(value), num(r))
	case from == Kelvin && to == Celsius:
		r = value - 273.15
		f = fmt.Sprintf("%s - 273.15 = %s", num(value), num(r))
	case from == Kelvin && to == Fahrenheit:
		r = (value-273.15)*9/5 + 32
		f = fmt.Sprintf("(%s - 273.15) * 9/5 + 32 = %s", num(value), num(r))
	default:
		return domain.Result{Value: value, Formula: FormulaIdentity}
	}
	return domain.Result{Value: r, Formula: f}
}

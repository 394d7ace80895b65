// Package convert implements the conversion strategies and the dispatcher
// that selects between them.
//
// Strategies
//
//   - Linear: value * factor[to] / factor[from], using catalog factors.
//   - Temperature: closed-form affine formulas among Celsius, Fahrenheit
//     and Kelvin.
//   - Currency: a single best-effort lookup against a domain.RateLookup.
//
// Every strategy returns a domain.Result carrying a formula string that
// traces the arithmetic or the data source used.
package convert

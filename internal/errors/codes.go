// Package errors provides the structured error kinds raised by the conversion engine.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Catalog misuse. These never occur when the caller only offers
	// categories and units taken from the catalog.
	CodeUnknownCategory Code = "UNKNOWN_CATEGORY"
	CodeUnknownUnit     Code = "UNKNOWN_UNIT"

	// CodeExternalRateUnavailable covers network, decoding and
	// provider-reported failures of a live exchange-rate lookup.
	CodeExternalRateUnavailable Code = "EXTERNAL_RATE_UNAVAILABLE"
)

// Recoverable reports whether errors carrying this code are part of normal
// operation and must be degraded rather than surfaced.
func (c Code) Recoverable() bool {
	return c == CodeExternalRateUnavailable
}

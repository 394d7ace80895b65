package errors

import stderrors "errors"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable message
	Metadata map[string]string // Offending category, unit or currency pair
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata describing the input.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithMetadata creates a domain error with both metadata and a cause.
func WrapWithMetadata(code Code, message string, metadata map[string]string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
		Cause:    cause,
	}
}

// GetCode extracts the code from the first domain error in err's chain.
// It returns CodeUnknown when no domain error is present.
func GetCode(err error) Code {
	var de *Error
	if stderrors.As(err, &de) {
		return de.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// UnknownCategory reports a category that is not registered in the catalog.
func UnknownCategory(category string) *Error {
	return WithMetadata(CodeUnknownCategory, "unknown category "+quote(category),
		map[string]string{"category": category})
}

// UnknownUnit reports a unit that is not listed under category.
func UnknownUnit(category, unit string) *Error {
	return WithMetadata(CodeUnknownUnit, "unknown unit "+quote(unit)+" in category "+quote(category),
		map[string]string{"category": category, "unit": unit})
}

// RateUnavailable reports a failed exchange-rate lookup for from→to.
func RateUnavailable(from, to string, cause error) *Error {
	return WrapWithMetadata(CodeExternalRateUnavailable, "exchange rate "+from+"->"+to+" unavailable",
		map[string]string{"from": from, "to": to}, cause)
}

func quote(s string) string { return `"` + s + `"` }

package domain

import "context"

// Converter routes a conversion request to the strategy of its category.
type Converter interface {
	Convert(ctx context.Context, value float64, from, to, category string) (Result, error)
}

// RateLookup fetches a live exchange rate for amount of from expressed in to.
type RateLookup interface {
	LookupRate(ctx context.Context, from, to string, amount float64) (Quote, error)
}

// ErrorReporter is the collaborator's error-display channel. Recoverable
// failures are shown through it instead of being returned.
type ErrorReporter interface {
	ReportError(message string, err error)
}

// KeyStore keeps the exchange-rate API key encrypted at rest.
type KeyStore interface {
	SaveAPIKey(passphrase string, key string) error
	LoadAPIKey(passphrase string) (string, error)
	HasAPIKey() (bool, error)
	DeleteAPIKey() error
}

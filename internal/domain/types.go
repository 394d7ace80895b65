package domain

import "time"

// Strategy selects how a category converts between its units.
type Strategy string

const (
	// Linear categories scale by a per-unit factor relative to a base unit.
	Linear Strategy = "linear"
	// Affine categories need an additive offset as well as scaling (temperature).
	Affine Strategy = "affine"
	// ExternalRate categories fetch their factor from a live provider (currency).
	ExternalRate Strategy = "external-rate"
)

// Category is a domain of convertible quantities with its own ordered unit list.
type Category struct {
	Name     string
	Units    []string
	Strategy Strategy
}

// Result is the outcome of one conversion request.
type Result struct {
	Value   float64
	Formula string
}

// Quote is a successful answer from an exchange-rate provider.
type Quote struct {
	Rate   float64 // units of the target currency per unit of the source
	Result float64 // the converted amount as computed by the provider
}

// State is the session-scoped conversion state.
//
// FromUnit and ToUnit are always members of Category's unit list.
type State struct {
	Category       string  `json:"category"`
	FromUnit       string  `json:"from_unit"`
	ToUnit         string  `json:"to_unit"`
	InputValue     float64 `json:"input_value"`
	ConvertedValue float64 `json:"converted_value"`
	Formula        string  `json:"formula"`
}

// HistoryEntry is a snapshot of State at the moment it was recorded.
type HistoryEntry struct {
	At    time.Time `json:"at"`
	State State     `json:"state"`
}

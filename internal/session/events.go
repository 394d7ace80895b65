package session

import (
	"fmt"
	"strings"
)

// Event is a single field change coming from the UI.
type Event interface {
	isEvent()
}

// CategoryChanged selects a new category; both units reset to its first two.
type CategoryChanged struct{ Category string }

// FromUnitChanged selects a new source unit within the current category.
type FromUnitChanged struct{ Unit string }

// ToUnitChanged selects a new target unit within the current category.
type ToUnitChanged struct{ Unit string }

// InputEdited replaces the input value.
type InputEdited struct{ Value float64 }

// ConvertedEdited is a direct edit of the converted value.
type ConvertedEdited struct{ Value float64 }

func (CategoryChanged) isEvent() {}
func (FromUnitChanged) isEvent() {}
func (ToUnitChanged) isEvent()   {}
func (InputEdited) isEvent()     {}
func (ConvertedEdited) isEvent() {}

// EditMode decides how a direct edit of the converted value flows back into
// the input value.
type EditMode int

const (
	// EditInverse derives the input by converting the edited value from the
	// target unit back to the source unit, then converts forward again.
	EditInverse EditMode = iota
	// EditMirror copies the edited value into the input unchanged and
	// converts forward. It only round-trips for self-inverse conversions.
	EditMirror
)

func (m EditMode) String() string {
	switch m {
	case EditInverse:
		return "inverse"
	case EditMirror:
		return "mirror"
	}
	return fmt.Sprintf("EditMode(%d)", int(m))
}

// ParseEditMode parses "inverse" or "mirror"; the empty string means inverse.
func ParseEditMode(s string) (EditMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "inverse":
		return EditInverse, nil
	case "mirror":
		return EditMirror, nil
	}
	return EditInverse, fmt.Errorf("unknown edit mode %q (want inverse or mirror)", s)
}

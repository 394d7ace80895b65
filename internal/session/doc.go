// Package session keeps one user's conversion state consistent.
//
// A Controller owns a domain.State and applies field-change events to it:
// category, from-unit and to-unit selections, edits of the input value and
// edits of the converted value. Each event is handled by the pure Transition
// function, which recomputes the converted value and formula through a
// domain.Converter and returns the next state. The controller never registers
// callbacks or runs background work; the UI's event loop calls Apply once per
// change.
//
// Events that name a category or unit outside the catalog are rejected with
// UNKNOWN_CATEGORY or UNKNOWN_UNIT and leave the state untouched.
package session

package session

import (
	"context"
	"time"

	"unitconv/internal/catalog"
	"unitconv/internal/domain"
	apperrors "unitconv/internal/errors"
)

// DefaultInput is the input value of a fresh session.
const DefaultInput = 1.0

// Controller owns the conversion state of one user session.
//
// It is not safe for concurrent use; a session has exactly one event loop.
type Controller struct {
	conv  domain.Converter
	mode  EditMode
	now   func() time.Time
	state domain.State
}

// Option configures a Controller.
type Option func(*Controller)

// WithEditMode selects how converted-value edits propagate.
func WithEditMode(m EditMode) Option {
	return func(c *Controller) { c.mode = m }
}

// WithClock overrides the clock used to timestamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New returns a Controller converting through conv. Call Start before Apply.
func New(conv domain.Converter, opts ...Option) *Controller {
	c := &Controller{conv: conv, mode: EditInverse, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Start resets the session to its defaults: the first category, its first
// two units and an input of DefaultInput, converted once.
func (c *Controller) Start(ctx context.Context) error {
	category, from, to := catalog.Default()
	s := domain.State{Category: category, FromUnit: from, ToUnit: to, InputValue: DefaultInput}
	r, err := c.conv.Convert(ctx, s.InputValue, s.FromUnit, s.ToUnit, s.Category)
	if err != nil {
		return err
	}
	s.ConvertedValue, s.Formula = r.Value, r.Formula
	c.state = s
	return nil
}

// Apply runs one event through Transition and stores the result.
func (c *Controller) Apply(ctx context.Context, ev Event) (domain.State, error) {
	next, err := Transition(ctx, c.conv, c.mode, c.state, ev)
	if err != nil {
		return c.state, err
	}
	c.state = next
	return next, nil
}

// OnCategoryChange selects category and resets both units.
func (c *Controller) OnCategoryChange(ctx context.Context, category string) (domain.State, error) {
	return c.Apply(ctx, CategoryChanged{Category: category})
}

// Convert sets the units and input value in one step and converts once.
// The units must belong to the current category.
func (c *Controller) Convert(ctx context.Context, value float64, from, to string) (domain.State, error) {
	for _, u := range []string{from, to} {
		if !catalog.HasUnit(c.state.Category, u) {
			return c.state, apperrors.UnknownUnit(c.state.Category, u)
		}
	}
	next := c.state
	next.FromUnit, next.ToUnit, next.InputValue = from, to, value
	r, err := c.conv.Convert(ctx, value, from, to, next.Category)
	if err != nil {
		return c.state, err
	}
	next.ConvertedValue, next.Formula = r.Value, r.Formula
	c.state = next
	return next, nil
}

// State returns the current state.
func (c *Controller) State() domain.State { return c.state }

// Mode returns the configured edit mode.
func (c *Controller) Mode() EditMode { return c.mode }

// Units returns the unit list of the current category.
func (c *Controller) Units() []string {
	units, _ := catalog.UnitsOf(c.state.Category)
	return units
}

// Snapshot captures the current state as a history entry.
func (c *Controller) Snapshot() domain.HistoryEntry {
	return domain.HistoryEntry{At: c.now(), State: c.state}
}

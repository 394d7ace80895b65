package session_test

import (
	"context"
	stderrors "errors"
	"math"
	"testing"
	"time"

	"unitconv/internal/convert"
	"unitconv/internal/domain"
	apperrors "unitconv/internal/errors"
	"unitconv/internal/session"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

type stubLookup struct {
	rate float64
	err  error
}

func (s stubLookup) LookupRate(_ context.Context, _, _ string, amount float64) (domain.Quote, error) {
	if s.err != nil {
		return domain.Quote{}, s.err
	}
	return domain.Quote{Rate: s.rate, Result: amount * s.rate}, nil
}

func started(t *testing.T, lookup domain.RateLookup, opts ...session.Option) *session.Controller {
	t.Helper()
	c := session.New(convert.New(lookup, nil), opts...)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return c
}

func TestStart_Defaults(t *testing.T) {
	c := started(t, nil)
	s := c.State()
	if s.Category != "Length" || s.FromUnit != "meters" || s.ToUnit != "kilometers" {
		t.Fatalf("unexpected default selection %+v", s)
	}
	if s.InputValue != session.DefaultInput || !near(s.ConvertedValue, 0.001) {
		t.Fatalf("unexpected default values %+v", s)
	}
	if s.Formula == "" {
		t.Fatal("expected a formula after Start")
	}
}

func TestCategoryChange_ResetsUnits(t *testing.T) {
	ctx := context.Background()
	c := started(t, nil)
	if _, err := c.Apply(ctx, session.ToUnitChanged{Unit: "miles"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	s, err := c.OnCategoryChange(ctx, "Temperature")
	if err != nil {
		t.Fatalf("OnCategoryChange: %v", err)
	}
	if s.FromUnit != "Celsius" || s.ToUnit != "Fahrenheit" {
		t.Fatalf("units not reset: %+v", s)
	}
	if !near(s.ConvertedValue, 33.8) {
		t.Fatalf("want 1C = 33.8F, got %v", s.ConvertedValue)
	}
}

func TestCategoryChange_ResetsEvenWhenUnitsStillValid(t *testing.T) {
	ctx := context.Background()
	c := started(t, nil)
	if _, err := c.Convert(ctx, 3, "yards", "feet"); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	s, err := c.OnCategoryChange(ctx, "Length")
	if err != nil {
		t.Fatalf("OnCategoryChange: %v", err)
	}
	if s.FromUnit != "meters" || s.ToUnit != "kilometers" {
		t.Fatalf("want first two units of Length, got %q %q", s.FromUnit, s.ToUnit)
	}
	if s.InputValue != 3 {
		t.Fatalf("input value should survive a category change, got %v", s.InputValue)
	}
}

func TestInvalidEventsLeaveStateUntouched(t *testing.T) {
	ctx := context.Background()
	c := started(t, nil)
	before := c.State()

	if _, err := c.Apply(ctx, session.FromUnitChanged{Unit: "grams"}); !apperrors.IsCode(err, apperrors.CodeUnknownUnit) {
		t.Fatalf("want UnknownUnit, got %v", err)
	}
	if _, err := c.OnCategoryChange(ctx, "Luminosity"); !apperrors.IsCode(err, apperrors.CodeUnknownCategory) {
		t.Fatalf("want UnknownCategory, got %v", err)
	}
	if _, err := c.Convert(ctx, 5, "meters", "Kelvin"); !apperrors.IsCode(err, apperrors.CodeUnknownUnit) {
		t.Fatalf("want UnknownUnit, got %v", err)
	}
	if c.State() != before {
		t.Fatalf("state changed after rejected events: %+v vs %+v", c.State(), before)
	}
}

func TestInputEdited_Recomputes(t *testing.T) {
	ctx := context.Background()
	c := started(t, nil)
	if _, err := c.Apply(ctx, session.ToUnitChanged{Unit: "feet"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	s, err := c.Apply(ctx, session.InputEdited{Value: 10})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !near(s.ConvertedValue, 32.8084) {
		t.Fatalf("want ~32.8084, got %v", s.ConvertedValue)
	}
}

func TestConvertedEdited_Inverse(t *testing.T) {
	ctx := context.Background()
	c := started(t, nil)
	if _, err := c.Convert(ctx, 1, "meters", "feet"); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	s, err := c.Apply(ctx, session.ConvertedEdited{Value: 32.8084})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !near(s.InputValue, 10) {
		t.Fatalf("want input ~10, got %v", s.InputValue)
	}
	if !near(s.ConvertedValue, 32.8084) {
		t.Fatalf("want converted ~32.8084, got %v", s.ConvertedValue)
	}
}

func TestConvertedEdited_Mirror(t *testing.T) {
	ctx := context.Background()
	c := started(t, nil, session.WithEditMode(session.EditMirror))
	if _, err := c.Convert(ctx, 1, "meters", "feet"); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	s, err := c.Apply(ctx, session.ConvertedEdited{Value: 2})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.InputValue != 2 {
		t.Fatalf("mirror mode should copy the edited value, got %v", s.InputValue)
	}
	if !near(s.ConvertedValue, 2*3.28084) {
		t.Fatalf("want forward conversion of 2, got %v", s.ConvertedValue)
	}
}

func TestConvertedEdited_TemperatureInverse(t *testing.T) {
	ctx := context.Background()
	c := started(t, nil)
	if _, err := c.OnCategoryChange(ctx, "Temperature"); err != nil {
		t.Fatalf("OnCategoryChange: %v", err)
	}
	s, err := c.Apply(ctx, session.ConvertedEdited{Value: 212})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !near(s.InputValue, 100) || !near(s.ConvertedValue, 212) {
		t.Fatalf("want 100C <-> 212F, got %+v", s)
	}
}

func TestCurrencyFailureKeepsSessionUsable(t *testing.T) {
	ctx := context.Background()
	c := started(t, stubLookup{err: stderrors.New("provider down")})

	s, err := c.OnCategoryChange(ctx, "Currency")
	if err != nil {
		t.Fatalf("currency failure must not surface: %v", err)
	}
	if s.FromUnit != "USD" || s.ToUnit != "EUR" {
		t.Fatalf("unexpected units %+v", s)
	}
	if s.ConvertedValue != s.InputValue || s.Formula != convert.FormulaFailed {
		t.Fatalf("want identity with failure formula, got %+v", s)
	}

	s, err = c.OnCategoryChange(ctx, "Weight")
	if err != nil {
		t.Fatalf("OnCategoryChange: %v", err)
	}
	if !near(s.ConvertedValue, 0.001) {
		t.Fatalf("want 1g = 0.001kg after failure, got %+v", s)
	}
}

func TestCurrencySuccess(t *testing.T) {
	ctx := context.Background()
	c := started(t, stubLookup{rate: 0.5})
	if _, err := c.OnCategoryChange(ctx, "Currency"); err != nil {
		t.Fatalf("OnCategoryChange: %v", err)
	}
	s, err := c.Apply(ctx, session.InputEdited{Value: 8})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.ConvertedValue != 4 {
		t.Fatalf("want 4, got %v", s.ConvertedValue)
	}
	s, err = c.Apply(ctx, session.ConvertedEdited{Value: 10})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// EUR->USD through the stub uses the same rate, so the inverse is 5 USD.
	if s.InputValue != 5 || s.ConvertedValue != 2.5 {
		t.Fatalf("unexpected %+v", s)
	}
}

// oneWayLookup quotes from->to at rate and fails for every other pair.
type oneWayLookup struct {
	from, to string
	rate     float64
	calls    int
}

func (l *oneWayLookup) LookupRate(_ context.Context, from, to string, amount float64) (domain.Quote, error) {
	l.calls++
	if from != l.from || to != l.to {
		return domain.Quote{}, stderrors.New("pair not quoted")
	}
	return domain.Quote{Rate: l.rate, Result: amount * l.rate}, nil
}

func TestConvertedEdited_InverseRateUnavailable(t *testing.T) {
	ctx := context.Background()
	lookup := &oneWayLookup{from: "USD", to: "EUR", rate: 0.5}
	c := started(t, lookup)
	before, err := c.OnCategoryChange(ctx, "Currency")
	if err != nil {
		t.Fatalf("OnCategoryChange: %v", err)
	}
	lookup.calls = 0

	s, err := c.Apply(ctx, session.ConvertedEdited{Value: 10})
	if err != nil {
		t.Fatalf("currency failure must not surface: %v", err)
	}
	if lookup.calls != 1 {
		t.Fatalf("want only the backward lookup, got %d calls", lookup.calls)
	}
	if s.InputValue != before.InputValue || s.ConvertedValue != 10 || s.Formula != convert.FormulaFailed {
		t.Fatalf("edit should stay visible as failed, got %+v", s)
	}
	if c.State() != s {
		t.Fatalf("controller state %+v does not match %+v", c.State(), s)
	}
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	conv := convert.New(nil, nil)
	in := domain.State{Category: "Length", FromUnit: "meters", ToUnit: "feet", InputValue: 1}
	out, err := session.Transition(context.Background(), conv, session.EditInverse, in, session.InputEdited{Value: 10})
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if in.InputValue != 1 || in.ConvertedValue != 0 {
		t.Fatalf("input state mutated: %+v", in)
	}
	if out.InputValue != 10 || !near(out.ConvertedValue, 32.8084) {
		t.Fatalf("unexpected next state %+v", out)
	}
}

func TestSnapshotUsesClock(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := started(t, nil, session.WithClock(func() time.Time { return at }))
	h := c.Snapshot()
	if !h.At.Equal(at) || h.State != c.State() {
		t.Fatalf("unexpected snapshot %+v", h)
	}
}

func TestUnitsFollowCategory(t *testing.T) {
	c := started(t, nil)
	if _, err := c.OnCategoryChange(context.Background(), "Frequency"); err != nil {
		t.Fatalf("OnCategoryChange: %v", err)
	}
	units := c.Units()
	if len(units) != 4 || units[0] != "hertz" {
		t.Fatalf("unexpected units %v", units)
	}
}

func TestParseEditMode(t *testing.T) {
	tests := map[string]session.EditMode{"": session.EditInverse, "inverse": session.EditInverse, "Mirror": session.EditMirror}
	for in, want := range tests {
		got, err := session.ParseEditMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseEditMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := session.ParseEditMode("backwards"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

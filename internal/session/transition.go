package session

import (
	"context"
	"fmt"

	"unitconv/internal/catalog"
	"unitconv/internal/convert"
	"unitconv/internal/domain"
	apperrors "unitconv/internal/errors"
)

// Transition applies ev to s and returns the next state.
//
// On error the returned state is s unchanged.
func Transition(
	ctx context.Context,
	conv domain.Converter,
	mode EditMode,
	s domain.State,
	ev Event,
) (domain.State, error) {
	next := s
	switch e := ev.(type) {
	case CategoryChanged:
		from, to, err := catalog.FirstPair(e.Category)
		if err != nil {
			return s, err
		}
		next.Category, next.FromUnit, next.ToUnit = e.Category, from, to

	case FromUnitChanged:
		if !catalog.HasUnit(s.Category, e.Unit) {
			return s, apperrors.UnknownUnit(s.Category, e.Unit)
		}
		next.FromUnit = e.Unit

	case ToUnitChanged:
		if !catalog.HasUnit(s.Category, e.Unit) {
			return s, apperrors.UnknownUnit(s.Category, e.Unit)
		}
		next.ToUnit = e.Unit

	case InputEdited:
		next.InputValue = e.Value

	case ConvertedEdited:
		next.InputValue = e.Value
		if mode == EditInverse {
			back, err := conv.Convert(ctx, e.Value, s.ToUnit, s.FromUnit, s.Category)
			if err != nil {
				return s, err
			}
			// A failed backward rate leaves no input to derive; keep the
			// edit visible instead of re-running the forward lookup.
			if back.Formula == convert.FormulaFailed {
				next.InputValue = s.InputValue
				next.ConvertedValue = e.Value
				next.Formula = convert.FormulaFailed
				return next, nil
			}
			next.InputValue = back.Value
		}

	default:
		return s, fmt.Errorf("session: unsupported event %T", ev)
	}

	r, err := conv.Convert(ctx, next.InputValue, next.FromUnit, next.ToUnit, next.Category)
	if err != nil {
		return s, err
	}
	next.ConvertedValue = r.Value
	next.Formula = r.Formula
	return next, nil
}

package catalog

import (
	"slices"

	"unitconv/internal/domain"
	apperrors "unitconv/internal/errors"
)

var index = buildIndex()

func buildIndex() map[string]int {
	m := make(map[string]int, len(entries))
	for i, e := range entries {
		m[e.category.Name] = i
	}
	return m
}

// ListCategories returns the category names in display order.
func ListCategories() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.category.Name
	}
	return out
}

// Categories returns every category with its units and strategy, in display order.
func Categories() []domain.Category {
	out := make([]domain.Category, len(entries))
	for i, e := range entries {
		out[i] = clone(e.category)
	}
	return out
}

// Lookup returns the named category.
func Lookup(category string) (domain.Category, error) {
	e, err := find(category)
	if err != nil {
		return domain.Category{}, err
	}
	return clone(e.category), nil
}

// UnitsOf returns the units of category in display order.
func UnitsOf(category string) ([]string, error) {
	e, err := find(category)
	if err != nil {
		return nil, err
	}
	return slices.Clone(e.category.Units), nil
}

// HasUnit reports whether unit is listed under category.
func HasUnit(category, unit string) bool {
	e, err := find(category)
	if err != nil {
		return false
	}
	return slices.Contains(e.category.Units, unit)
}

// Factor returns the scale factor of unit relative to the base unit of a
// linear category. Non-linear categories have no factors, so every unit
// lookup against them fails with UnknownUnit.
func Factor(category, unit string) (float64, error) {
	e, err := find(category)
	if err != nil {
		return 0, err
	}
	f, ok := e.factors[unit]
	if !ok {
		return 0, apperrors.UnknownUnit(category, unit)
	}
	return f, nil
}

// Default returns the first category and its first two units, the initial
// selection of a new session.
func Default() (category, from, to string) {
	c := entries[0].category
	return c.Name, c.Units[0], c.Units[1]
}

// FirstPair returns the first two units of category.
func FirstPair(category string) (from, to string, err error) {
	e, err := find(category)
	if err != nil {
		return "", "", err
	}
	units := e.category.Units
	if len(units) < 2 {
		return units[0], units[0], nil
	}
	return units[0], units[1], nil
}

// Infer returns the first category, in display order, listing both units.
func Infer(from, to string) (string, error) {
	for _, e := range entries {
		if slices.Contains(e.category.Units, from) && slices.Contains(e.category.Units, to) {
			return e.category.Name, nil
		}
	}
	return "", apperrors.UnknownUnit("", from+"/"+to)
}

func find(category string) (entry, error) {
	i, ok := index[category]
	if !ok {
		return entry{}, apperrors.UnknownCategory(category)
	}
	return entries[i], nil
}

func clone(c domain.Category) domain.Category {
	c.Units = slices.Clone(c.Units)
	return c
}

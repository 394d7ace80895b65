// Package catalog is the static registry of unit categories.
//
// It holds, for every category, the ordered unit list shown to the user and
// the conversion strategy that applies. For linear categories it also holds
// the scale factor of each unit relative to the category's base unit, where
// the base unit has factor 1. All data is fixed at startup and never mutated;
// every accessor returns copies.
package catalog

package meals

import (
	"math"
	"strconv"
	"strings"
)

// MaxPriceCeiling bounds the diner-facing price filter. Raw input is
// clamped into [0, MaxPriceCeiling] before it reaches the engine.
const MaxPriceCeiling = 25

// Filters is the transient browsing criteria for the public menu.
// An empty category set means "all categories"; an empty restriction set
// means "no restriction required".
type Filters struct {
	Categories          []Category
	DietaryRestrictions []DietaryRestriction
	MaxPrice            float64
	Day                 Weekday
}

// DefaultFilters returns the unconstrained criteria for a day.
func DefaultFilters(day Weekday) Filters {
	return Filters{MaxPrice: MaxPriceCeiling, Day: day}
}

// Clear resets every constraint but keeps the selected day.
func (f Filters) Clear() Filters {
	return DefaultFilters(f.Day)
}

// ClampMaxPrice clamps a raw ceiling into [0, MaxPriceCeiling].
func ClampMaxPrice(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > MaxPriceCeiling {
		return MaxPriceCeiling
	}
	return v
}

// ParseMaxPrice coerces raw price-ceiling input. Empty or unparseable
// input falls back to the unconstrained ceiling, then the value is clamped.
func ParseMaxPrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		v = MaxPriceCeiling
	}
	return ClampMaxPrice(v)
}

// Filter returns the meals matching the criteria, preserving input order.
// It is pure: the input slice is never modified and an empty result is a
// valid outcome.
//
// Predicates short-circuit in order: day availability, category
// membership, conjunctive dietary restrictions, price ceiling.
func Filter(all []Meal, f Filters) []Meal {
	out := make([]Meal, 0, len(all))
	for _, m := range all {
		if !m.Availability.On(f.Day) {
			continue
		}
		if len(f.Categories) > 0 && !containsCategory(f.Categories, m.Category) {
			continue
		}
		if !hasAllRestrictions(m, f.DietaryRestrictions) {
			continue
		}
		if m.Price > f.MaxPrice {
			continue
		}
		out = append(out, m)
	}
	return out
}

func containsCategory(set []Category, c Category) bool {
	for _, want := range set {
		if want == c {
			return true
		}
	}
	return false
}

func hasAllRestrictions(m Meal, required []DietaryRestriction) bool {
	for _, r := range required {
		if !m.HasRestriction(r) {
			return false
		}
	}
	return true
}

// Search is the admin-list filter: a case-insensitive substring match on
// name or description, conjoined with an exact category match unless the
// category is "all" (or empty).
func Search(all []Meal, term, category string) []Meal {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]Meal, 0, len(all))
	for _, m := range all {
		if term != "" &&
			!strings.Contains(strings.ToLower(m.Name), term) &&
			!strings.Contains(strings.ToLower(m.Description), term) {
			continue
		}
		if category != "" && category != "all" && string(m.Category) != category {
			continue
		}
		out = append(out, m)
	}
	return out
}

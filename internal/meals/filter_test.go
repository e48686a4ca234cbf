package meals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuFixture() []Meal {
	pancakes := Meal{
		ID:           "pancakes",
		Name:         "Classic Pancake Stack",
		Description:  "Fluffy buttermilk pancakes",
		Price:        8.99,
		Category:     CategoryBreakfast,
		Availability: EveryDay(),
	}

	salmon := Meal{
		ID:                  "salmon",
		Name:                "Grilled Salmon Dinner",
		Description:         "Atlantic salmon fillet",
		Price:               16.99,
		Category:            CategoryDinner,
		DietaryRestrictions: []DietaryRestriction{GlutenFree, DairyFree},
		Availability: WeekAvailability{
			Monday: false, Tuesday: true, Wednesday: true, Thursday: true, Friday: true,
		},
	}

	buddhaBowl := Meal{
		ID:                  "buddha-bowl",
		Name:                "Buddha Bowl Quinoa",
		Description:         "Quinoa bowl with chickpeas",
		Price:               11.99,
		Category:            CategoryLunch,
		DietaryRestrictions: []DietaryRestriction{Vegetarian, Vegan, GlutenFree},
		Availability:        EveryDay(),
	}

	wrap := Meal{
		ID:                  "wrap",
		Name:                "Mediterranean Wrap",
		Description:         "Whole wheat wrap with hummus",
		Price:               9.49,
		Category:            CategoryLunch,
		DietaryRestrictions: []DietaryRestriction{Vegetarian},
		Availability:        EveryDay(),
	}

	return []Meal{pancakes, salmon, buddhaBowl, wrap}
}

func ids(matched []Meal) []string {
	out := make([]string, 0, len(matched))
	for _, m := range matched {
		out = append(out, m.ID)
	}
	return out
}

func TestFilterNoConstraintsKeepsOrder(t *testing.T) {
	all := menuFixture()

	matched := Filter(all, DefaultFilters(Tuesday))

	assert.Equal(t, []string{"pancakes", "salmon", "buddha-bowl", "wrap"}, ids(matched))
}

func TestFilterDayAvailability(t *testing.T) {
	all := menuFixture()

	// salmon is off the menu on mondays only
	monday := Filter(all, DefaultFilters(Monday))
	assert.NotContains(t, ids(monday), "salmon")

	tuesday := Filter(all, DefaultFilters(Tuesday))
	assert.Contains(t, ids(tuesday), "salmon")
}

func TestFilterCategoryMembership(t *testing.T) {
	all := menuFixture()

	f := DefaultFilters(Tuesday)
	f.Categories = []Category{CategoryLunch}
	assert.Equal(t, []string{"buddha-bowl", "wrap"}, ids(Filter(all, f)))

	// multi-select behaves as a membership test
	f.Categories = []Category{CategoryLunch, CategoryBreakfast}
	assert.Equal(t, []string{"pancakes", "buddha-bowl", "wrap"}, ids(Filter(all, f)))
}

func TestFilterDietaryRestrictionsAreConjunctive(t *testing.T) {
	all := menuFixture()

	f := DefaultFilters(Tuesday)
	f.DietaryRestrictions = []DietaryRestriction{Vegetarian, GlutenFree}

	matched := Filter(all, f)

	// the wrap carries vegetarian only, so it fails the conjunction
	assert.Equal(t, []string{"buddha-bowl"}, ids(matched))
}

func TestFilterPriceCeiling(t *testing.T) {
	all := menuFixture()

	f := DefaultFilters(Tuesday)
	f.MaxPrice = 10

	assert.Equal(t, []string{"pancakes", "wrap"}, ids(Filter(all, f)))
}

func TestFilterResultIsSubsequence(t *testing.T) {
	all := menuFixture()

	f := DefaultFilters(Tuesday)
	f.MaxPrice = 12

	matched := Filter(all, f)

	i := 0
	for _, m := range all {
		if i < len(matched) && matched[i].ID == m.ID {
			i++
		}
	}
	assert.Equal(t, len(matched), i, "result must preserve input order")

	for _, m := range matched {
		assert.True(t, m.Availability.On(f.Day))
		assert.LessOrEqual(t, m.Price, f.MaxPrice)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	all := menuFixture()

	f := DefaultFilters(Monday)
	f.DietaryRestrictions = []DietaryRestriction{Vegetarian}
	f.MaxPrice = 12

	once := Filter(all, f)
	twice := Filter(once, f)

	assert.Equal(t, once, twice)
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	all := menuFixture()

	f := DefaultFilters(Monday)
	f.MaxPrice = 0

	matched := Filter(all, f)

	require.NotNil(t, matched)
	assert.Empty(t, matched)
}

func TestClearPreservesDay(t *testing.T) {
	f := Filters{
		Categories:          []Category{CategoryDinner},
		DietaryRestrictions: []DietaryRestriction{Vegan},
		MaxPrice:            10,
		Day:                 Thursday,
	}

	cleared := f.Clear()

	assert.Equal(t, Thursday, cleared.Day)
	assert.Equal(t, Filter(menuFixture(), DefaultFilters(Thursday)), Filter(menuFixture(), cleared))
}

func TestClampMaxPrice(t *testing.T) {
	assert.Equal(t, 0.0, ParseMaxPrice("-5"))
	assert.Equal(t, 25.0, ParseMaxPrice("999"))
	assert.Equal(t, 12.5, ParseMaxPrice("12.5"))
	assert.Equal(t, 25.0, ParseMaxPrice(""))
	assert.Equal(t, 25.0, ParseMaxPrice("not-a-number"))
	assert.Equal(t, 25.0, ParseMaxPrice("NaN"))
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)

	day, err = ParseWeekday("friday")
	require.NoError(t, err)
	assert.Equal(t, Friday, day)

	_, err = ParseWeekday("saturday")
	assert.Error(t, err)
}

func TestSearchMatchesNameOrDescription(t *testing.T) {
	all := menuFixture()

	assert.Equal(t, []string{"salmon"}, ids(Search(all, "SALMON", "all")))
	assert.Equal(t, []string{"wrap"}, ids(Search(all, "hummus", "all")))
	assert.Equal(t, []string{"buddha-bowl", "wrap"}, ids(Search(all, "", "lunch")))
	assert.Equal(t, []string{"wrap"}, ids(Search(all, "wrap", "lunch")))
	assert.Empty(t, ids(Search(all, "wrap", "dinner")))
}

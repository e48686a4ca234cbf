package meals

import (
	"errors"
	"fmt"
	"time"
)

// Category is the fixed meal category enumeration.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategorySnack     Category = "snack"
	CategoryBeverage  Category = "beverage"
)

// Categories lists every valid category, in menu order.
var Categories = []Category{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategorySnack,
	CategoryBeverage,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DietaryRestriction is one tag of the fixed dietary enumeration.
type DietaryRestriction string

const (
	Vegetarian DietaryRestriction = "vegetarian"
	Vegan      DietaryRestriction = "vegan"
	GlutenFree DietaryRestriction = "gluten-free"
	DairyFree  DietaryRestriction = "dairy-free"
	NutFree    DietaryRestriction = "nut-free"
	Keto       DietaryRestriction = "keto"
	LowSodium  DietaryRestriction = "low-sodium"
)

var DietaryRestrictions = []DietaryRestriction{
	Vegetarian,
	Vegan,
	GlutenFree,
	DairyFree,
	NutFree,
	Keto,
	LowSodium,
}

func (r DietaryRestriction) Valid() bool {
	for _, known := range DietaryRestrictions {
		if r == known {
			return true
		}
	}
	return false
}

// Weekday is a serving day. The cafeteria only serves monday through friday.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// ParseWeekday maps a raw string onto a serving day, defaulting to monday
// for empty input.
func ParseWeekday(s string) (Weekday, error) {
	if s == "" {
		return Monday, nil
	}
	for _, day := range Weekdays {
		if Weekday(s) == day {
			return day, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// Nutrition is the per-meal nutrition record. All values are non-negative.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// WeekAvailability maps each serving day to an availability flag. The five
// weekday fields always exist, so the map invariant holds structurally.
type WeekAvailability struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
}

// EveryDay is the default availability for new drafts.
func EveryDay() WeekAvailability {
	return WeekAvailability{
		Monday:    true,
		Tuesday:   true,
		Wednesday: true,
		Thursday:  true,
		Friday:    true,
	}
}

// On reports whether the meal is served on the given day.
func (a WeekAvailability) On(day Weekday) bool {
	switch day {
	case Monday:
		return a.Monday
	case Tuesday:
		return a.Tuesday
	case Wednesday:
		return a.Wednesday
	case Thursday:
		return a.Thursday
	case Friday:
		return a.Friday
	}
	return false
}

func (a WeekAvailability) with(day Weekday, served bool) WeekAvailability {
	switch day {
	case Monday:
		a.Monday = served
	case Tuesday:
		a.Tuesday = served
	case Wednesday:
		a.Wednesday = served
	case Thursday:
		a.Thursday = served
	case Friday:
		a.Friday = served
	}
	return a
}

// Meal is one persisted menu item.
type Meal struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Description         string               `json:"description"`
	Image               string               `json:"image"`
	Price               float64              `json:"price"`
	Category            Category             `json:"category"`
	DietaryRestrictions []DietaryRestriction `json:"dietaryRestrictions"`
	Ingredients         []string             `json:"ingredients"`
	Nutrition           Nutrition            `json:"nutrition"`
	Availability        WeekAvailability     `json:"availability"`
	IsAvailable         bool                 `json:"isAvailable"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// HasRestriction reports whether the meal carries the given dietary tag.
func (m Meal) HasRestriction(r DietaryRestriction) bool {
	for _, tag := range m.DietaryRestrictions {
		if tag == r {
			return true
		}
	}
	return false
}

// MealFormData is a draft projection of Meal without id, overall
// availability flag, or timestamps. It is what the form controller emits
// and what mutations accept.
type MealFormData struct {
	Name                string               `json:"name"`
	Description         string               `json:"description"`
	Image               string               `json:"image"`
	Price               float64              `json:"price"`
	Category            Category             `json:"category"`
	DietaryRestrictions []DietaryRestriction `json:"dietaryRestrictions"`
	Ingredients         []string             `json:"ingredients"`
	Nutrition           Nutrition            `json:"nutrition"`
	Availability        WeekAvailability     `json:"availability"`
}

var ErrInvalidForm = errors.New("invalid meal form")

// Validate checks the required-field and range invariants. Inputs are
// normally constrained upstream; this is the last line before persistence.
func (d MealFormData) Validate() error {
	switch {
	case d.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidForm)
	case d.Description == "":
		return fmt.Errorf("%w: description is required", ErrInvalidForm)
	case d.Image == "":
		return fmt.Errorf("%w: image is required", ErrInvalidForm)
	case d.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidForm)
	case !d.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", ErrInvalidForm, d.Category)
	}
	if d.Nutrition.Calories < 0 || d.Nutrition.Protein < 0 ||
		d.Nutrition.Carbs < 0 || d.Nutrition.Fat < 0 {
		return fmt.Errorf("%w: nutrition values must not be negative", ErrInvalidForm)
	}
	for _, tag := range d.DietaryRestrictions {
		if !tag.Valid() {
			return fmt.Errorf("%w: unknown dietary restriction %q", ErrInvalidForm, tag)
		}
	}
	return nil
}

package meals

import "time"

var seedDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// SeedMeals is the bundled starter menu used when no snapshot or database
// content exists. Callers receive a fresh copy; the bundled data itself is
// never modified.
func SeedMeals() []Meal {
	return []Meal{
		{
			ID:          "1",
			Name:        "Classic Pancake Stack",
			Description: "Fluffy buttermilk pancakes served with fresh berries, maple syrup, and crispy bacon strips",
			Image:       "breakfast-meal.jpg",
			Price:       8.99,
			Category:    CategoryBreakfast,
			Ingredients: []string{"flour", "eggs", "milk", "butter", "berries", "bacon", "maple syrup"},
			Nutrition:   Nutrition{Calories: 650, Protein: 22, Carbs: 75, Fat: 28},
			Availability: WeekAvailability{
				Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: true,
			},
			IsAvailable: true,
			CreatedAt:   seedDate,
			UpdatedAt:   seedDate,
		},
		{
			ID:                  "2",
			Name:                "Caesar Chicken Salad",
			Description:         "Grilled chicken breast over fresh romaine lettuce with parmesan cheese, croutons, and Caesar dressing",
			Image:               "lunch-meal.jpg",
			Price:               12.49,
			Category:            CategoryLunch,
			DietaryRestrictions: []DietaryRestriction{GlutenFree},
			Ingredients:         []string{"chicken breast", "romaine lettuce", "parmesan cheese", "croutons", "caesar dressing"},
			Nutrition:           Nutrition{Calories: 420, Protein: 35, Carbs: 18, Fat: 24},
			Availability: WeekAvailability{
				Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: true,
			},
			IsAvailable: true,
			CreatedAt:   seedDate,
			UpdatedAt:   seedDate,
		},
		{
			ID:                  "3",
			Name:                "Grilled Salmon Dinner",
			Description:         "Atlantic salmon fillet grilled to perfection, served with roasted seasonal vegetables and rice pilaf",
			Image:               "dinner-meal.jpg",
			Price:               16.99,
			Category:            CategoryDinner,
			DietaryRestrictions: []DietaryRestriction{GlutenFree, DairyFree},
			Ingredients:         []string{"salmon fillet", "broccoli", "carrots", "bell peppers", "rice", "herbs"},
			Nutrition:           Nutrition{Calories: 580, Protein: 42, Carbs: 45, Fat: 26},
			Availability: WeekAvailability{
				Monday: false, Tuesday: true, Wednesday: true, Thursday: true, Friday: true,
			},
			IsAvailable: true,
			CreatedAt:   seedDate,
			UpdatedAt:   seedDate,
		},
		{
			ID:                  "4",
			Name:                "Buddha Bowl Quinoa",
			Description:         "Nutritious quinoa bowl with roasted chickpeas, avocado, sweet potato, and tahini dressing",
			Image:               "vegetarian-meal.jpg",
			Price:               11.99,
			Category:            CategoryLunch,
			DietaryRestrictions: []DietaryRestriction{Vegetarian, Vegan, GlutenFree},
			Ingredients:         []string{"quinoa", "chickpeas", "avocado", "sweet potato", "tahini", "spinach", "hemp seeds"},
			Nutrition:           Nutrition{Calories: 520, Protein: 18, Carbs: 62, Fat: 22},
			Availability: WeekAvailability{
				Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: true,
			},
			IsAvailable: true,
			CreatedAt:   seedDate,
			UpdatedAt:   seedDate,
		},
		{
			ID:                  "5",
			Name:                "Mediterranean Wrap",
			Description:         "Whole wheat wrap filled with hummus, grilled vegetables, feta cheese, and mixed greens",
			Image:               "lunch-meal.jpg",
			Price:               9.49,
			Category:            CategoryLunch,
			DietaryRestrictions: []DietaryRestriction{Vegetarian},
			Ingredients:         []string{"whole wheat wrap", "hummus", "zucchini", "bell peppers", "feta cheese", "mixed greens"},
			Nutrition:           Nutrition{Calories: 380, Protein: 16, Carbs: 48, Fat: 14},
			Availability: WeekAvailability{
				Monday: true, Tuesday: false, Wednesday: true, Thursday: true, Friday: true,
			},
			IsAvailable: true,
			CreatedAt:   seedDate,
			UpdatedAt:   seedDate,
		},
		{
			ID:                  "6",
			Name:                "Avocado Toast Special",
			Description:         "Multigrain toast topped with smashed avocado, cherry tomatoes, and everything bagel seasoning",
			Image:               "breakfast-meal.jpg",
			Price:               7.99,
			Category:            CategoryBreakfast,
			DietaryRestrictions: []DietaryRestriction{Vegetarian, Vegan},
			Ingredients:         []string{"multigrain bread", "avocado", "cherry tomatoes", "everything bagel seasoning", "lemon"},
			Nutrition:           Nutrition{Calories: 320, Protein: 12, Carbs: 32, Fat: 18},
			Availability: WeekAvailability{
				Monday: true, Tuesday: true, Wednesday: false, Thursday: true, Friday: true,
			},
			IsAvailable: true,
			CreatedAt:   seedDate,
			UpdatedAt:   seedDate,
		},
		{
			ID:          "7",
			Name:        "BBQ Pulled Pork Sandwich",
			Description: "Slow-cooked pulled pork in BBQ sauce on a brioche bun with coleslaw and pickles",
			Image:       "dinner-meal.jpg",
			Price:       13.99,
			Category:    CategoryDinner,
			Ingredients: []string{"pork shoulder", "BBQ sauce", "brioche bun", "coleslaw", "pickles"},
			Nutrition:   Nutrition{Calories: 680, Protein: 38, Carbs: 52, Fat: 32},
			Availability: WeekAvailability{
				Monday: true, Tuesday: true, Wednesday: true, Thursday: false, Friday: true,
			},
			IsAvailable: true,
			CreatedAt:   seedDate,
			UpdatedAt:   seedDate,
		},
		{
			ID:                  "8",
			Name:                "Green Smoothie Bowl",
			Description:         "Refreshing blend of spinach, banana, mango, and coconut milk topped with granola and berries",
			Image:               "vegetarian-meal.jpg",
			Price:               6.99,
			Category:            CategoryBreakfast,
			DietaryRestrictions: []DietaryRestriction{Vegetarian, Vegan, GlutenFree},
			Ingredients:         []string{"spinach", "banana", "mango", "coconut milk", "granola", "mixed berries"},
			Nutrition:           Nutrition{Calories: 290, Protein: 8, Carbs: 58, Fat: 6},
			Availability: WeekAvailability{
				Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: false,
			},
			IsAvailable: true,
			CreatedAt:   seedDate,
			UpdatedAt:   seedDate,
		},
	}
}

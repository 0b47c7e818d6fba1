package seed

import (
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/rs/zerolog/log"
)

// defaultCategories are created on first startup so new installs have a
// usable category list out of the box.
var defaultCategories = []domain.Category{
	{Name: "Food & Dining", Description: "Restaurants, groceries, and food delivery"},
	{Name: "Transportation", Description: "Fuel, public transport, and vehicle maintenance"},
	{Name: "Shopping", Description: "Clothing, electronics, and general purchases"},
	{Name: "Entertainment", Description: "Movies, games, and leisure activities"},
	{Name: "Bills & Utilities", Description: "Electricity, water, internet, and phone bills"},
	{Name: "Healthcare", Description: "Medical expenses, pharmacy, and insurance"},
	{Name: "Travel", Description: "Flights, hotels, and vacation expenses"},
	{Name: "Education", Description: "Courses, books, and tuition fees"},
	{Name: "Personal Care", Description: "Grooming, fitness, and wellness"},
	{Name: "Other", Description: "Miscellaneous expenses"},
}

// Categories inserts the default categories if the table is empty.
// It is safe to call on every startup.
func Categories(repo domain.CategoryRepository) error {
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Int64("count", count).Msg("Categories already seeded")
		return nil
	}

	for i := range defaultCategories {
		category := defaultCategories[i]
		if _, err := repo.Create(&category); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(defaultCategories)).Msg("Seeded default categories")
	return nil
}

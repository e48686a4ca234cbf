package meals

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means the mutation target id is absent from the store.
	ErrNotFound = errors.New("meal not found")
)

// Repository defines all persistence operations for meals. The service
// depends only on this interface.
type Repository interface {
	// GetAll returns every meal, oldest first.
	GetAll(ctx context.Context) ([]Meal, error)

	// Create persists a fully populated new meal.
	Create(ctx context.Context, m Meal) error

	// Update replaces the stored record matching m.ID.
	Update(ctx context.Context, m Meal) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error

	// SetAvailability flips the overall availability flag and stores the
	// refreshed update timestamp.
	SetAvailability(ctx context.Context, m Meal) error
}

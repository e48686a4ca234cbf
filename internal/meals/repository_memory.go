package meals

import (
	"context"
	"sync"
)

// InMemoryRepository keeps meals in process memory, oldest first. Used by
// tests and as the base of the snapshot-backed local repository.
type InMemoryRepository struct {
	mu    sync.Mutex
	meals []Meal
}

func NewInMemoryRepository(seed []Meal) *InMemoryRepository {
	return &InMemoryRepository{meals: append([]Meal(nil), seed...)}
}

func (r *InMemoryRepository) GetAll(ctx context.Context) ([]Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Meal(nil), r.meals...), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, m Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meals = append(r.meals, m)
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, m Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.meals {
		if r.meals[i].ID == m.ID {
			r.meals[i] = m
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.meals {
		if r.meals[i].ID == id {
			r.meals = append(r.meals[:i], r.meals[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) SetAvailability(ctx context.Context, m Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.meals {
		if r.meals[i].ID == m.ID {
			r.meals[i].IsAvailable = m.IsAvailable
			r.meals[i].UpdatedAt = m.UpdatedAt
			return nil
		}
	}
	return ErrNotFound
}

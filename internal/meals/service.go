package meals

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service owns the authoritative in-memory meal collection for the
// process and applies every mutation through the repository first. A
// repository failure leaves the collection at its prior state; there is no
// partial commit.
type Service struct {
	mu     sync.Mutex
	repo   Repository
	logger *zap.SugaredLogger
	meals  []Meal

	now func() time.Time
}

// NewService loads the full collection from the repository.
func NewService(ctx context.Context, repo Repository, logger *zap.SugaredLogger) (*Service, error) {
	all, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}
	return &Service{
		repo:   repo,
		logger: logger,
		meals:  all,
		now:    time.Now,
	}, nil
}

// Meals returns a copy of the collection in insertion order.
func (s *Service) Meals() []Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Meal(nil), s.meals...)
}

// Get returns one meal by id.
func (s *Service) Get(id string) (Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.meals[i], nil
	}
	return Meal{}, ErrNotFound
}

// Create assigns a fresh id and timestamps, persists the meal, then
// appends it to the collection. New meals start available.
func (s *Service) Create(ctx context.Context, form MealFormData) (Meal, error) {
	if err := form.Validate(); err != nil {
		return Meal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	m := mealFromForm(form)
	m.ID = uuid.New().String()
	m.IsAvailable = true
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Errorw("create meal failed", "name", form.Name, "error", err)
		return Meal{}, fmt.Errorf("persist meal: %w", err)
	}
	s.meals = append(s.meals, m)
	s.logger.Infow("meal created", "id", m.ID, "name", m.Name)
	return m, nil
}

// Update replaces every draft-covered field on the matching record and
// refreshes updatedAt.
func (s *Service) Update(ctx context.Context, id string, form MealFormData) (Meal, error) {
	if err := form.Validate(); err != nil {
		return Meal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Meal{}, ErrNotFound
	}
	prev := s.meals[i]

	m := mealFromForm(form)
	m.ID = prev.ID
	m.IsAvailable = prev.IsAvailable
	m.CreatedAt = prev.CreatedAt
	m.UpdatedAt = s.later(prev.UpdatedAt)

	if err := s.repo.Update(ctx, m); err != nil {
		s.logger.Errorw("update meal failed", "id", id, "error", err)
		return Meal{}, fmt.Errorf("persist meal: %w", err)
	}
	s.meals[i] = m
	return m, nil
}

// Delete removes the record, persisting the removal first.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Errorw("delete meal failed", "id", id, "error", err)
		return fmt.Errorf("persist removal: %w", err)
	}
	s.meals = append(s.meals[:i], s.meals[i+1:]...)
	s.logger.Infow("meal deleted", "id", id)
	return nil
}

// ToggleAvailability flips the overall availability flag and refreshes
// updatedAt.
func (s *Service) ToggleAvailability(ctx context.Context, id string) (Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Meal{}, ErrNotFound
	}
	m := s.meals[i]
	m.IsAvailable = !m.IsAvailable
	m.UpdatedAt = s.later(m.UpdatedAt)

	if err := s.repo.SetAvailability(ctx, m); err != nil {
		s.logger.Errorw("toggle availability failed", "id", id, "error", err)
		return Meal{}, fmt.Errorf("persist availability: %w", err)
	}
	s.meals[i] = m
	return m, nil
}

// Search filters the admin list by search term and category.
func (s *Service) Search(term, category string) []Meal {
	return Search(s.Meals(), term, category)
}

// Stats summarizes the collection for the admin dashboard cards.
type Stats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
	Vegetarian  int `json:"vegetarian"`
}

func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Total: len(s.meals)}
	for _, m := range s.meals {
		if m.IsAvailable {
			st.Available++
		} else {
			st.Unavailable++
		}
		if m.HasRestriction(Vegetarian) {
			st.Vegetarian++
		}
	}
	return st
}

func (s *Service) indexOf(id string) int {
	for i := range s.meals {
		if s.meals[i].ID == id {
			return i
		}
	}
	return -1
}

// later returns the current time, nudged forward if the clock has not
// advanced past the previous update so updatedAt strictly increases.
func (s *Service) later(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}
	return now
}

func mealFromForm(form MealFormData) Meal {
	return Meal{
		Name:                form.Name,
		Description:         form.Description,
		Image:               form.Image,
		Price:               form.Price,
		Category:            form.Category,
		DietaryRestrictions: append([]DietaryRestriction(nil), form.DietaryRestrictions...),
		Ingredients:         append([]string(nil), form.Ingredients...),
		Nutrition:           form.Nutrition,
		Availability:        form.Availability,
	}
}

package meals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// LocalRepository is the hosted-database fallback: a file-backed JSON
// snapshot of the full collection, rewritten after every mutation. If the
// snapshot is absent or unreadable it starts from the bundled seed
// dataset, which is never itself overwritten.
type LocalRepository struct {
	inner *InMemoryRepository
	path  string
}

// snapshotMeal mirrors Meal with timestamps as ISO-8601 strings, so the
// snapshot stays readable and diffable.
type snapshotMeal struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Description         string           `json:"description"`
	Image               string           `json:"image"`
	Price               float64          `json:"price"`
	Category            string           `json:"category"`
	DietaryRestrictions []string         `json:"dietaryRestrictions"`
	Ingredients         []string         `json:"ingredients"`
	Nutrition           Nutrition        `json:"nutrition"`
	Availability        WeekAvailability `json:"availability"`
	IsAvailable         bool             `json:"isAvailable"`
	CreatedAt           string           `json:"createdAt"`
	UpdatedAt           string           `json:"updatedAt"`
}

// NewLocalRepository loads the snapshot at path, falling back to the seed
// dataset when it is missing or corrupt.
func NewLocalRepository(path string, logger *zap.SugaredLogger) *LocalRepository {
	seed, err := loadSnapshot(path)
	switch {
	case err == nil:
		logger.Infow("meal snapshot loaded", "path", path, "meals", len(seed))
	case errors.Is(err, fs.ErrNotExist):
		seed = SeedMeals()
		logger.Infow("no meal snapshot, starting from seed data", "path", path)
	default:
		seed = SeedMeals()
		logger.Warnw("unreadable meal snapshot, starting from seed data",
			"path", path, "error", err)
	}
	return &LocalRepository{
		inner: NewInMemoryRepository(seed),
		path:  path,
	}
}

func (r *LocalRepository) GetAll(ctx context.Context) ([]Meal, error) {
	return r.inner.GetAll(ctx)
}

func (r *LocalRepository) Create(ctx context.Context, m Meal) error {
	if err := r.inner.Create(ctx, m); err != nil {
		return err
	}
	return r.save(ctx)
}

func (r *LocalRepository) Update(ctx context.Context, m Meal) error {
	if err := r.inner.Update(ctx, m); err != nil {
		return err
	}
	return r.save(ctx)
}

func (r *LocalRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	return r.save(ctx)
}

func (r *LocalRepository) SetAvailability(ctx context.Context, m Meal) error {
	if err := r.inner.SetAvailability(ctx, m); err != nil {
		return err
	}
	return r.save(ctx)
}

func (r *LocalRepository) save(ctx context.Context) error {
	all, err := r.inner.GetAll(ctx)
	if err != nil {
		return err
	}
	rows := make([]snapshotMeal, 0, len(all))
	for _, m := range all {
		rows = append(rows, snapshotMeal{
			ID:                  m.ID,
			Name:                m.Name,
			Description:         m.Description,
			Image:               m.Image,
			Price:               m.Price,
			Category:            string(m.Category),
			DietaryRestrictions: restrictionStrings(m.DietaryRestrictions),
			Ingredients:         m.Ingredients,
			Nutrition:           m.Nutrition,
			Availability:        m.Availability,
			IsAvailable:         m.IsAvailable,
			CreatedAt:           m.CreatedAt.UTC().Format(time.RFC3339Nano),
			UpdatedAt:           m.UpdatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

func loadSnapshot(path string) ([]Meal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []snapshotMeal
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	out := make([]Meal, 0, len(rows))
	for _, row := range rows {
		createdAt, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse createdAt for meal %s: %w", row.ID, err)
		}
		updatedAt, err := time.Parse(time.RFC3339Nano, row.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse updatedAt for meal %s: %w", row.ID, err)
		}
		tags := make([]DietaryRestriction, 0, len(row.DietaryRestrictions))
		for _, t := range row.DietaryRestrictions {
			tags = append(tags, DietaryRestriction(t))
		}
		out = append(out, Meal{
			ID:                  row.ID,
			Name:                row.Name,
			Description:         row.Description,
			Image:               row.Image,
			Price:               row.Price,
			Category:            Category(row.Category),
			DietaryRestrictions: tags,
			Ingredients:         row.Ingredients,
			Nutrition:           row.Nutrition,
			Availability:        row.Availability,
			IsAvailable:         row.IsAvailable,
			CreatedAt:           createdAt,
			UpdatedAt:           updatedAt,
		})
	}
	return out, nil
}

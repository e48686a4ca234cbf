package meals

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const mealColumns = `
	id,
	name,
	description,
	image,
	price,
	category,
	dietary_restrictions,
	ingredients,
	calories,
	protein,
	carbs,
	fat,
	availability_monday,
	availability_tuesday,
	availability_wednesday,
	availability_thursday,
	availability_friday,
	is_available,
	created_at,
	updated_at
`

func scanMeal(row pgx.Row) (Meal, error) {
	var (
		m            Meal
		restrictions []string
	)
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.Image,
		&m.Price,
		&m.Category,
		&restrictions,
		&m.Ingredients,
		&m.Nutrition.Calories,
		&m.Nutrition.Protein,
		&m.Nutrition.Carbs,
		&m.Nutrition.Fat,
		&m.Availability.Monday,
		&m.Availability.Tuesday,
		&m.Availability.Wednesday,
		&m.Availability.Thursday,
		&m.Availability.Friday,
		&m.IsAvailable,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return Meal{}, err
	}
	m.DietaryRestrictions = make([]DietaryRestriction, 0, len(restrictions))
	for _, r := range restrictions {
		m.DietaryRestrictions = append(m.DietaryRestrictions, DietaryRestriction(r))
	}
	return m, nil
}

func restrictionStrings(tags []DietaryRestriction) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, string(tag))
	}
	return out
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]Meal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+mealColumns+`
		FROM meals
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []Meal
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, m)
	}
	return all, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, m Meal) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO meals (`+mealColumns+`)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
	`,
		m.ID,
		m.Name,
		m.Description,
		m.Image,
		m.Price,
		m.Category,
		restrictionStrings(m.DietaryRestrictions),
		m.Ingredients,
		m.Nutrition.Calories,
		m.Nutrition.Protein,
		m.Nutrition.Carbs,
		m.Nutrition.Fat,
		m.Availability.Monday,
		m.Availability.Tuesday,
		m.Availability.Wednesday,
		m.Availability.Thursday,
		m.Availability.Friday,
		m.IsAvailable,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, m Meal) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE meals SET
			name = $2,
			description = $3,
			image = $4,
			price = $5,
			category = $6,
			dietary_restrictions = $7,
			ingredients = $8,
			calories = $9,
			protein = $10,
			carbs = $11,
			fat = $12,
			availability_monday = $13,
			availability_tuesday = $14,
			availability_wednesday = $15,
			availability_thursday = $16,
			availability_friday = $17,
			updated_at = $18
		WHERE id = $1
	`,
		m.ID,
		m.Name,
		m.Description,
		m.Image,
		m.Price,
		m.Category,
		restrictionStrings(m.DietaryRestrictions),
		m.Ingredients,
		m.Nutrition.Calories,
		m.Nutrition.Protein,
		m.Nutrition.Carbs,
		m.Nutrition.Fat,
		m.Availability.Monday,
		m.Availability.Tuesday,
		m.Availability.Wednesday,
		m.Availability.Thursday,
		m.Availability.Friday,
		m.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetAvailability(ctx context.Context, m Meal) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE meals SET
			is_available = $2,
			updated_at = $3
		WHERE id = $1
	`, m.ID, m.IsAvailable, m.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Get fetches a single meal straight from the database, bypassing the
// service's in-memory collection.
func (r *PostgresRepository) Get(ctx context.Context, id string) (Meal, error) {
	m, err := scanMeal(r.db.QueryRow(ctx, `
		SELECT `+mealColumns+`
		FROM meals
		WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Meal{}, ErrNotFound
	}
	return m, err
}

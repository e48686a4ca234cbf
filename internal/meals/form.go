package meals

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores an image blob and returns its public reference.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// ImageRemover is implemented by stores that can discard an uploaded
// image once its meal record is gone. Removal runs after the record is
// already deleted, so it is best effort.
type ImageRemover interface {
	Remove(ctx context.Context, imageURL string) error
}

var ErrUploadFailed = errors.New("image upload failed")

// ImageFile is a raw image chosen for a draft but not yet uploaded.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Form holds an in-progress meal draft. Every setter returns a new Form
// with exactly one field or sub-field replaced, so a half-edited draft can
// always be dropped without side effects.
type Form struct {
	data            MealFormData
	ingredientsText string
	pending         *ImageFile
}

// NewForm seeds an empty draft: lunch, served every day.
func NewForm() Form {
	return Form{
		data: MealFormData{
			Category:     CategoryLunch,
			Availability: EveryDay(),
		},
	}
}

// EditForm seeds a draft from an existing meal.
func EditForm(m Meal) Form {
	return Form{
		data: MealFormData{
			Name:                m.Name,
			Description:         m.Description,
			Image:               m.Image,
			Price:               m.Price,
			Category:            m.Category,
			DietaryRestrictions: append([]DietaryRestriction(nil), m.DietaryRestrictions...),
			Ingredients:         append([]string(nil), m.Ingredients...),
			Nutrition:           m.Nutrition,
			Availability:        m.Availability,
		},
		ingredientsText: strings.Join(m.Ingredients, ", "),
	}
}

func (f Form) WithName(name string) Form {
	f.data.Name = name
	return f
}

func (f Form) WithDescription(description string) Form {
	f.data.Description = description
	return f
}

func (f Form) WithImage(ref string) Form {
	f.data.Image = ref
	return f
}

func (f Form) WithPrice(price float64) Form {
	f.data.Price = price
	return f
}

func (f Form) WithCategory(c Category) Form {
	f.data.Category = c
	return f
}

func (f Form) WithIngredientsText(text string) Form {
	f.ingredientsText = text
	return f
}

func (f Form) WithCalories(v float64) Form {
	f.data.Nutrition.Calories = v
	return f
}

func (f Form) WithProtein(v float64) Form {
	f.data.Nutrition.Protein = v
	return f
}

func (f Form) WithCarbs(v float64) Form {
	f.data.Nutrition.Carbs = v
	return f
}

func (f Form) WithFat(v float64) Form {
	f.data.Nutrition.Fat = v
	return f
}

func (f Form) WithDayAvailable(day Weekday, served bool) Form {
	f.data.Availability = f.data.Availability.with(day, served)
	return f
}

// WithRestriction adds or removes a dietary tag. Adding an already-present
// tag is a no-op, so the set never holds duplicates.
func (f Form) WithRestriction(r DietaryRestriction, on bool) Form {
	current := f.data.DietaryRestrictions
	next := make([]DietaryRestriction, 0, len(current)+1)
	for _, tag := range current {
		if tag != r {
			next = append(next, tag)
		}
	}
	if on {
		next = append(next, r)
	}
	f.data.DietaryRestrictions = next
	return f
}

// WithImageFile attaches a raw file to upload on submit. The previous
// image reference stays on the draft until the upload succeeds.
func (f Form) WithImageFile(file ImageFile) Form {
	f.pending = &file
	return f
}

// Preview returns the reference to display while editing: the pending
// file's local name before upload completes, otherwise the stored image.
func (f Form) Preview() string {
	if f.pending != nil {
		return "pending:" + f.pending.Name
	}
	return f.data.Image
}

// Data is a snapshot of the draft as edited so far. Ingredients text is
// not reconciled until Submit.
func (f Form) Data() MealFormData {
	return f.data
}

// ParseAmount coerces numeric field input. Empty or invalid input becomes
// zero, never an error.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

// ReconcileIngredients splits the free-text field on commas, trims each
// segment, and drops empties, preserving order.
func ReconcileIngredients(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Submit finalizes the draft. If a file is attached it is uploaded first
// and the resulting reference substituted for the image field; on upload
// failure the submit aborts, the draft is left untouched, and no record is
// emitted. Submit performs no persistence.
func (f Form) Submit(ctx context.Context, up Uploader) (MealFormData, error) {
	out := f.data
	if f.pending != nil {
		ext := strings.ToLower(filepath.Ext(f.pending.Name))
		if ext == "" {
			return MealFormData{}, fmt.Errorf("%w: file has no extension", ErrUploadFailed)
		}
		if up == nil {
			return MealFormData{}, fmt.Errorf("%w: no storage configured", ErrUploadFailed)
		}
		key := fmt.Sprintf("meal-images/%s%s", uuid.New().String(), ext)
		url, err := up.Upload(ctx, key, f.pending.ContentType, bytes.NewReader(f.pending.Data))
		if err != nil {
			return MealFormData{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		out.Image = url
	}
	out.Ingredients = ReconcileIngredients(f.ingredientsText)
	if err := out.Validate(); err != nil {
		return MealFormData{}, err
	}
	return out, nil
}

package meals

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service  *Service
	uploader Uploader
}

func NewHandler(service *Service, uploader Uploader) *Handler {
	return &Handler{service: service, uploader: uploader}
}

// fail renders the standard error envelope: a short title plus a
// human-readable description.
func fail(c *gin.Context, status int, title, description string) {
	c.JSON(status, gin.H{"title": title, "description": description})
}

// failDestructive marks failures of destructive operations so clients can
// style them apart from informational ones.
func failDestructive(c *gin.Context, status int, title, description string) {
	c.JSON(status, gin.H{"title": title, "description": description, "severity": "destructive"})
}

//
// --------------------------------------------------
// GET /meals  (public menu)
// --------------------------------------------------
//

func (h *Handler) List(c *gin.Context) {
	day, err := ParseWeekday(c.Query("day"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid day", err.Error())
		return
	}

	filters := DefaultFilters(day)
	filters.MaxPrice = ParseMaxPrice(c.Query("maxPrice"))
	for _, raw := range c.QueryArray("category") {
		cat := Category(raw)
		if !cat.Valid() {
			fail(c, http.StatusBadRequest, "Invalid category", fmt.Sprintf("unknown category %q", raw))
			return
		}
		filters.Categories = append(filters.Categories, cat)
	}
	for _, raw := range c.QueryArray("dietary") {
		tag := DietaryRestriction(raw)
		if !tag.Valid() {
			fail(c, http.StatusBadRequest, "Invalid dietary restriction", fmt.Sprintf("unknown restriction %q", raw))
			return
		}
		filters.DietaryRestrictions = append(filters.DietaryRestrictions, tag)
	}

	matched := Filter(h.service.Meals(), filters)
	c.JSON(http.StatusOK, gin.H{
		"day":   day,
		"count": len(matched),
		"meals": matched,
	})
}

//
// --------------------------------------------------
// GET /admin/meals  (search + category filter)
// --------------------------------------------------
//

func (h *Handler) AdminList(c *gin.Context) {
	matched := h.service.Search(c.Query("search"), c.DefaultQuery("category", "all"))
	c.JSON(http.StatusOK, gin.H{
		"count": len(matched),
		"meals": matched,
	})
}

//
// --------------------------------------------------
// GET /admin/meals/stats
// --------------------------------------------------
//

func (h *Handler) AdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats())
}

//
// --------------------------------------------------
// POST /admin/meals
// --------------------------------------------------
//

func (h *Handler) CreateMeal(c *gin.Context) {
	form, ok := h.bindForm(c, NewForm())
	if !ok {
		return
	}
	data, ok := h.submitForm(c, form)
	if !ok {
		return
	}

	meal, err := h.service.Create(c.Request.Context(), data)
	if err != nil {
		h.failMutation(c, err, "Meal not created")
		return
	}
	c.JSON(http.StatusCreated, meal)
}

//
// --------------------------------------------------
// PUT /admin/meals/:id
// --------------------------------------------------
//

func (h *Handler) UpdateMeal(c *gin.Context) {
	id := c.Param("id")
	existing, err := h.service.Get(id)
	if err != nil {
		fail(c, http.StatusNotFound, "Meal not found", fmt.Sprintf("no meal with id %s", id))
		return
	}

	form, ok := h.bindForm(c, EditForm(existing))
	if !ok {
		return
	}
	data, ok := h.submitForm(c, form)
	if !ok {
		return
	}

	meal, err := h.service.Update(c.Request.Context(), id, data)
	if err != nil {
		h.failMutation(c, err, "Meal not updated")
		return
	}
	c.JSON(http.StatusOK, meal)
}

//
// --------------------------------------------------
// DELETE /admin/meals/:id
// --------------------------------------------------
//

func (h *Handler) DeleteMeal(c *gin.Context) {
	id := c.Param("id")
	meal, err := h.service.Get(id)
	if err != nil {
		failDestructive(c, http.StatusNotFound, "Meal not found", fmt.Sprintf("no meal with id %s", id))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			failDestructive(c, http.StatusNotFound, "Meal not found", fmt.Sprintf("no meal with id %s", id))
			return
		}
		failDestructive(c, http.StatusBadGateway, "Meal not deleted", "The menu store rejected the removal. Nothing was changed.")
		return
	}

	// The record is gone either way; a stranded blob is not worth failing
	// the request over.
	if remover, ok := h.uploader.(ImageRemover); ok {
		_ = remover.Remove(c.Request.Context(), meal.Image)
	}
	c.JSON(http.StatusOK, gin.H{
		"title":       "Meal deleted",
		"description": "The meal has been removed from the menu.",
	})
}

//
// --------------------------------------------------
// PATCH /admin/meals/:id/availability
// --------------------------------------------------
//

func (h *Handler) ToggleAvailability(c *gin.Context) {
	id := c.Param("id")
	meal, err := h.service.ToggleAvailability(c.Request.Context(), id)
	if err != nil {
		h.failMutation(c, err, "Availability not changed")
		return
	}
	c.JSON(http.StatusOK, meal)
}

//
// --------------------------------------------------
// POST /admin/images  (standalone upload)
// --------------------------------------------------
//

func (h *Handler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "No image", "Attach the file under the \"image\" form field.")
		return
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		fail(c, http.StatusBadRequest, "Invalid file", "The image file needs an extension.")
		return
	}

	f, err := header.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "Unreadable file", err.Error())
		return
	}
	defer f.Close()

	key := fmt.Sprintf("meal-images/%s%s", uuid.New().String(), ext)
	url, err := h.uploader.Upload(c.Request.Context(), key, header.Header.Get("Content-Type"), f)
	if err != nil {
		fail(c, http.StatusBadGateway, "Upload failed", "The image could not be stored. Try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}

// mealRequest is the JSON body for create/update. Ingredients,
// nutrition, and availability are pointers so an omitted field keeps the
// draft's current value rather than clearing it.
type mealRequest struct {
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Image               string            `json:"image"`
	Price               float64           `json:"price"`
	Category            string            `json:"category"`
	DietaryRestrictions []string          `json:"dietaryRestrictions"`
	Ingredients         *string           `json:"ingredients"`
	Nutrition           *Nutrition        `json:"nutrition"`
	Availability        *WeekAvailability `json:"availability"`
}

// bindForm applies the request body onto the draft through the per-field
// setters. Multipart bodies may carry an image file, which the form
// uploads on submit.
func (h *Handler) bindForm(c *gin.Context, form Form) (Form, bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		return h.bindMultipartForm(c, form)
	}

	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request", "The meal payload could not be parsed.")
		return Form{}, false
	}

	form = form.
		WithName(req.Name).
		WithDescription(req.Description).
		WithPrice(req.Price).
		WithCategory(Category(req.Category))
	if req.Ingredients != nil {
		form = form.WithIngredientsText(*req.Ingredients)
	}
	if req.Image != "" {
		form = form.WithImage(req.Image)
	}
	if req.Nutrition != nil {
		form = form.
			WithCalories(req.Nutrition.Calories).
			WithProtein(req.Nutrition.Protein).
			WithCarbs(req.Nutrition.Carbs).
			WithFat(req.Nutrition.Fat)
	}
	if req.Availability != nil {
		for _, day := range Weekdays {
			form = form.WithDayAvailable(day, req.Availability.On(day))
		}
	}
	for _, tag := range DietaryRestrictions {
		form = form.WithRestriction(tag, contains(req.DietaryRestrictions, string(tag)))
	}
	return form, true
}

func (h *Handler) bindMultipartForm(c *gin.Context, form Form) (Form, bool) {
	form = form.
		WithName(c.PostForm("name")).
		WithDescription(c.PostForm("description")).
		WithPrice(ParseAmount(c.PostForm("price"))).
		WithCategory(Category(c.PostForm("category"))).
		WithIngredientsText(c.PostForm("ingredients")).
		WithCalories(ParseAmount(c.PostForm("calories"))).
		WithProtein(ParseAmount(c.PostForm("protein"))).
		WithCarbs(ParseAmount(c.PostForm("carbs"))).
		WithFat(ParseAmount(c.PostForm("fat")))

	if image := c.PostForm("image"); image != "" {
		form = form.WithImage(image)
	}
	for _, day := range Weekdays {
		if raw, set := c.GetPostForm("availability_" + string(day)); set {
			form = form.WithDayAvailable(day, raw == "true")
		}
	}
	if tags, set := c.GetPostFormArray("dietaryRestrictions"); set {
		for _, tag := range DietaryRestrictions {
			form = form.WithRestriction(tag, contains(tags, string(tag)))
		}
	}

	header, err := c.FormFile("imageFile")
	if err == nil {
		f, err := header.Open()
		if err != nil {
			fail(c, http.StatusBadRequest, "Unreadable file", err.Error())
			return Form{}, false
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			fail(c, http.StatusBadRequest, "Unreadable file", err.Error())
			return Form{}, false
		}
		form = form.WithImageFile(ImageFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return form, true
}

func (h *Handler) submitForm(c *gin.Context, form Form) (MealFormData, bool) {
	data, err := form.Submit(c.Request.Context(), h.uploader)
	if err != nil {
		switch {
		case errors.Is(err, ErrUploadFailed):
			fail(c, http.StatusBadGateway, "Upload failed", "The image could not be stored, so the meal was not saved.")
		case errors.Is(err, ErrInvalidForm):
			fail(c, http.StatusBadRequest, "Invalid meal", err.Error())
		default:
			fail(c, http.StatusBadRequest, "Invalid meal", err.Error())
		}
		return MealFormData{}, false
	}
	return data, true
}

func (h *Handler) failMutation(c *gin.Context, err error, title string) {
	switch {
	case errors.Is(err, ErrNotFound):
		fail(c, http.StatusNotFound, "Meal not found", "The meal is no longer in the collection.")
	case errors.Is(err, ErrInvalidForm):
		fail(c, http.StatusBadRequest, title, err.Error())
	default:
		fail(c, http.StatusBadGateway, title, "The menu store rejected the change. Nothing was saved.")
	}
}

func contains(set []string, want string) bool {
	for _, s := range set {
		if s == want {
			return true
		}
	}
	return false
}

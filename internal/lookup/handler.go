package lookup

import (
	"strings"

	"estates-backend/internal/database"
	"estates-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// -------------------------
// Request Types
// -------------------------

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type CreateSubcategoryRequest struct {
	Name string `json:"name"`
}

type CreateNamedRequest struct {
	Name string `json:"name"`
}

type CreateAmenityRequest struct {
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

type CreateDeveloperRequest struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url"`
	About   *string `json:"about"`
}

type CreateCityRequest struct {
	Name  string  `json:"name"`
	State *string `json:"state"`
}

type UpdateNamedRequest struct {
	Name *string `json:"name"`
}

type UpdateAmenityRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

type UpdateDeveloperRequest struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logo_url"`
	About   *string `json:"about"`
}

type UpdateCityRequest struct {
	Name  *string `json:"name"`
	State *string `json:"state"`
}

// -------------------------
// Categories
// -------------------------

// POST /categories
func CreateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if strings.TrimSpace(body.Name) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		category := models.Category{Name: strings.TrimSpace(body.Name)}
		if err := database.DB.Create(&category).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot create category")
		}
		return c.Status(fiber.StatusCreated).JSON(category)
	}
}

// GET /categories
func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categories []models.Category
		if err := database.DB.Preload("Subcategories").Order("name asc").Find(&categories).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot list categories")
		}
		return c.JSON(categories)
	}
}

// POST /categories/:id/subcategories
func CreateSubcategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryID, err := c.ParamsInt("id")
		if err != nil || categoryID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
		}

		var body CreateSubcategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if strings.TrimSpace(body.Name) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		var category models.Category
		if err := database.DB.First(&category, "id = ?", categoryID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}

		sub := models.Subcategory{
			CategoryID: category.ID,
			Name:       strings.TrimSpace(body.Name),
		}
		if err := database.DB.Create(&sub).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot create subcategory")
		}
		return c.Status(fiber.StatusCreated).JSON(sub)
	}
}

// GET /categories/:id/subcategories
func ListSubcategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryID, err := c.ParamsInt("id")
		if err != nil || categoryID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
		}

		subs, err := SubcategoriesByCategory(database.DB, uint(categoryID))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot list subcategories")
		}
		return c.JSON(subs)
	}
}

// -------------------------
// Amenities
// -------------------------

// POST /amenities
func CreateAmenityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateAmenityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if strings.TrimSpace(body.Name) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		amenity := models.Amenity{Name: strings.TrimSpace(body.Name), Icon: body.Icon}
		if err := database.DB.Create(&amenity).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot create amenity")
		}
		return c.Status(fiber.StatusCreated).JSON(amenity)
	}
}

// GET /amenities
func ListAmenitiesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var amenities []models.Amenity
		if err := database.DB.Order("name asc").Find(&amenities).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot list amenities")
		}
		return c.JSON(amenities)
	}
}

// PUT /amenities/:id
func UpdateAmenityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		var body UpdateAmenityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		var amenity models.Amenity
		if err := database.DB.First(&amenity, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "amenity not found")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			amenity.Name = name
		}
		if body.Icon != nil {
			amenity.Icon = body.Icon
		}

		if err := database.DB.Save(&amenity).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot update amenity")
		}
		return c.JSON(amenity)
	}
}

// DELETE /amenities/:id
func DeleteAmenityHandler() fiber.Handler {
	return deleteByIDHandler(&models.Amenity{}, "amenity")
}

// -------------------------
// Key features
// -------------------------

// POST /keyfeatures
func CreateKeyFeatureHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateNamedRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if strings.TrimSpace(body.Name) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		feature := models.KeyFeature{Name: strings.TrimSpace(body.Name)}
		if err := database.DB.Create(&feature).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot create key feature")
		}
		return c.Status(fiber.StatusCreated).JSON(feature)
	}
}

// GET /keyfeatures
func ListKeyFeaturesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var features []models.KeyFeature
		if err := database.DB.Order("name asc").Find(&features).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot list key features")
		}
		return c.JSON(features)
	}
}

// PUT /keyfeatures/:id
func UpdateKeyFeatureHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		var body UpdateNamedRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		var feature models.KeyFeature
		if err := database.DB.First(&feature, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "key feature not found")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			feature.Name = name
		}

		if err := database.DB.Save(&feature).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot update key feature")
		}
		return c.JSON(feature)
	}
}

// DELETE /keyfeatures/:id
func DeleteKeyFeatureHandler() fiber.Handler {
	return deleteByIDHandler(&models.KeyFeature{}, "key feature")
}

// -------------------------
// Nearest-to landmarks
// -------------------------

// POST /nearestto
func CreateNearestToHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateNamedRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if strings.TrimSpace(body.Name) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		landmark := models.NearestTo{Name: strings.TrimSpace(body.Name)}
		if err := database.DB.Create(&landmark).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot create landmark")
		}
		return c.Status(fiber.StatusCreated).JSON(landmark)
	}
}

// GET /nearestto
func ListNearestToHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var landmarks []models.NearestTo
		if err := database.DB.Order("name asc").Find(&landmarks).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot list landmarks")
		}
		return c.JSON(landmarks)
	}
}

// PUT /nearestto/:id
func UpdateNearestToHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		var body UpdateNamedRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		var landmark models.NearestTo
		if err := database.DB.First(&landmark, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "landmark not found")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			landmark.Name = name
		}

		if err := database.DB.Save(&landmark).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot update landmark")
		}
		return c.JSON(landmark)
	}
}

// DELETE /nearestto/:id
func DeleteNearestToHandler() fiber.Handler {
	return deleteByIDHandler(&models.NearestTo{}, "landmark")
}

// -------------------------
// Developers
// -------------------------

// POST /developers
func CreateDeveloperHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateDeveloperRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if strings.TrimSpace(body.Name) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		developer := models.Developer{
			Name:    strings.TrimSpace(body.Name),
			LogoURL: body.LogoURL,
			About:   body.About,
		}
		if err := database.DB.Create(&developer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot create developer")
		}
		return c.Status(fiber.StatusCreated).JSON(developer)
	}
}

// GET /developers
func ListDevelopersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var developers []models.Developer
		if err := database.DB.Order("name asc").Find(&developers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot list developers")
		}
		return c.JSON(developers)
	}
}

// PUT /developers/:id
func UpdateDeveloperHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		var body UpdateDeveloperRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		var developer models.Developer
		if err := database.DB.First(&developer, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "developer not found")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			developer.Name = name
		}
		if body.LogoURL != nil {
			developer.LogoURL = body.LogoURL
		}
		if body.About != nil {
			developer.About = body.About
		}

		if err := database.DB.Save(&developer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot update developer")
		}
		return c.JSON(developer)
	}
}

// DELETE /developers/:id
func DeleteDeveloperHandler() fiber.Handler {
	return deleteByIDHandler(&models.Developer{}, "developer")
}

// -------------------------
// Cities
// -------------------------

// POST /cities
func CreateCityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if strings.TrimSpace(body.Name) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		city := models.City{Name: strings.TrimSpace(body.Name), State: body.State}
		if err := database.DB.Create(&city).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot create city")
		}
		return c.Status(fiber.StatusCreated).JSON(city)
	}
}

// GET /cities
func ListCitiesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cities []models.City
		if err := database.DB.Order("name asc").Find(&cities).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot list cities")
		}
		return c.JSON(cities)
	}
}

// PUT /cities/:id
func UpdateCityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		var body UpdateCityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		var city models.City
		if err := database.DB.First(&city, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "city not found")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			city.Name = name
		}
		if body.State != nil {
			city.State = body.State
		}

		if err := database.DB.Save(&city).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot update city")
		}
		return c.JSON(city)
	}
}

// DELETE /cities/:id
func DeleteCityHandler() fiber.Handler {
	return deleteByIDHandler(&models.City{}, "city")
}

// deleteByIDHandler deletes one row of the given model by the :id param.
func deleteByIDHandler(model interface{}, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}

		res := database.DB.Delete(model, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot delete "+label)
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, label+" not found")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

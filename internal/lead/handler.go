package lead

import (
	"strings"

	"estates-backend/internal/database"
	"estates-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// -------------------------
// Request Types
// -------------------------

type CreateLeadRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

// -------------------------
// Handlers
// -------------------------

// POST /leads
func CreateLeadHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLeadRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Email = strings.TrimSpace(body.Email)
		if body.Name == "" || body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name and email are required")
		}
		if !strings.Contains(body.Email, "@") {
			return fiber.NewError(fiber.StatusBadRequest, "invalid email")
		}

		lead := models.Lead{Name: body.Name, Email: body.Email, Phone: body.Phone}
		if err := database.DB.Create(&lead).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot record lead")
		}
		return c.Status(fiber.StatusCreated).JSON(lead)
	}
}

// GET /leads
func ListLeadsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var leads []models.Lead
		if err := database.DB.Order("created_at desc").Find(&leads).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "cannot list leads")
		}
		return c.JSON(leads)
	}
}

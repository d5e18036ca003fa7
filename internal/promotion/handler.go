package promotion

import (
	"time"

	"estates-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

type AddFeaturedRequest struct {
	PropertyID uint   `json:"property_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Cities     []uint `json:"cities"`
}

type AddGalleryRequest struct {
	PropertyID  uint   `json:"property_id"`
	GalleryFrom string `json:"gallery_from"`
	GalleryTo   string `json:"gallery_to"`
}

func parseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, field+" is required")
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, field+" must be YYYY-MM-DD")
	}
	return t, nil
}

// POST /addtofeatured
func AddToFeaturedHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddFeaturedRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		start, err := parseDate(body.StartDate, "start_date")
		if err != nil {
			return err
		}
		end, err := parseDate(body.EndDate, "end_date")
		if err != nil {
			return err
		}

		err = svc.AddFeatured(FeaturedInput{
			PropertyID: body.PropertyID,
			StartDate:  start,
			EndDate:    end,
			CityIDs:    body.Cities,
		})
		if err != nil {
			return apperr.ToFiber(err, "failed to add featured placement")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
	}
}

// DELETE /featured/:property_id
func RemoveFeaturedHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("property_id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
		}

		if err := svc.RemoveFeatured(uint(id)); err != nil {
			return apperr.ToFiber(err, "failed to remove featured placement")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// GET /featuredids
func FeaturedIDsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ids, err := svc.ActiveFeaturedIDs()
		if err != nil {
			return apperr.ToFiber(err, "failed to list featured properties")
		}
		return c.JSON(fiber.Map{"property_ids": ids})
	}
}

// GET /activefeatured
func ActiveFeaturedHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := svc.ActiveFeatured()
		if err != nil {
			return apperr.ToFiber(err, "failed to list featured properties")
		}
		return c.JSON(fiber.Map{"success": true, "count": len(rows), "data": rows})
	}
}

// POST /addgallary
func AddGalleryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddGalleryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		from, err := parseDate(body.GalleryFrom, "gallery_from")
		if err != nil {
			return err
		}
		to, err := parseDate(body.GalleryTo, "gallery_to")
		if err != nil {
			return err
		}

		err = svc.AddGallery(GalleryInput{
			PropertyID: body.PropertyID,
			From:       from,
			To:         to,
		})
		if err != nil {
			return apperr.ToFiber(err, "failed to add gallery placement")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
	}
}

// DELETE /removegallary/:property_id
func RemoveGalleryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("property_id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
		}

		if err := svc.RemoveGallery(uint(id)); err != nil {
			return apperr.ToFiber(err, "failed to remove gallery placement")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// GET /activegallary
func ActiveGalleryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := svc.ActiveGallery()
		if err != nil {
			return apperr.ToFiber(err, "failed to list gallery properties")
		}
		return c.JSON(fiber.Map{"success": true, "count": len(rows), "data": rows})
	}
}

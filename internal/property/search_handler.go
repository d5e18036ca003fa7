package property

import (
	"strconv"

	"estates-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// parseSearchFilters reads the faceted query parameters. Unparseable numeric
// values are a 400; unknown sort values are left to the allow-list fallback.
func parseSearchFilters(c *fiber.Ctx) (SearchFilters, error) {
	f := SearchFilters{
		City:             c.Query("city"),
		Locality:         c.Query("locality"),
		FurnishedStatus:  c.Query("furnished_status"),
		PossessionStatus: c.Query("possession_status"),
		SortBy:           c.Query("sort_by"),
		SortOrder:        c.Query("sort_order"),
	}

	if v := c.Query("property_type"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "invalid property_type")
		}
		id := uint(n)
		f.PropertyType = &id
	}
	if v := c.Query("bhk"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "invalid bhk")
		}
		f.Bedrooms = &n
	}
	if v := c.Query("min_price"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "invalid min_price")
		}
		f.MinPrice = &n
	}
	if v := c.Query("max_price"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "invalid max_price")
		}
		f.MaxPrice = &n
	}

	f.Page = c.QueryInt("page", 1)
	f.Limit = c.QueryInt("limit", defaultPageSize)

	return f, nil
}

func searchResponse(c *fiber.Ctx, result *SearchResult) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"count":      len(result.Data),
		"data":       result.Data,
		"pagination": result.Pagination,
	})
}

// GET /property/search
func SearchPropertiesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters, err := parseSearchFilters(c)
		if err != nil {
			return err
		}

		result, err := svc.Search(filters)
		if err != nil {
			return apperr.ToFiber(err, "search failed")
		}
		return searchResponse(c, result)
	}
}

// GET /property/minimal
func MinimalPropertiesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := svc.Minimal(c.QueryInt("limit", defaultPageSize))
		if err != nil {
			return apperr.ToFiber(err, "failed to list properties")
		}
		return c.JSON(fiber.Map{"success": true, "count": len(rows), "data": rows})
	}
}

// GET /property/ready-to-move
func ReadyToMoveHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := svc.ReadyToMove(c.QueryInt("page", 1), c.QueryInt("limit", defaultPageSize))
		if err != nil {
			return apperr.ToFiber(err, "failed to list properties")
		}
		return searchResponse(c, result)
	}
}

// GET /property/locality/:locality
func ByLocalityHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locality := c.Params("locality")
		if locality == "" {
			return fiber.NewError(fiber.StatusBadRequest, "locality is required")
		}

		result, err := svc.ByLocality(locality, c.QueryInt("page", 1), c.QueryInt("limit", defaultPageSize))
		if err != nil {
			return apperr.ToFiber(err, "failed to list properties")
		}
		return searchResponse(c, result)
	}
}

// GET /property/developer/:developer_id
func ByDeveloperHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("developer_id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid developer id")
		}

		result, err := svc.ByDeveloper(uint(id), c.QueryInt("page", 1), c.QueryInt("limit", defaultPageSize))
		if err != nil {
			return apperr.ToFiber(err, "failed to list properties")
		}
		return searchResponse(c, result)
	}
}

// GET /property/most-viewed
func MostViewedHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := svc.MostViewed(c.QueryInt("limit", defaultPageSize))
		if err != nil {
			return apperr.ToFiber(err, "failed to list properties")
		}
		return searchResponse(c, result)
	}
}

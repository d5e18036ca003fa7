package property

import (
	"strings"

	"estates-backend/internal/models"

	"gorm.io/gorm"
)

// SearchFilters are the optional facets of a listing query. Nil/empty
// filters are simply not applied; the rest combine with AND.
type SearchFilters struct {
	PropertyType     *uint
	Bedrooms         *int
	MinPrice         *float64
	MaxPrice         *float64
	DeveloperID      *uint
	City             string
	Locality         string
	FurnishedStatus  string
	PossessionStatus string

	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type SearchResult struct {
	Data       []models.Property `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// MinimalProperty is the trimmed projection used by summary listings.
type MinimalProperty struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	ExpectedPrice *float64 `json:"expected_price"`
	City          *string  `json:"city"`
	Locality      *string  `json:"locality"`
	Bedrooms      *int     `json:"bedrooms"`
	PrimaryImage  *string  `json:"primary_image"`
}

// Sort keys are allow-listed per table; anything outside both lists falls
// back to the default. Caller-supplied sort values are never interpolated.
var propertySortColumns = map[string]string{
	"created_at":     "properties.created_at",
	"expected_price": "properties.expected_price",
	"price_per_sqft": "properties.price_per_sqft",
	"title":          "properties.title",
	"view_count":     "properties.view_count",
}

var detailSortColumns = map[string]string{
	"bedrooms":      "property_details.bedrooms",
	"bathrooms":     "property_details.bathrooms",
	"built_up_area": "property_details.built_up_area",
	"carpet_area":   "property_details.carpet_area",
}

const (
	defaultSortColumn = "properties.created_at"
	defaultSortOrder  = "asc"
	defaultPageSize   = 10
)

// resolveSort maps sort_by/sort_order onto a safe ORDER BY clause.
func resolveSort(sortBy, sortOrder string) string {
	column := defaultSortColumn
	if c, ok := propertySortColumns[sortBy]; ok {
		column = c
	} else if c, ok := detailSortColumns[sortBy]; ok {
		column = c
	}

	order := defaultSortOrder
	if sortOrder == "asc" || sortOrder == "desc" {
		order = sortOrder
	}

	return column + " " + order
}

// normalizePage clamps paging inputs to their defaults and derives the
// offset: page ≥ 1, limit > 0, offset = (page-1)*limit.
func normalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	return page, limit, (page - 1) * limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards in a filter value so it matches
// literally inside the pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildSearchQuery composes the shared filter predicate. Both the page query
// and the count query derive from it, so the reported total always matches
// the filtered set.
func (s *Service) buildSearchQuery(f SearchFilters) *gorm.DB {
	q := s.db.Model(&models.Property{}).
		Joins("LEFT JOIN property_details ON property_details.property_id = properties.id")

	if f.PropertyType != nil {
		q = q.Where("properties.property_type_id = ?", *f.PropertyType)
	}
	if f.Bedrooms != nil {
		q = q.Where("property_details.bedrooms = ?", *f.Bedrooms)
	}
	if f.MinPrice != nil {
		q = q.Where("properties.expected_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("properties.expected_price <= ?", *f.MaxPrice)
	}
	if f.DeveloperID != nil {
		q = q.Where("properties.developer_id = ?", *f.DeveloperID)
	}
	if f.City != "" {
		q = q.Where("LOWER(property_details.city) = LOWER(?)", f.City)
	}
	if f.Locality != "" {
		q = q.Where("property_details.locality ILIKE ?", "%"+escapeLike(f.Locality)+"%")
	}
	if f.FurnishedStatus != "" {
		q = q.Where("property_details.furnished_status = ?", f.FurnishedStatus)
	}
	if f.PossessionStatus != "" {
		q = q.Where("properties.possession_status = ?", f.PossessionStatus)
	}

	return q
}

// Search runs the faceted page query plus a count over the identical
// predicate stripped of ordering and paging.
func (s *Service) Search(f SearchFilters) (*SearchResult, error) {
	base := s.buildSearchQuery(f)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	page, limit, offset := normalizePage(f.Page, f.Limit)

	var props []models.Property
	err := base.Session(&gorm.Session{}).
		Select("properties.*").
		Order(resolveSort(f.SortBy, f.SortOrder)).
		Limit(limit).
		Offset(offset).
		Preload("Details").
		Preload("Images").
		Preload("Category").
		Preload("Developer").
		Find(&props).Error
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Data: props,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

// Minimal returns the trimmed projection for lightweight listings.
func (s *Service) Minimal(limit int) ([]MinimalProperty, error) {
	if limit < 1 {
		limit = defaultPageSize
	}

	var rows []MinimalProperty
	err := s.db.Model(&models.Property{}).
		Select(`properties.id, properties.title, properties.expected_price,
			property_details.city, property_details.locality, property_details.bedrooms,
			(SELECT url FROM property_images
				WHERE property_images.property_id = properties.id AND is_primary = TRUE
				LIMIT 1) AS primary_image`).
		Joins("LEFT JOIN property_details ON property_details.property_id = properties.id").
		Order("properties.created_at desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadyToMove is the possession-status specialization of Search.
func (s *Service) ReadyToMove(page, limit int) (*SearchResult, error) {
	return s.Search(SearchFilters{
		PossessionStatus: "ready_to_move",
		SortBy:           "created_at",
		SortOrder:        "desc",
		Page:             page,
		Limit:            limit,
	})
}

// ByLocality is the locality specialization of Search.
func (s *Service) ByLocality(locality string, page, limit int) (*SearchResult, error) {
	return s.Search(SearchFilters{
		Locality:  locality,
		SortBy:    "created_at",
		SortOrder: "desc",
		Page:      page,
		Limit:     limit,
	})
}

// ByDeveloper is the developer specialization of Search.
func (s *Service) ByDeveloper(developerID uint, page, limit int) (*SearchResult, error) {
	return s.Search(SearchFilters{
		DeveloperID: &developerID,
		SortBy:      "created_at",
		SortOrder:   "desc",
		Page:        page,
		Limit:       limit,
	})
}

// MostViewed ranks by the view counter.
func (s *Service) MostViewed(limit int) (*SearchResult, error) {
	return s.Search(SearchFilters{
		SortBy:    "view_count",
		SortOrder: "desc",
		Page:      1,
		Limit:     limit,
	})
}

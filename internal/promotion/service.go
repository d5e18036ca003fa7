// Package promotion manages time-windowed featured and gallery placements.
// A property holds at most one active placement per kind; expired windows
// are filtered out at read time, never reaped.
package promotion

import (
	"errors"
	"time"

	"estates-backend/internal/apperr"
	"estates-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Advisory-lock classes serializing concurrent placement writes per
// property: the duplicate check and the insert run under the same
// transaction-scoped lock, so two concurrent adds cannot both pass the
// check.
const (
	lockClassFeatured = 101
	lockClassGallery  = 102
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type FeaturedInput struct {
	PropertyID uint
	StartDate  time.Time
	EndDate    time.Time
	CityIDs    []uint
}

type GalleryInput struct {
	PropertyID uint
	From       time.Time
	To         time.Time
}

// ActivePlacement is the enriched projection joined back for display.
type ActivePlacement struct {
	PropertyID    uint      `json:"property_id"`
	Title         string    `json:"title"`
	ExpectedPrice *float64  `json:"expected_price"`
	City          *string   `json:"city"`
	Locality      *string   `json:"locality"`
	PrimaryImage  *string   `json:"primary_image"`
	DeveloperName *string   `json:"developer_name"`
	CategoryName  *string   `json:"category_name"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
}

// AddFeatured creates a featured placement with optional city scoping.
// Rejects when the property already has an active featured window.
func (s *Service) AddFeatured(in FeaturedInput) error {
	if err := s.checkWindow(in.PropertyID, in.StartDate, in.EndDate); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", lockClassFeatured, int64(in.PropertyID)).Error; err != nil {
			return err
		}

		var count int64
		err := tx.Model(&models.FeaturedListing{}).
			Where("property_id = ? AND end_date >= CURRENT_DATE", in.PropertyID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflictf("property %d already has an active featured placement", in.PropertyID)
		}

		listing := models.FeaturedListing{
			PropertyID: in.PropertyID,
			StartDate:  datatypes.Date(in.StartDate),
			EndDate:    datatypes.Date(in.EndDate),
		}
		if err := tx.Create(&listing).Error; err != nil {
			return err
		}

		for _, cityID := range in.CityIDs {
			row := models.FeaturedListingCity{FeaturedListingID: listing.ID, CityID: cityID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveFeatured drops the placement and its city scoping rows in one
// transaction, scoping rows first.
func (s *Service) RemoveFeatured(propertyID uint) error {
	var listing models.FeaturedListing
	if err := s.db.Where("property_id = ?", propertyID).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("property %d has no featured placement", propertyID)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("featured_listing_id = ?", listing.ID).
			Delete(&models.FeaturedListingCity{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.FeaturedListing{}, "id = ?", listing.ID).Error
	})
}

// ActiveFeaturedIDs lists ids of properties whose featured window contains
// today, inclusive both ends.
func (s *Service) ActiveFeaturedIDs() ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.FeaturedListing{}).
		Where("start_date <= CURRENT_DATE AND end_date >= CURRENT_DATE").
		Pluck("property_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ActiveFeatured returns the enriched projection of active featured
// placements.
func (s *Service) ActiveFeatured() ([]ActivePlacement, error) {
	return s.activePlacements("featured_listings", "start_date", "end_date")
}

// AddGallery creates a gallery placement window for a property.
func (s *Service) AddGallery(in GalleryInput) error {
	if err := s.checkWindow(in.PropertyID, in.From, in.To); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", lockClassGallery, int64(in.PropertyID)).Error; err != nil {
			return err
		}

		var count int64
		err := tx.Model(&models.GalleryListing{}).
			Where("property_id = ? AND gallery_to >= CURRENT_DATE", in.PropertyID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflictf("property %d already has an active gallery placement", in.PropertyID)
		}

		listing := models.GalleryListing{
			PropertyID:  in.PropertyID,
			GalleryFrom: datatypes.Date(in.From),
			GalleryTo:   datatypes.Date(in.To),
		}
		return tx.Create(&listing).Error
	})
}

func (s *Service) RemoveGallery(propertyID uint) error {
	res := s.db.Where("property_id = ?", propertyID).Delete(&models.GalleryListing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("property %d has no gallery placement", propertyID)
	}
	return nil
}

// ActiveGallery returns the enriched projection of active gallery
// placements.
func (s *Service) ActiveGallery() ([]ActivePlacement, error) {
	return s.activePlacements("gallery_listings", "gallery_from", "gallery_to")
}

// checkWindow validates the property reference and the window bounds shared
// by both placement kinds.
func (s *Service) checkWindow(propertyID uint, from, to time.Time) error {
	if propertyID == 0 {
		return apperr.Validationf("property_id is required")
	}
	if from.IsZero() || to.IsZero() {
		return apperr.Validationf("start and end dates are required")
	}
	if to.Before(from) {
		return apperr.Validationf("end date is before start date")
	}

	var prop models.Property
	if err := s.db.Select("id").First(&prop, "id = ?", propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("property %d not found", propertyID)
		}
		return err
	}
	return nil
}

// activePlacements runs the shared enriched query over one placement table.
// Table and column names here are fixed constants, never caller input.
func (s *Service) activePlacements(table, fromCol, toCol string) ([]ActivePlacement, error) {
	var rows []ActivePlacement
	err := s.db.Table(table).
		Select(table+`.property_id, properties.title, properties.expected_price,
			property_details.city, property_details.locality,
			(SELECT url FROM property_images
				WHERE property_images.property_id = properties.id AND is_primary = TRUE
				LIMIT 1) AS primary_image,
			developers.name AS developer_name,
			categories.name AS category_name,
			`+table+`.`+fromCol+` AS start_date,
			`+table+`.`+toCol+` AS end_date`).
		Joins("JOIN properties ON properties.id = " + table + ".property_id").
		Joins("LEFT JOIN property_details ON property_details.property_id = properties.id").
		Joins("LEFT JOIN developers ON developers.id = properties.developer_id").
		Joins("LEFT JOIN categories ON categories.id = properties.category_id").
		Where(table + "." + fromCol + " <= CURRENT_DATE AND " + table + "." + toCol + " >= CURRENT_DATE").
		Order(table + ".created_at desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

package property

import (
	"errors"
	"strings"

	"estates-backend/internal/apperr"
	"estates-backend/internal/lookup"
	"estates-backend/internal/models"
	"estates-backend/internal/notify"
	"estates-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Service owns the property aggregate: it is the only writer of the root row
// and every dependent table.
type Service struct {
	db       *gorm.DB
	notifier notify.Notifier
}

func NewService(db *gorm.DB, notifier notify.Notifier) *Service {
	return &Service{db: db, notifier: notifier}
}

// CreateInput is a parsed create submission plus the files already pushed to
// object storage and the caller-supplied correlation metadata.
type CreateInput struct {
	Submission     PropertySubmission
	Images         []storage.StoredFile
	Documents      []storage.StoredFile
	ConfigFiles    []storage.StoredFile
	ImageMeta      []ImageMeta
	DocumentMeta   []DocumentMeta
	ConfigFileMeta []ConfigFileMeta
}

// Create assembles the whole aggregate in one transaction; on any failure
// every child insert rolls back with the root row. The notification fan-out
// runs after commit and never fails the creation.
func (s *Service) Create(in CreateInput) (uint, error) {
	if err := validate.Struct(in.Submission); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return 0, apperr.Validationf("missing required fields: %s", strings.Join(fields, ", "))
		}
		return 0, apperr.Validationf("invalid submission")
	}

	basic := in.Submission.Basic
	if err := s.checkSubcategory(basic.CategoryID, basic.PropertyType); err != nil {
		return 0, err
	}

	prop := models.Property{
		Title:            strings.TrimSpace(basic.Title),
		TransactionType:  basic.TransactionType,
		PossessionStatus: basic.PossessionStatus,
		ExpectedPrice:    basic.ExpectedPrice,
		PricePerSqft:     basic.PricePerSqft,
		CategoryID:       basic.CategoryID,
		PropertyTypeID:   basic.PropertyType,
		DeveloperID:      basic.DeveloperID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&prop).Error; err != nil {
			return err
		}

		if in.Submission.Details.hasAny() {
			details := in.Submission.Details.toModel(prop.ID)
			if err := tx.Create(&details).Error; err != nil {
				return err
			}
		}

		if loc := in.Submission.Location; loc != nil && (loc.Latitude != nil || loc.Longitude != nil) {
			if loc.Latitude == nil || loc.Longitude == nil {
				return apperr.Validationf("latitude and longitude are both required")
			}
			row := models.PropertyLocation{
				PropertyID: prop.ID,
				Latitude:   *loc.Latitude,
				Longitude:  *loc.Longitude,
				Address:    loc.Address,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		if rows := validNearestTo(prop.ID, in.Submission.NearestTo); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		for _, amenityID := range in.Submission.Amenities {
			row := models.PropertyAmenity{PropertyID: prop.ID, AmenityID: amenityID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		for _, featureID := range in.Submission.KeyFeatures {
			row := models.PropertyKeyFeature{PropertyID: prop.ID, KeyFeatureID: featureID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		fileURLByKey := correlateConfigFiles(in.ConfigFileMeta, in.ConfigFiles)
		for _, cfg := range in.Submission.Configurations {
			row := models.PropertyConfiguration{
				PropertyID:  prop.ID,
				Name:        cfg.Name,
				Bedrooms:    cfg.Bedrooms,
				Bathrooms:   cfg.Bathrooms,
				CarpetArea:  cfg.CarpetArea,
				BuiltUpArea: cfg.BuiltUpArea,
				Price:       cfg.Price,
			}
			if url, ok := fileURLByKey[cfg.Key]; ok {
				row.FileURL = &url
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		images := forcePrimaryImage(in.Images, primaryFlags(in.Images, in.ImageMeta))
		for i := range images {
			images[i].PropertyID = prop.ID
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}

		docs := correlateDocuments(in.Documents, in.DocumentMeta)
		for i := range docs {
			docs[i].PropertyID = prop.ID
			if err := tx.Create(&docs[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	go s.notifyNewListing(prop, in.Submission.Details)

	return prop.ID, nil
}

// checkSubcategory verifies that property_type is one of the subcategories
// under category_id. A provably wrong pair is rejected; a failing lookup is
// logged and tolerated so a broken reference table cannot block intake.
func (s *Service) checkSubcategory(categoryID, subcategoryID uint) error {
	subs, err := lookup.SubcategoriesByCategory(s.db, categoryID)
	if err != nil {
		logrus.WithError(err).WithField("category_id", categoryID).
			Warn("subcategory consistency check failed, proceeding")
		return nil
	}
	for _, sub := range subs {
		if sub.ID == subcategoryID {
			return nil
		}
	}
	return apperr.Validationf("property_type %d does not belong to category %d", subcategoryID, categoryID)
}

func (s *Service) notifyNewListing(prop models.Property, details *DetailsSection) {
	var leads []models.Lead
	if err := s.db.Find(&leads).Error; err != nil {
		logrus.WithError(err).Warn("cannot load leads for notification")
		return
	}

	listing := notify.NewListing{
		PropertyID: prop.ID,
		Title:      prop.Title,
		Price:      prop.ExpectedPrice,
	}
	if details != nil && details.City != nil {
		listing.City = *details.City
	}

	if err := s.notifier.NotifyNewListing(listing, leads); err != nil {
		logrus.WithError(err).WithField("property_id", prop.ID).
			Warn("new-listing notification fan-out failed")
	}
}

// Update applies a partial patch. Scalar sections update only the columns
// present; collection sections are replaced wholesale, so an empty array
// clears the relation and an absent key leaves it untouched.
func (s *Service) Update(id uint, patch PropertyPatch) error {
	var prop models.Property
	if err := s.db.First(&prop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("property %d not found", id)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if patch.Basic != nil {
			if cols := patch.Basic.columns(); len(cols) > 0 {
				if err := tx.Model(&models.Property{}).Where("id = ?", id).Updates(cols).Error; err != nil {
					return err
				}
			}
		}

		if patch.Details != nil {
			if cols := patch.Details.columns(); len(cols) > 0 {
				res := tx.Model(&models.PropertyDetails{}).Where("property_id = ?", id).Updates(cols)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					details := patch.Details.toModel(id)
					if err := tx.Create(&details).Error; err != nil {
						return err
					}
				}
			}
		}

		if patch.Location != nil {
			if cols := patch.Location.columns(); len(cols) > 0 {
				if err := tx.Model(&models.PropertyLocation{}).Where("property_id = ?", id).Updates(cols).Error; err != nil {
					return err
				}
			}
		}

		if patch.NearestTo != nil {
			if err := tx.Where("property_id = ?", id).Delete(&models.PropertyNearestTo{}).Error; err != nil {
				return err
			}
			if rows := validNearestTo(id, *patch.NearestTo); len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		if patch.Amenities != nil {
			if err := tx.Where("property_id = ?", id).Delete(&models.PropertyAmenity{}).Error; err != nil {
				return err
			}
			for _, amenityID := range *patch.Amenities {
				row := models.PropertyAmenity{PropertyID: id, AmenityID: amenityID}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		if patch.KeyFeatures != nil {
			if err := tx.Where("property_id = ?", id).Delete(&models.PropertyKeyFeature{}).Error; err != nil {
				return err
			}
			for _, featureID := range *patch.KeyFeatures {
				row := models.PropertyKeyFeature{PropertyID: id, KeyFeatureID: featureID}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// Delete removes the aggregate in dependency order inside one transaction:
// join rows, placements, configurations, documents, images, location,
// details, then the root.
func (s *Service) Delete(id uint) error {
	var prop models.Property
	if err := s.db.First(&prop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("property %d not found", id)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyAmenity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyKeyFeature{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyNearestTo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("featured_listing_id IN (?)",
			tx.Model(&models.FeaturedListing{}).Select("id").Where("property_id = ?", id),
		).Delete(&models.FeaturedListingCity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.FeaturedListing{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.GalleryListing{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyConfiguration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyDocument{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyLocation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyDetails{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Property{}, "id = ?", id).Error
	})
}

// GetAll returns every aggregate with its dependents preloaded.
func (s *Service) GetAll() ([]models.Property, error) {
	var props []models.Property
	err := s.db.
		Preload("Details").
		Preload("Location").
		Preload("Images").
		Preload("Documents").
		Preload("Configurations").
		Preload("Amenities.Amenity").
		Preload("KeyFeatures.KeyFeature").
		Preload("NearestTo.NearestTo").
		Preload("Category").
		Preload("Developer").
		Order("created_at desc").
		Find(&props).Error
	if err != nil {
		return nil, err
	}
	return props, nil
}

// GetByID returns one full aggregate and bumps its view counter.
func (s *Service) GetByID(id uint) (*models.Property, error) {
	var prop models.Property
	err := s.db.
		Preload("Details").
		Preload("Location").
		Preload("Images").
		Preload("Documents").
		Preload("Configurations").
		Preload("Amenities.Amenity").
		Preload("KeyFeatures.KeyFeature").
		Preload("NearestTo.NearestTo").
		Preload("Category").
		Preload("PropertyType").
		Preload("Developer").
		First(&prop, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("property %d not found", id)
		}
		return nil, err
	}

	if err := s.db.Model(&models.Property{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		logrus.WithError(err).WithField("property_id", id).Warn("cannot bump view count")
	}

	return &prop, nil
}

// AddImages appends uploaded images to an existing property. They never
// steal primary from an existing image; only when the property had none does
// the first new image become primary.
func (s *Service) AddImages(id uint, files []storage.StoredFile) error {
	var prop models.Property
	if err := s.db.First(&prop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("property %d not found", id)
		}
		return err
	}
	if len(files) == 0 {
		return apperr.Validationf("no images supplied")
	}

	var primaryCount int64
	if err := s.db.Model(&models.PropertyImage{}).
		Where("property_id = ? AND is_primary = ?", id, true).
		Count(&primaryCount).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, f := range files {
			row := models.PropertyImage{
				PropertyID: id,
				URL:        f.URL,
				StorageKey: f.Key,
				IsPrimary:  primaryCount == 0 && i == 0,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

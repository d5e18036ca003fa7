package database

import (
	"estates-backend/internal/config"
	"estates-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("cannot connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Subcategory{},
		&models.Amenity{},
		&models.KeyFeature{},
		&models.NearestTo{},
		&models.Developer{},
		&models.City{},
		&models.Lead{},
		&models.Property{},
		&models.PropertyDetails{},
		&models.PropertyLocation{},
		&models.PropertyImage{},
		&models.PropertyDocument{},
		&models.PropertyConfiguration{},
		&models.PropertyAmenity{},
		&models.PropertyKeyFeature{},
		&models.PropertyNearestTo{},
		&models.FeaturedListing{},
		&models.FeaturedListingCity{},
		&models.GalleryListing{},
	)
	if err != nil {
		logrus.Fatalf("auto-migrate failed: %v", err)
	}

	logrus.Info("database connected, migration complete")
}

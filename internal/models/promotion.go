package models

import (
	"time"

	"gorm.io/datatypes"
)

// FeaturedListing is a time-windowed featured placement of a property,
// optionally scoped to a set of cities. Window bounds are inclusive.
// Expired rows are filtered out at read time, not deleted.
type FeaturedListing struct {
	ID         uint                  `gorm:"primaryKey" json:"id"`
	PropertyID uint                  `gorm:"index;not null" json:"property_id"`
	StartDate  datatypes.Date        `gorm:"not null" json:"start_date"`
	EndDate    datatypes.Date        `gorm:"not null" json:"end_date"`
	Cities     []FeaturedListingCity `gorm:"foreignKey:FeaturedListingID" json:"cities,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

type FeaturedListingCity struct {
	ID                uint  `gorm:"primaryKey" json:"id"`
	FeaturedListingID uint  `gorm:"index;not null" json:"featured_listing_id"`
	CityID            uint  `gorm:"index;not null" json:"city_id"`
	City              *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

func (FeaturedListingCity) TableName() string {
	return "featured_listing_cities"
}

// GalleryListing is the gallery placement window. Never city-scoped.
type GalleryListing struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	PropertyID  uint           `gorm:"index;not null" json:"property_id"`
	GalleryFrom datatypes.Date `gorm:"not null" json:"gallery_from"`
	GalleryTo   datatypes.Date `gorm:"not null" json:"gallery_to"`
	CreatedAt   time.Time      `json:"created_at"`
}

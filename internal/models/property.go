package models

import "time"

// Property is the aggregate root. Everything hanging off it (details,
// location, images, documents, configurations, join rows) lives and dies
// with the root row.
type Property struct {
	ID               uint     `gorm:"primaryKey" json:"id"`
	Title            string   `gorm:"size:255;not null" json:"title"`
	TransactionType  string   `gorm:"size:50" json:"transaction_type"`
	PossessionStatus string   `gorm:"size:50" json:"possession_status"`
	ExpectedPrice    *float64 `json:"expected_price"`
	PricePerSqft     *float64 `json:"price_per_sqft"`

	CategoryID     uint         `gorm:"index;not null" json:"category_id"`
	Category       *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	PropertyTypeID uint         `gorm:"index;not null" json:"property_type"`
	PropertyType   *Subcategory `gorm:"foreignKey:PropertyTypeID" json:"property_type_detail,omitempty"`
	DeveloperID    *uint        `gorm:"index" json:"developer_id"`
	Developer      *Developer   `gorm:"foreignKey:DeveloperID" json:"developer,omitempty"`

	ViewCount uint `gorm:"not null;default:0" json:"view_count"`

	Details        *PropertyDetails        `gorm:"foreignKey:PropertyID" json:"details,omitempty"`
	Location       *PropertyLocation       `gorm:"foreignKey:PropertyID" json:"location,omitempty"`
	Images         []PropertyImage         `gorm:"foreignKey:PropertyID" json:"images,omitempty"`
	Documents      []PropertyDocument      `gorm:"foreignKey:PropertyID" json:"documents,omitempty"`
	Configurations []PropertyConfiguration `gorm:"foreignKey:PropertyID" json:"configurations,omitempty"`
	Amenities      []PropertyAmenity       `gorm:"foreignKey:PropertyID" json:"amenities,omitempty"`
	KeyFeatures    []PropertyKeyFeature    `gorm:"foreignKey:PropertyID" json:"keyfeatures,omitempty"`
	NearestTo      []PropertyNearestTo     `gorm:"foreignKey:PropertyID" json:"nearest_to,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// PropertyConfiguration is one sellable unit variant of a property
// (e.g. a BHK type) with its own room counts and areas. FileURL points to
// the configuration's own document when one was uploaded.
type PropertyConfiguration struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PropertyID  uint      `gorm:"index;not null" json:"property_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Bedrooms    *int      `json:"bedrooms"`
	Bathrooms   *int      `json:"bathrooms"`
	CarpetArea  *float64  `json:"carpet_area"`
	BuiltUpArea *float64  `json:"built_up_area"`
	Price       *float64  `json:"price"`
	FileURL     *string   `gorm:"type:text" json:"file_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

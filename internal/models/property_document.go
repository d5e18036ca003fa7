package models

import "time"

// PropertyDocument is an attached file (brochure, floor plan, unit-type
// sheet). Type stays NULL when the upload carried no matching metadata.
type PropertyDocument struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"index;not null" json:"property_id"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	StorageKey string    `gorm:"size:255" json:"-"`
	Type       *string   `gorm:"size:100" json:"type"`
	CreatedAt  time.Time `json:"created_at"`
}

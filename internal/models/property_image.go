package models

import "time"

// PropertyImage is one gallery image of a property. Among all images of a
// property exactly one carries IsPrimary when any image exists at all.
type PropertyImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"index;not null" json:"property_id"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	StorageKey string    `gorm:"size:255" json:"-"`
	IsPrimary  bool      `gorm:"not null;default:false" json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}

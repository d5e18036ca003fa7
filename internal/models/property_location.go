package models

import "time"

// PropertyLocation holds the coordinates of a property. Latitude and
// longitude are mandatory together; address falls back to empty string.
type PropertyLocation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"uniqueIndex;not null" json:"property_id"`
	Latitude   float64   `gorm:"not null" json:"latitude"`
	Longitude  float64   `gorm:"not null" json:"longitude"`
	Address    string    `gorm:"size:500;not null;default:''" json:"address"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

package models

import "time"

// Lead is a previously recorded interested party. New-listing notifications
// fan out to leads after a property is created.
type Lead struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Email     string    `gorm:"size:150;not null;index" json:"email"`
	Phone     *string   `gorm:"size:30" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

// PropertyDetails is the wide, sparsely populated attribute bag attached
// one-to-one to a property. All columns are nullable; a submission only
// writes the attributes it actually carries.
type PropertyDetails struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PropertyID uint `gorm:"uniqueIndex;not null" json:"property_id"`

	Bedrooms  *int `json:"bedrooms"`
	Bathrooms *int `json:"bathrooms"`
	Balconies *int `json:"balconies"`

	BuiltUpArea      *float64 `json:"built_up_area"`
	CarpetArea       *float64 `json:"carpet_area"`
	SuperBuiltUpArea *float64 `json:"super_built_up_area"`
	AreaUnit         *string  `gorm:"size:20" json:"area_unit"`

	FloorNo     *int `json:"floor_no"`
	TotalFloors *int `json:"total_floors"`

	FurnishedStatus *string `gorm:"size:50" json:"furnished_status"`
	Facing          *string `gorm:"size:50" json:"facing"`
	AgeOfProperty   *string `gorm:"size:50" json:"age_of_property"`

	City     *string `gorm:"size:100;index" json:"city"`
	Locality *string `gorm:"size:150;index" json:"locality"`
	Address  *string `gorm:"size:500" json:"address"`

	ProjectName    *string    `gorm:"size:200" json:"project_name"`
	Description    *string    `gorm:"type:text" json:"description"`
	ReraID         *string    `gorm:"size:100" json:"rera_id"`
	PossessionDate *time.Time `gorm:"type:date" json:"possession_date"`

	MaintenanceCharge *float64 `json:"maintenance_charge"`
	BookingAmount     *float64 `json:"booking_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PropertyDetails) TableName() string {
	return "property_details"
}

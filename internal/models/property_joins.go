package models

// Join rows between a property and its lookup entities. These are replaced
// wholesale on update, never merged.

type PropertyAmenity struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	PropertyID uint     `gorm:"index;not null" json:"property_id"`
	AmenityID  uint     `gorm:"index;not null" json:"amenity_id"`
	Amenity    *Amenity `gorm:"foreignKey:AmenityID" json:"amenity,omitempty"`
}

func (PropertyAmenity) TableName() string {
	return "property_amenities"
}

type PropertyKeyFeature struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	PropertyID   uint        `gorm:"index;not null" json:"property_id"`
	KeyFeatureID uint        `gorm:"index;not null" json:"key_feature_id"`
	KeyFeature   *KeyFeature `gorm:"foreignKey:KeyFeatureID" json:"key_feature,omitempty"`
}

// PropertyNearestTo additionally carries the distance to the point of
// interest; a row without both the reference and the distance is never
// written.
type PropertyNearestTo struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PropertyID  uint       `gorm:"index;not null" json:"property_id"`
	NearestToID uint       `gorm:"index;not null" json:"nearest_to_id"`
	Distance    float64    `gorm:"not null" json:"distance"`
	NearestTo   *NearestTo `gorm:"foreignKey:NearestToID" json:"nearest_to,omitempty"`
}

func (PropertyNearestTo) TableName() string {
	return "property_nearest_to"
}

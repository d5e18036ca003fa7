package lookup

import (
	"estates-backend/internal/models"

	"gorm.io/gorm"
)

// SubcategoriesByCategory returns the subcategories under one category.
// The composition pipeline uses it to check category/property_type
// consistency before inserting a property.
func SubcategoriesByCategory(db *gorm.DB, categoryID uint) ([]models.Subcategory, error) {
	var subs []models.Subcategory
	err := db.Where("category_id = ?", categoryID).Order("name asc").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

package property

import (
	"errors"
	"testing"

	"estates-backend/internal/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	svc, _ := newMockService(t)

	tests := []struct {
		name       string
		submission PropertySubmission
	}{
		{"no basic section", PropertySubmission{}},
		{"missing title", PropertySubmission{Basic: &BasicSection{CategoryID: 1, PropertyType: 7}}},
		{"missing category", PropertySubmission{Basic: &BasicSection{Title: "Lake View", PropertyType: 7}}},
		{"missing property type", PropertySubmission{Basic: &BasicSection{Title: "Lake View", CategoryID: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(CreateInput{Submission: tt.submission})
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestCheckSubcategoryMismatchRejected(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .* FROM "subcategories" WHERE category_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "name"}).
			AddRow(5, 1, "Apartment").
			AddRow(6, 1, "Villa"))

	err := svc.checkSubcategory(1, 7)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSubcategoryMatchPasses(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .* FROM "subcategories" WHERE category_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "name"}).
			AddRow(7, 1, "Apartment"))

	assert.NoError(t, svc.checkSubcategory(1, 7))
}

func TestCheckSubcategoryLookupFailureIsTolerated(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .* FROM "subcategories"`).
		WillReturnError(assert.AnError)

	// A failing lookup must not block intake; only a provable mismatch does.
	assert.NoError(t, svc.checkSubcategory(1, 7))
}

func TestUpdateMissingPropertyIsNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .* FROM "properties" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	title := "New"
	err := svc.Update(42, PropertyPatch{Basic: &BasicPatch{Title: &title}})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteMissingPropertyIsNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .* FROM "properties" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.Delete(42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateReplacesAmenitiesWholesale(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .* FROM "properties" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category_id", "property_type_id"}).
			AddRow(9, "Lake View", 1, 7))

	mock.ExpectBegin()
	// Empty array clears the relation: delete-all, reinsert nothing.
	mock.ExpectExec(`DELETE FROM "property_amenities" WHERE property_id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	empty := []uint{}
	err := svc.Update(9, PropertyPatch{Amenities: &empty})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRemovesEveryDependentInOneTransaction(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT \* FROM "properties" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(9, "Lake View"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "property_amenities" WHERE property_id = \$1`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "property_key_features" WHERE property_id = \$1`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "property_nearest_to" WHERE property_id = \$1`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "featured_listing_cities" WHERE featured_listing_id IN \(SELECT "id" FROM "featured_listings" WHERE property_id = \$1\)`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "featured_listings" WHERE property_id = \$1`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "gallery_listings" WHERE property_id = \$1`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "property_configurations" WHERE property_id = \$1`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "property_documents" WHERE property_id = \$1`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "property_images" WHERE property_id = \$1`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM "property_locations" WHERE property_id = \$1`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "property_details" WHERE property_id = \$1`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "properties" WHERE id = \$1`).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenChildInsertFails(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .* FROM "subcategories" WHERE category_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "name"}).
			AddRow(7, 1, "Apartment"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "properties"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "property_details"`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	bedrooms := 3
	id, err := svc.Create(CreateInput{Submission: PropertySubmission{
		Basic:   &BasicSection{Title: "Lake View", CategoryID: 1, PropertyType: 7},
		Details: &DetailsSection{Bedrooms: &bedrooms},
	}})

	require.Error(t, err)
	assert.NotErrorIs(t, err, apperr.ErrValidation)
	assert.Zero(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package promotion

import (
	"testing"
	"time"

	"estates-backend/internal/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewService(db), mock
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAddFeaturedRejectsBadWindow(t *testing.T) {
	svc, _ := newMockService(t)

	err := svc.AddFeatured(FeaturedInput{
		PropertyID: 1,
		StartDate:  date("2026-09-10"),
		EndDate:    date("2026-09-01"),
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	err = svc.AddFeatured(FeaturedInput{StartDate: date("2026-09-01"), EndDate: date("2026-09-10")})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	err = svc.AddFeatured(FeaturedInput{PropertyID: 1, EndDate: date("2026-09-10")})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAddFeaturedMissingProperty(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT "id" FROM "properties" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.AddFeatured(FeaturedInput{
		PropertyID: 42,
		StartDate:  date("2026-09-01"),
		EndDate:    date("2026-09-10"),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAddFeaturedDuplicateActiveIsConflict(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT "id" FROM "properties" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "featured_listings" WHERE property_id = \$1 AND end_date >= CURRENT_DATE`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := svc.AddFeatured(FeaturedInput{
		PropertyID: 5,
		StartDate:  date("2026-09-01"),
		EndDate:    date("2026-09-10"),
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddGalleryDuplicateActiveIsConflict(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT "id" FROM "properties" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "gallery_listings" WHERE property_id = \$1 AND gallery_to >= CURRENT_DATE`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := svc.AddGallery(GalleryInput{
		PropertyID: 5,
		From:       date("2026-09-01"),
		To:         date("2026-09-10"),
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRemoveFeaturedDeletesScopingRowsFirst(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .* FROM "featured_listings" WHERE property_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "property_id"}).AddRow(3, 5))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "featured_listing_cities" WHERE featured_listing_id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "featured_listings" WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.RemoveFeatured(5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveFeaturedMissingIsNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .* FROM "featured_listings" WHERE property_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.RemoveFeatured(5)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRemoveGalleryMissingIsNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "gallery_listings" WHERE property_id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := svc.RemoveGallery(5)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

package lookup

import (
	"net/http/httptest"
	"strings"
	"testing"

	"estates-backend/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// swapMockDB points the package-global DB at a sqlmock connection for the
// duration of one test.
func swapMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})
	return mock
}

func TestUpdateAmenityAppliesProvidedFields(t *testing.T) {
	mock := swapMockDB(t)

	app := fiber.New()
	app.Put("/amenities/:id", UpdateAmenityHandler())

	mock.ExpectQuery(`SELECT \* FROM "amenities" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon"}).AddRow(4, "Pool", nil))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "amenities" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("PUT", "/amenities/4", strings.NewReader(`{"name":"Swimming Pool"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCityMissingRowIsNotFound(t *testing.T) {
	mock := swapMockDB(t)

	app := fiber.New()
	app.Put("/cities/:id", UpdateCityHandler())

	mock.ExpectQuery(`SELECT \* FROM "cities" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("PUT", "/cities/9", strings.NewReader(`{"name":"Pune"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateKeyFeatureRejectsBlankName(t *testing.T) {
	mock := swapMockDB(t)

	app := fiber.New()
	app.Put("/keyfeatures/:id", UpdateKeyFeatureHandler())

	mock.ExpectQuery(`SELECT \* FROM "key_features" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Gated Community"))

	req := httptest.NewRequest("PUT", "/keyfeatures/2", strings.NewReader(`{"name":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	// Blank name rejected before any write; no Begin/Update expected.
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDeveloperInvalidIDRejected(t *testing.T) {
	swapMockDB(t)

	app := fiber.New()
	app.Put("/developers/:id", UpdateDeveloperHandler())

	req := httptest.NewRequest("PUT", "/developers/zero", strings.NewReader(`{"name":"Acme Homes"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

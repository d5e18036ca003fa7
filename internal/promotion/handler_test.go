package promotion

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToFeaturedRejectsMalformedDates(t *testing.T) {
	svc, _ := newMockService(t)

	app := fiber.New()
	app.Post("/addtofeatured", AddToFeaturedHandler(svc))

	tests := []struct {
		name string
		body string
	}{
		{"missing start", `{"property_id":1,"end_date":"2026-09-10"}`},
		{"bad format", `{"property_id":1,"start_date":"10/09/2026","end_date":"2026-09-10"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/addtofeatured", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRemoveGalleryRejectsBadID(t *testing.T) {
	svc, _ := newMockService(t)

	app := fiber.New()
	app.Delete("/removegallary/:property_id", RemoveGalleryHandler(svc))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/removegallary/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

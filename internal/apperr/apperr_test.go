package apperr

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", Validationf("title is required"), fiber.StatusBadRequest},
		{"conflict", Conflictf("already placed"), fiber.StatusBadRequest},
		{"not found", NotFoundf("property 9 not found"), fiber.StatusNotFound},
		{"store error", errors.New("pq: connection reset"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := ToFiber(tt.err, "operation failed")
			var fe *fiber.Error
			require.ErrorAs(t, mapped, &fe)
			assert.Equal(t, tt.wantStatus, fe.Code)
		})
	}
}

func TestStoreInternalsNeverLeak(t *testing.T) {
	mapped := ToFiber(errors.New(`pq: duplicate key value violates unique constraint "idx_x"`), "failed to add property")

	var fe *fiber.Error
	require.ErrorAs(t, mapped, &fe)
	assert.Equal(t, "failed to add property", fe.Message)
}

func TestWrappedErrorsKeepSentinel(t *testing.T) {
	err := Validationf("bad filter %q", "x")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), `bad filter "x"`)
}

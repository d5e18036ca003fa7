// Package apperr defines the error taxonomy shared by the service layer and
// translates it to HTTP at the route boundary. Raw store errors never reach
// clients; they are logged and collapsed to a generic 500.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// ToFiber maps a service error onto the HTTP taxonomy: validation and
// conflict → 400, not found → 404, anything else → 500 with a neutral
// message.
func ToFiber(err error, fallback string) error {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	logrus.WithError(err).Error(fallback)
	return fiber.NewError(fiber.StatusInternalServerError, fallback)
}

package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	apperr "github.com/develop-free/server-site/internal/errors"
)

// errorResponse translates an error into the stable {success, message}
// envelope. Anything outside the known taxonomy is reported as a generic
// server error without leaking internals.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrMissingFields):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperr.ErrDuplicateIdentity):
		status = fiber.StatusConflict
		message = err.Error()
	case errors.Is(err, apperr.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperr.ErrMissingToken):
		status = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperr.ErrInvalidToken), errors.Is(err, apperr.ErrForbidden):
		status = fiber.StatusForbidden
		message = err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return fmt.Errorf("%w: invalid fields: %s", apperr.ErrValidation, strings.Join(fields, ", "))
	}
	return apperr.ErrValidation
}

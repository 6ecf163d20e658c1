package utils

import (
	"fmt"

	"user-api/internal/validator"

	validatorv9 "github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

// ValidateRequest parses the request body into req and validates it using
// validator tags.
func ValidateRequest(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return err
	}

	if err := validator.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validatorv9.ValidationErrors); ok {
			for _, validationErr := range validationErrors {
				return fmt.Errorf("field '%s' failed validation on the '%s' tag", validationErr.Field(), validationErr.Tag())
			}
		}
		return err
	}

	return nil
}

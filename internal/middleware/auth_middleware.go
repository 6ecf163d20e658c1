package middleware

import (
	"errors"

	"user-api/internal/apperrors"
	"user-api/internal/config"
	"user-api/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth gates a route behind a valid bearer token. The verified
// claims are stored in c.Locals("claims").
func RequireAuth(cfg *config.Config) fiber.Handler {
	secret := []byte(cfg.Auth.JWT.Secret)

	return func(c *fiber.Ctx) error {
		tokenString, err := utils.ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.AppMessages.Auth.Error.TokenRequired)
		}

		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.AppMessages.Auth.Error.TokenExpired)
			}
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.AppMessages.Auth.Error.TokenInvalid)
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

// OptionalAuth attaches claims when a valid bearer token is present and
// silently continues otherwise.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	secret := []byte(cfg.Auth.JWT.Secret)

	return func(c *fiber.Ctx) error {
		tokenString, err := utils.ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
		if err == nil {
			if claims, err := utils.ValidateToken(tokenString, secret); err == nil {
				c.Locals("claims", claims)
			}
		}
		return c.Next()
	}
}

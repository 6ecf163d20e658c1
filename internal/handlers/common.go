package handlers

import (
	"errors"

	"user-api/internal/apperrors"
	"user-api/internal/config"
	"user-api/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// mapServiceError logs a service error with its operation context and
// translates it into a client-facing response. Domain errors become 4xx;
// anything unanticipated becomes a bare 500.
func mapServiceError(c *fiber.Ctx, operation string, err error) error {
	msg := config.AppMessages

	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		utils.LogWarn(operation, err.Error())
		return utils.ErrorResponse(c, fiber.StatusNotFound, msg.User.Error.NotFound)
	case errors.Is(err, apperrors.ErrEmailExists):
		utils.LogWarn(operation, err.Error())
		return utils.ErrorResponse(c, fiber.StatusConflict, msg.User.Error.EmailExists)
	case errors.Is(err, apperrors.ErrUsernameExists):
		utils.LogWarn(operation, err.Error())
		return utils.ErrorResponse(c, fiber.StatusConflict, msg.User.Error.UsernameExists)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		utils.LogWarn(operation, err.Error())
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, msg.Auth.Error.InvalidCredentials)
	case errors.Is(err, apperrors.ErrAccountNotActive):
		utils.LogWarn(operation, err.Error())
		return utils.ErrorResponse(c, fiber.StatusForbidden, msg.Auth.Error.AccountNotActive)
	default:
		utils.LogError(operation, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, msg.Server.Error.Internal)
	}
}

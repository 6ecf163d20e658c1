package handlers

import (
	"user-api/internal/config"
	"user-api/internal/requests"
	"user-api/internal/services"
	"user-api/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service *services.UserService
}

func NewAuthHandler(service *services.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles user authentication
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req requests.LoginRequest
	if err := utils.ValidateRequest(c, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.AppMessages.Validation.Error.InvalidRequest)
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return mapServiceError(c, "login", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, config.AppMessages.Auth.Success.Login, fiber.Map{
		"user":  user,
		"token": token,
	})
}

// UserInfo returns the authenticated user's profile
func (h *AuthHandler) UserInfo(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*utils.Claims)

	user, err := h.service.GetByID(claims.UserID)
	if err != nil {
		return mapServiceError(c, "userinfo", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, config.AppMessages.User.Success.Fetched, user)
}

package handlers

import (
	"user-api/internal/config"
	"user-api/internal/repository"
	"user-api/internal/requests"
	"user-api/internal/services"
	"user-api/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles user registration
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req requests.CreateUserRequest
	if err := utils.ValidateRequest(c, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.AppMessages.Validation.Error.InvalidRequest)
	}

	user, err := h.service.Register(&req)
	if err != nil {
		return mapServiceError(c, "create user", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, config.AppMessages.User.Success.Created, user)
}

// GetByID returns a single user
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.AppMessages.Validation.Error.InvalidRequest)
	}

	user, err := h.service.GetByID(uint(id))
	if err != nil {
		return mapServiceError(c, "get user", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, config.AppMessages.User.Success.Fetched, user)
}

// GetAll returns a paginated, filtered user listing
func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	filter := repository.ListFilter{
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", repository.DefaultPageSize),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy", "created_at"),
		SortOrder: c.Query("sortOrder", "desc"),
	}

	result, err := h.service.List(filter)
	if err != nil {
		return mapServiceError(c, "list users", err)
	}

	pagination := utils.NewPagination(result.Page, result.Limit, result.Total)
	return utils.ListResponse(c, config.AppMessages.User.Success.Listed, result.Users, pagination)
}

// Update handles partial profile updates
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.AppMessages.Validation.Error.InvalidRequest)
	}

	var req requests.UpdateUserRequest
	if err := utils.ValidateRequest(c, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.AppMessages.Validation.Error.InvalidRequest)
	}

	user, err := h.service.Update(uint(id), &req)
	if err != nil {
		return mapServiceError(c, "update user", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, config.AppMessages.User.Success.Updated, user)
}

// Delete soft-deletes a user
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.AppMessages.Validation.Error.InvalidRequest)
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return mapServiceError(c, "delete user", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, config.AppMessages.User.Success.Deleted, nil)
}

package handlers

import (
	"strings"

	"library-management/internal/core/services"
	"library-management/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
	validator   *validator.Validate
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

// GetUsers handles listing all users
// @Summary List all users
// @Tags Users
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /GetUsers [get]
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetUsers(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, response.MessageSuccess, users)
}

// GetUser handles getting a user by ID
// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Param userid query int true "User ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /Getuser [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c.Query("userid"))
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.GetUser(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, response.MessageSuccess, user)
}

// UpdateUser handles updating a user
// @Summary Update user
// @Description Overwrite a user's profile. A non-empty password is re-hashed and a non-empty role is re-assigned.
// @Tags Users
// @Accept json
// @Produce json
// @Param id query int true "User ID"
// @Param body body services.UpdateUserInput true "User data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /UpdateUser [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c.Query("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req services.UpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validator.Struct(req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.userService.UpdateUser(c.Context(), id, &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "User updated successfully", user)
}

// DeleteUser handles deleting a user
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id query int true "User ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /DeleteUser [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c.Query("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(c.Context(), id); err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "User deleted successfully", nil)
}

package handlers

import (
	"strings"

	"library-management/internal/core/services"
	"library-management/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
	validator   *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		validator:   validator.New(),
	}
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with username and password and receive a 3 hour bearer token
// @Tags Account
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)

	if err := h.validator.Struct(req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return c.JSON(result)
}

// Register handles user registration
// @Summary Register new user
// @Description Create a user account. Role "Admin" grants the admin role, anything else grants "User".
// @Tags Account
// @Accept json
// @Produce json
// @Param body body services.CreateUserInput true "Registration data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /Register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.CreateUserInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validator.Struct(req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.userService.CreateUser(c.Context(), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "User created successfully!", user)
}

// Me returns the current user
// @Summary Get current user
// @Description Get the user the bearer token belongs to
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, response.MessageSuccess, user)
}

package middleware

import (
	"errors"
	"strings"

	"library-management/internal/core/domain"
	"library-management/internal/pkg/jwt"
	"library-management/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware creates authentication middleware
func AuthMiddleware(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Get token from Authorization header
		authHeader := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 2. Validate token
		claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 3. Set user info in context
		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("roles", claims.Roles)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles, ok := c.Locals("roles").([]string)
		if !ok {
			return response.Unauthorized(c, domain.ErrUnauthorized.Message)
		}

		// Check if any of the user's roles is allowed
		for _, role := range roles {
			for _, allowedRole := range allowedRoles {
				if role == string(allowedRole) {
					return c.Next()
				}
			}
		}

		return response.Forbidden(c, domain.ErrForbidden.Message)
	}
}

// AdminOnly middleware allows only the Admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

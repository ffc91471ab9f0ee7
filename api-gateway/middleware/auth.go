package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stylemind/stylemind-backend/pkg/auth"
)

// AuthMiddleware validates device session tokens
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("gender", claims.Gender)

		// Identity headers for the backend
		c.Request().Header.Set("X-User-ID", claims.UserID)
		if claims.Gender != "" {
			c.Request().Header.Set("X-User-Gender", claims.Gender)
		}

		return c.Next()
	}
}

// OptionalAuthMiddleware validates a token if present but doesn't require it
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := auth.ValidateToken(parts[1]); err == nil {
				c.Locals("user_id", claims.UserID)
				c.Locals("gender", claims.Gender)
				c.Request().Header.Set("X-User-ID", claims.UserID)
			}
		}

		return c.Next()
	}
}

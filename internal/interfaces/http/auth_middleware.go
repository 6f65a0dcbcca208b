package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/pkg/jwt"
)

// LocalIdentity is the Locals key holding the authenticated *jwt.Identity.
const LocalIdentity = "identity"

// AuthMiddleware validates the Bearer token and stores the caller's identity
// in c.Locals for the handlers.
func AuthMiddleware(sessionSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		identity, err := jwt.Parse(sessionSecret, issuer, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalIdentity, identity)
		return c.Next()
	}
}

// GetIdentity returns the authenticated identity, or nil before the auth
// middleware has run.
func GetIdentity(c *fiber.Ctx) *jwt.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*jwt.Identity)
	return id
}

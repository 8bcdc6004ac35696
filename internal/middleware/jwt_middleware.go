// Package middleware holds the fiber middleware of the reference API.
package middleware

import (
	"strings"

	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Locals keys set by AuthRequired.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
)

// AuthRequired rejects requests without a valid bearer token and stores the
// caller's identity in Locals.
func AuthRequired(auth *services.AuthService, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "Authorization header is required", nil)
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return unauthorized(c, "Authorization header format must be 'Bearer <token>'", nil)
		}

		claims, err := auth.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			log.WithFields(logrus.Fields{
				"path":       c.Path(),
				"request_id": c.Get("X-Request-ID"),
			}).Warnf("JWT validation failed: %v", err)
			return unauthorized(c, "Invalid or expired token", err)
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string, err error) error {
	body := fiber.Map{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusUnauthorized).JSON(body)
}

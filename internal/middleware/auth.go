package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"legacy-booth/internal/domain"
	"legacy-booth/internal/service/session"
)

const SessionContextKey = "session"

// SessionRequired resolves the kiosk session named by the bearer token.
func SessionRequired(registry *session.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Unauthorized("Invalid authorization header format")
		}

		s, err := registry.Resolve(parts[1])
		if err != nil {
			return Unauthorized("Invalid or expired session")
		}

		c.Locals(SessionContextKey, s)
		return c.Next()
	}
}

func GetSession(c *fiber.Ctx) *session.Session {
	s, ok := c.Locals(SessionContextKey).(*session.Session)
	if !ok {
		return nil
	}
	return s
}

// GetCurrentResident returns the resident signed in at the request's kiosk.
func GetCurrentResident(c *fiber.Ctx) (domain.Resident, bool) {
	s := GetSession(c)
	if s == nil {
		return domain.Resident{}, false
	}
	return s.Auth.Current()
}

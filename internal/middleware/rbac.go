package middleware

import (
	"github.com/gofiber/fiber/v2"
)

func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := GetCurrentResident(c); !ok {
			return Unauthorized("No resident is signed in")
		}
		return c.Next()
	}
}

func RequireResident() fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, ok := GetCurrentResident(c)
		if !ok {
			return Unauthorized("No resident is signed in")
		}
		if r.IsStaff {
			return Forbidden("Only residents can do this")
		}
		return c.Next()
	}
}

func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, ok := GetCurrentResident(c)
		if !ok {
			return Unauthorized("No resident is signed in")
		}
		if !r.IsStaff {
			return Forbidden("Staff access required")
		}
		return c.Next()
	}
}

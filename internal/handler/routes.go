package handler

import (
	"github.com/gofiber/fiber/v2"

	"legacy-booth/internal/middleware"
	"legacy-booth/internal/service/session"
)

func SetupRoutes(app *fiber.App, h *Handlers, registry *session.Registry) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "sessions": registry.Len()})
	})

	v1 := app.Group("/api/v1")
	v1.Post("/sessions", h.Session.Open)

	kiosk := v1.Group("", middleware.SessionRequired(registry))

	sessions := kiosk.Group("/sessions/current")
	sessions.Get("/", h.Session.Current)
	sessions.Post("/login", h.Session.Login)
	sessions.Post("/logout", h.Session.Logout)
	sessions.Delete("/", h.Session.Close)

	kiosk.Get("/view", h.View.Get)
	kiosk.Post("/view", h.View.Navigate)

	residents := kiosk.Group("/residents")
	residents.Get("/", h.Resident.List)
	residents.Post("/", h.Resident.SignUp)
	residents.Get("/:id", h.Resident.Get)
	residents.Get("/:id/legacy-book", middleware.RequireStaff(), h.Export.LegacyBook)

	prompts := kiosk.Group("/prompts", middleware.RequireAuthenticated())
	prompts.Get("/", h.Prompt.List)
	prompts.Get("/categories", h.Prompt.Categories)
	prompts.Post("/", h.Prompt.Create)

	recordings := kiosk.Group("/recordings", middleware.RequireAuthenticated())
	recordings.Get("/", h.Recording.List)
	recordings.Post("/", middleware.RequireResident(), h.Recording.Create)
	recordings.Get("/:id", h.Recording.Get)
	recordings.Put("/:id", middleware.RequireStaff(), h.Recording.Replace)
	recordings.Patch("/:id", middleware.RequireStaff(), h.Recording.Update)
	recordings.Post("/:id/summary", middleware.RequireStaff(), h.Recording.Summarize)

	family := kiosk.Group("/family", middleware.RequireResident())
	family.Post("/messages", h.Family.SendMessage)
	family.Post("/greetings", h.Family.SendGreeting)
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"legacy-booth/internal/domain"
	"legacy-booth/internal/middleware"
	"legacy-booth/internal/service/legacy"
)

type PromptHandler struct {
	legacyService legacy.Service
}

func NewPromptHandler(legacyService legacy.Service) *PromptHandler {
	return &PromptHandler{legacyService: legacyService}
}

func (h *PromptHandler) List(c *fiber.Ctx) error {
	prompts := h.legacyService.Prompts()

	category := c.Query("category")
	if category == "" {
		return c.JSON(prompts)
	}

	filtered := []domain.Prompt{}
	for _, p := range prompts {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return c.JSON(filtered)
}

func (h *PromptHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.legacyService.PromptCategories())
}

func (h *PromptHandler) Create(c *fiber.Ctx) error {
	var input domain.CreatePromptInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return middleware.Unprocessable(err.Error())
	}

	prompt := h.legacyService.AddPrompt(c.UserContext(), input)
	return c.Status(fiber.StatusCreated).JSON(prompt)
}

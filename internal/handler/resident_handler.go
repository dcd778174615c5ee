package handler

import (
	"github.com/gofiber/fiber/v2"

	"legacy-booth/internal/domain"
	"legacy-booth/internal/middleware"
	"legacy-booth/internal/service/legacy"
	"legacy-booth/internal/service/session"
)

type ResidentHandler struct {
	legacyService legacy.Service
}

func NewResidentHandler(legacyService legacy.Service) *ResidentHandler {
	return &ResidentHandler{legacyService: legacyService}
}

type signUpResponse struct {
	Resident domain.Resident  `json:"resident"`
	Session  session.Snapshot `json:"session"`
}

func (h *ResidentHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.legacyService.Residents())
}

// SignUp creates a resident profile and signs it in at this kiosk.
func (h *ResidentHandler) SignUp(c *fiber.Ctx) error {
	var input domain.CreateResidentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return middleware.Unprocessable(err.Error())
	}

	resident := h.legacyService.AddResident(c.UserContext(), input)

	s := middleware.GetSession(c)
	s.Auth.Login(resident)

	return c.Status(fiber.StatusCreated).JSON(signUpResponse{
		Resident: resident,
		Session:  s.Snapshot(),
	})
}

func (h *ResidentHandler) Get(c *fiber.Ctx) error {
	resident, ok := h.legacyService.GetResidentByID(c.Params("id"))
	if !ok {
		return middleware.NotFound("Resident not found")
	}
	return c.JSON(resident)
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"legacy-booth/internal/domain"
	"legacy-booth/internal/middleware"
	"legacy-booth/internal/service/email"
	"legacy-booth/internal/service/legacy"
)

type FamilyHandler struct {
	legacyService legacy.Service
	emailService  email.Service
}

func NewFamilyHandler(legacyService legacy.Service, emailService email.Service) *FamilyHandler {
	return &FamilyHandler{
		legacyService: legacyService,
		emailService:  emailService,
	}
}

type familyMessageRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type greetingRequest struct {
	Occasion    string `json:"occasion"`
	Note        string `json:"note"`
	RecordingID string `json:"recording_id"`
}

func (h *FamilyHandler) SendMessage(c *fiber.Ctx) error {
	var req familyMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	resident, _ := middleware.GetCurrentResident(c)
	if err := h.emailService.SendFamilyMessage(c.UserContext(), resident, req.Subject, req.Message); err != nil {
		return outreachError(err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Message sent"})
}

// SendGreeting emails a greeting, linking the video of recording_id when given.
// The recording must belong to the signed-in resident.
func (h *FamilyHandler) SendGreeting(c *fiber.Ctx) error {
	var req greetingRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	resident, _ := middleware.GetCurrentResident(c)

	var video *domain.VideoRef
	if req.RecordingID != "" {
		recording, ok := h.legacyService.GetRecordingByID(req.RecordingID)
		if !ok || recording.ResidentID != resident.ID {
			return middleware.NotFound("Recording not found")
		}
		video = recording.Video
	}

	if err := h.emailService.SendGreeting(c.UserContext(), resident, req.Occasion, req.Note, video); err != nil {
		return outreachError(err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Greeting sent"})
}

func outreachError(err error) error {
	switch {
	case errors.Is(err, email.ErrNoFamilyContact):
		return middleware.Unprocessable("No family contact email on file")
	case errors.Is(err, email.ErrEmptyMessage):
		return middleware.Unprocessable("Message is empty")
	default:
		return middleware.NewError(fiber.StatusBadGateway, "Failed to send email")
	}
}

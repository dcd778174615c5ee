package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"legacy-booth/internal/middleware"
	"legacy-booth/internal/service/legacy"
	"legacy-booth/internal/service/session"
)

type SessionHandler struct {
	registry          *session.Registry
	legacyService     legacy.Service
	staffPasscodeHash string
}

func NewSessionHandler(registry *session.Registry, legacyService legacy.Service, staffPasscodeHash string) *SessionHandler {
	return &SessionHandler{
		registry:          registry,
		legacyService:     legacyService,
		staffPasscodeHash: staffPasscodeHash,
	}
}

type openSessionResponse struct {
	Token   string           `json:"token"`
	Session session.Snapshot `json:"session"`
}

type loginRequest struct {
	ResidentID string `json:"resident_id"`
	Passcode   string `json:"passcode"`
}

func (h *SessionHandler) Open(c *fiber.Ctx) error {
	s, token, err := h.registry.Open()
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(openSessionResponse{
		Token:   token,
		Session: s.Snapshot(),
	})
}

func (h *SessionHandler) Current(c *fiber.Ctx) error {
	return c.JSON(middleware.GetSession(c).Snapshot())
}

func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if req.ResidentID == "" {
		return middleware.BadRequest("resident_id is required")
	}

	resident, ok := h.legacyService.GetResidentByID(req.ResidentID)
	if !ok {
		return middleware.NotFound("Resident not found")
	}

	if resident.IsStaff {
		if err := session.CheckStaffPasscode(h.staffPasscodeHash, req.Passcode); err != nil {
			if errors.Is(err, session.ErrInvalidPasscode) {
				return middleware.Unauthorized("Invalid staff passcode")
			}
			return err
		}
	}

	s := middleware.GetSession(c)
	s.Auth.Login(resident)

	return c.JSON(s.Snapshot())
}

func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	s := middleware.GetSession(c)
	s.Auth.Logout()

	return c.JSON(s.Snapshot())
}

func (h *SessionHandler) Close(c *fiber.Ctx) error {
	h.registry.Close(middleware.GetSession(c).ID)
	return c.SendStatus(fiber.StatusNoContent)
}

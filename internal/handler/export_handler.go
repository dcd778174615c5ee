package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"legacy-booth/internal/middleware"
	"legacy-booth/internal/service/export"
	"legacy-booth/internal/service/legacy"
)

type ExportHandler struct {
	legacyService legacy.Service
}

func NewExportHandler(legacyService legacy.Service) *ExportHandler {
	return &ExportHandler{legacyService: legacyService}
}

func (h *ExportHandler) LegacyBook(c *fiber.Ctx) error {
	resident, ok := h.legacyService.GetResidentByID(c.Params("id"))
	if !ok {
		return middleware.NotFound("Resident not found")
	}

	data, err := export.LegacyBook(resident, h.legacyService.Recordings())
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("legacy_book_%s_%s.xlsx", resident.ID, time.Now().Format("20060102"))
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	return c.Send(data)
}

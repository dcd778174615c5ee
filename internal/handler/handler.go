package handler

import (
	"github.com/gofiber/fiber/v2"

	"legacy-booth/internal/config"
	"legacy-booth/internal/domain"
	"legacy-booth/internal/service"
)

type Handlers struct {
	Session   *SessionHandler
	View      *ViewHandler
	Resident  *ResidentHandler
	Prompt    *PromptHandler
	Recording *RecordingHandler
	Family    *FamilyHandler
	Export    *ExportHandler
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	maxVideoBytes := int64(cfg.MaxVideoMB) * 1024 * 1024

	return &Handlers{
		Session:   NewSessionHandler(services.Sessions, services.Legacy, cfg.StaffPasscodeHash),
		View:      NewViewHandler(),
		Resident:  NewResidentHandler(services.Legacy),
		Prompt:    NewPromptHandler(services.Legacy),
		Recording: NewRecordingHandler(services.Legacy, services.Videos, services.Summary, maxVideoBytes),
		Family:    NewFamilyHandler(services.Legacy, services.Email),
		Export:    NewExportHandler(services.Legacy),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()
	params.Page = c.QueryInt("page", params.Page)
	params.PageSize = c.QueryInt("page_size", params.PageSize)
	params.Validate()
	return params
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"legacy-booth/internal/domain"
	"legacy-booth/internal/middleware"
	"legacy-booth/internal/service/legacy"
	"legacy-booth/internal/service/media"
	"legacy-booth/internal/service/summary"
)

type RecordingHandler struct {
	legacyService legacy.Service
	videos        media.VideoStore
	summarizer    summary.Summarizer
	maxVideoBytes int64
}

func NewRecordingHandler(legacyService legacy.Service, videos media.VideoStore, summarizer summary.Summarizer, maxVideoBytes int64) *RecordingHandler {
	return &RecordingHandler{
		legacyService: legacyService,
		videos:        videos,
		summarizer:    summarizer,
		maxVideoBytes: maxVideoBytes,
	}
}

// List shows staff every recording, filtered by the resident_id, type and
// status query parameters. Residents only ever see their own.
func (h *RecordingHandler) List(c *fiber.Ctx) error {
	current, _ := middleware.GetCurrentResident(c)

	filter := domain.RecordingFilter{
		ResidentID: c.Query("resident_id"),
		Type:       domain.RecordingType(c.Query("type")),
		Status:     domain.TranscriptionStatus(c.Query("status")),
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return middleware.BadRequest("Invalid recording type")
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return middleware.BadRequest("Invalid transcription status")
	}
	if !current.IsStaff {
		filter.ResidentID = current.ID
	}

	return c.JSON(h.legacyService.ListRecordings(filter, getPaginationParams(c)))
}

func (h *RecordingHandler) Get(c *fiber.Ctx) error {
	recording, err := h.visibleRecording(c)
	if err != nil {
		return err
	}
	return c.JSON(recording)
}

// Create stores an optional "video" upload and records it for the signed-in
// resident. Form fields: type, prompt.
func (h *RecordingHandler) Create(c *fiber.Ctx) error {
	current, _ := middleware.GetCurrentResident(c)
	if _, ok := h.legacyService.GetResidentByID(current.ID); !ok {
		return middleware.Unprocessable("Unknown resident")
	}

	input := domain.CreateRecordingInput{
		ResidentID: current.ID,
		Type:       domain.RecordingType(c.FormValue("type")),
	}
	if prompt := c.FormValue("prompt"); prompt != "" {
		input.Prompt = &prompt
	}
	if err := input.Validate(); err != nil {
		return middleware.Unprocessable(err.Error())
	}

	if file, err := c.FormFile("video"); err == nil {
		mimeType := file.Header.Get("Content-Type")
		if err := media.CheckUpload(file.Size, h.maxVideoBytes, mimeType); err != nil {
			return uploadError(err)
		}

		reader, err := file.Open()
		if err != nil {
			return middleware.BadRequest("Failed to read video")
		}
		defer reader.Close()

		ref, err := h.videos.Put(c.UserContext(), current.ID, file.Filename, file.Size, mimeType, reader)
		if err != nil {
			return err
		}
		input.Video = &ref
	}

	recording := h.legacyService.AddRecording(c.UserContext(), input)
	return c.Status(fiber.StatusCreated).JSON(recording)
}

func (h *RecordingHandler) Update(c *fiber.Ctx) error {
	var input domain.UpdateRecordingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return middleware.Unprocessable(err.Error())
	}

	updated, ok := h.legacyService.ModifyRecording(c.UserContext(), c.Params("id"), input.Apply)
	if !ok {
		return middleware.NotFound("Recording not found")
	}
	return c.JSON(updated)
}

// Replace overwrites the stored recording with the request body.
func (h *RecordingHandler) Replace(c *fiber.Ctx) error {
	var recording domain.Recording
	if err := c.BodyParser(&recording); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	recording.ID = c.Params("id")
	if err := recording.Validate(); err != nil {
		return middleware.Unprocessable(err.Error())
	}

	if !h.legacyService.UpdateRecording(c.UserContext(), recording) {
		return middleware.NotFound("Recording not found")
	}
	return c.JSON(recording)
}

func (h *RecordingHandler) Summarize(c *fiber.Ctx) error {
	recording, ok := h.legacyService.GetRecordingByID(c.Params("id"))
	if !ok {
		return middleware.NotFound("Recording not found")
	}

	text, err := h.summarizer.Summarize(c.UserContext(), recording)
	if err != nil {
		switch {
		case errors.Is(err, summary.ErrNothingToSummarize):
			return middleware.Unprocessable("Recording has no transcription yet")
		case errors.Is(err, summary.ErrSummarizerDisabled):
			return middleware.NewError(fiber.StatusServiceUnavailable, "AI summaries are not configured")
		default:
			return middleware.NewError(fiber.StatusBadGateway, "Summary generation failed")
		}
	}

	// Staff may have edited the recording while the model was working; only
	// the summary is applied to the current version.
	updated, ok := h.legacyService.ModifyRecording(c.UserContext(), recording.ID, func(r domain.Recording) domain.Recording {
		r.AISummary = text
		return r
	})
	if !ok {
		return middleware.NotFound("Recording not found")
	}
	return c.JSON(updated)
}

// visibleRecording hides other residents' recordings behind a 404.
func (h *RecordingHandler) visibleRecording(c *fiber.Ctx) (domain.Recording, error) {
	recording, ok := h.legacyService.GetRecordingByID(c.Params("id"))
	if !ok {
		return domain.Recording{}, middleware.NotFound("Recording not found")
	}

	current, _ := middleware.GetCurrentResident(c)
	if !current.IsStaff && recording.ResidentID != current.ID {
		return domain.Recording{}, middleware.NotFound("Recording not found")
	}
	return recording, nil
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, media.ErrVideoTooLarge):
		return middleware.NewError(fiber.StatusRequestEntityTooLarge, "Video exceeds the upload limit")
	case errors.Is(err, media.ErrUnsupportedMedia):
		return middleware.NewError(fiber.StatusUnsupportedMediaType, "Only video or audio uploads are accepted")
	case errors.Is(err, media.ErrEmptyUpload):
		return middleware.BadRequest("Video is empty")
	default:
		return err
	}
}

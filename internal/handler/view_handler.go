package handler

import (
	"github.com/gofiber/fiber/v2"

	"legacy-booth/internal/middleware"
	"legacy-booth/internal/pkg/i18n"
	"legacy-booth/internal/view"
)

type ViewHandler struct{}

func NewViewHandler() *ViewHandler {
	return &ViewHandler{}
}

type viewResponse struct {
	State   view.State   `json:"state"`
	Title   string       `json:"title"`
	Outcome view.Outcome `json:"outcome,omitempty"`
	Changed bool         `json:"changed,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

type navigateRequest struct {
	View    string         `json:"view"`
	Context map[string]any `json:"context"`
}

func title(c *fiber.Ctx, v view.View) string {
	return i18n.Translate(i18n.FromAcceptLanguage(c.Get("Accept-Language")), string(v))
}

func (h *ViewHandler) Get(c *fiber.Ctx) error {
	state := middleware.GetSession(c).Nav.Current()

	return c.JSON(viewResponse{
		State: state,
		Title: title(c, state.View),
	})
}

// Navigate always answers 200: the machine lands on a permitted screen even
// for unknown or unreachable targets, and the outcome says which happened.
func (h *ViewHandler) Navigate(c *fiber.Ctx) error {
	var req navigateRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if req.View == "" {
		return middleware.BadRequest("view is required")
	}

	t := middleware.GetSession(c).Nav.Navigate(view.View(req.View), view.Payload(req.Context))

	resp := viewResponse{
		State:   t.To,
		Title:   title(c, t.To.View),
		Outcome: t.Outcome,
		Changed: t.Changed(),
	}
	if t.Reason != nil {
		resp.Reason = t.Reason.Error()
	}
	return c.JSON(resp)
}

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legacy-booth/internal/domain"
	"legacy-booth/internal/service/session"
)

func newApp(registry *session.Registry) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(nil)})
	guarded := app.Group("/k", SessionRequired(registry))
	guarded.Get("/any", func(c *fiber.Ctx) error { return c.SendString("ok") })
	guarded.Get("/staff", RequireStaff(), func(c *fiber.Ctx) error { return c.SendString("ok") })
	guarded.Get("/resident", RequireResident(), func(c *fiber.Ctx) error { return c.SendString("ok") })
	guarded.Get("/auth", RequireAuthenticated(), func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("disk on fire") })
	return app
}

func get(t *testing.T, app *fiber.App, path, authHeader string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSessionRequired(t *testing.T) {
	registry := session.NewRegistry([]byte("secret"), time.Hour, nil)
	app := newApp(registry)
	_, token, err := registry.Open()
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/k/any", ""))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/k/any", "Token "+token))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/k/any", "Bearer garbage"))
	assert.Equal(t, http.StatusOK, get(t, app, "/k/any", "Bearer "+token))
}

func TestRoleGuards(t *testing.T) {
	registry := session.NewRegistry([]byte("secret"), time.Hour, nil)
	app := newApp(registry)
	s, token, err := registry.Open()
	require.NoError(t, err)
	bearer := "Bearer " + token

	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/k/auth", bearer))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/k/staff", bearer))

	s.Auth.Login(domain.Resident{ID: "RES-1", Name: "Ada"})
	assert.Equal(t, http.StatusOK, get(t, app, "/k/auth", bearer))
	assert.Equal(t, http.StatusOK, get(t, app, "/k/resident", bearer))
	assert.Equal(t, http.StatusForbidden, get(t, app, "/k/staff", bearer))

	s.Auth.Login(domain.Resident{ID: "STAFF-1", Name: "Sam", IsStaff: true})
	assert.Equal(t, http.StatusOK, get(t, app, "/k/staff", bearer))
	assert.Equal(t, http.StatusForbidden, get(t, app, "/k/resident", bearer))
}

func TestErrorHandler_HidesInternalErrors(t *testing.T) {
	app := newApp(session.NewRegistry([]byte("secret"), time.Hour, nil))

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

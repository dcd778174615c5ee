package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legacy-booth/internal/middleware"
	"legacy-booth/internal/service/session"
)

func TestSession_RequiresToken(t *testing.T) {
	env := newTestEnv(t, "")

	resp := env.do(t, http.MethodGet, "/api/v1/sessions/current", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body middleware.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
	assert.NotEmpty(t, body.TraceID)

	resp = env.do(t, http.MethodGet, "/api/v1/sessions/current", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSession_LoginDrivesView(t *testing.T) {
	env := newTestEnv(t, "")
	token := env.openSession(t)

	resp := env.do(t, http.MethodGet, "/api/v1/sessions/current", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap snapshotBody
	decode(t, resp, &snap)
	assert.Nil(t, snap.Resident)
	assert.Equal(t, "WELCOME", snap.State.View)
	assert.Equal(t, "anonymous", snap.State.Principal.Kind)

	resp = env.do(t, http.MethodPost, "/api/v1/sessions/current/login", token, map[string]string{"resident_id": "RES-1001"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &snap)
	require.NotNil(t, snap.Resident)
	assert.Equal(t, "Eleanor Vance", snap.Resident.Name)
	assert.Equal(t, "RESIDENT_HOME", snap.State.View)
	assert.Equal(t, "resident", snap.State.Principal.Kind)

	resp = env.do(t, http.MethodPost, "/api/v1/sessions/current/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	snap = snapshotBody{}
	decode(t, resp, &snap)
	assert.Nil(t, snap.Resident)
	assert.Equal(t, "WELCOME", snap.State.View)
}

func TestSession_LoginUnknownResident(t *testing.T) {
	env := newTestEnv(t, "")
	token := env.openSession(t)

	resp := env.do(t, http.MethodPost, "/api/v1/sessions/current/login", token, map[string]string{"resident_id": "RES-404"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/sessions/current/login", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSession_StaffPasscode(t *testing.T) {
	hash, err := session.HashPasscode("2468")
	require.NoError(t, err)
	env := newTestEnv(t, hash)
	token := env.openSession(t)

	resp := env.do(t, http.MethodPost, "/api/v1/sessions/current/login", token, map[string]string{"resident_id": "STAFF-01", "passcode": "1111"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/sessions/current/login", token, map[string]string{"resident_id": "STAFF-01", "passcode": "2468"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap snapshotBody
	decode(t, resp, &snap)
	assert.Equal(t, "STAFF_HOME", snap.State.View)
	assert.Equal(t, "staff", snap.State.Principal.Kind)

	// Residents never need the passcode.
	resp = env.do(t, http.MethodPost, "/api/v1/sessions/current/login", token, map[string]string{"resident_id": "RES-1002"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSession_Close(t *testing.T) {
	env := newTestEnv(t, "")
	token := env.openSession(t)

	resp := env.do(t, http.MethodDelete, "/api/v1/sessions/current", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, env.registry.Len())

	resp = env.do(t, http.MethodGet, "/api/v1/view", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestView_Navigate(t *testing.T) {
	env := newTestEnv(t, "")
	token := env.signIn(t, "RES-1001")

	resp := env.do(t, http.MethodPost, "/api/v1/view", token, map[string]any{
		"view":    "RECORDING",
		"context": map[string]any{"prompt_id": "P-3"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body viewBody
	decode(t, resp, &body)
	assert.Equal(t, "accepted", body.Outcome)
	assert.Equal(t, "RECORDING", body.State.View)
	assert.Equal(t, "P-3", body.State.Context["prompt_id"])
	assert.Equal(t, "Recording", body.Title)
	assert.True(t, body.Changed)

	resp = env.do(t, http.MethodPost, "/api/v1/view", token, map[string]any{
		"view":    "RECORDING",
		"context": map[string]any{"prompt_id": "P-3"},
	})
	body = viewBody{}
	decode(t, resp, &body)
	assert.Equal(t, "accepted", body.Outcome)
	assert.False(t, body.Changed, "same screen and context")

	resp = env.do(t, http.MethodPost, "/api/v1/view", token, map[string]any{
		"view":    "RECORDING",
		"context": map[string]any{"prompt_id": "P-4"},
	})
	body = viewBody{}
	decode(t, resp, &body)
	assert.True(t, body.Changed, "same screen with another prompt")

	resp = env.do(t, http.MethodPost, "/api/v1/view", token, map[string]any{"view": "STAFF_HOME"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = viewBody{}
	decode(t, resp, &body)
	assert.Equal(t, "redirected", body.Outcome)
	assert.Equal(t, "RESIDENT_HOME", body.State.View)
	assert.Empty(t, body.State.Context)
	assert.NotEmpty(t, body.Reason)

	resp = env.do(t, http.MethodPost, "/api/v1/view", token, map[string]any{"view": "NOWHERE"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = viewBody{}
	decode(t, resp, &body)
	assert.Equal(t, "invalid", body.Outcome)
	assert.Equal(t, "RESIDENT_HOME", body.State.View)

	resp = env.do(t, http.MethodPost, "/api/v1/view", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestView_LocalizedTitle(t *testing.T) {
	env := newTestEnv(t, "")
	token := env.openSession(t)

	resp := env.do(t, http.MethodGet, "/api/v1/view", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body viewBody
	decode(t, resp, &body)
	assert.Equal(t, "WELCOME", body.State.View)
	assert.Equal(t, "Welcome to the Legacy Booth", body.Title)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/view", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9")
	resp = env.send(t, req, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = viewBody{}
	decode(t, resp, &body)
	assert.Equal(t, "Bienvenido a la Cabina del Legado", body.Title)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legacy-booth/internal/config"
	"legacy-booth/internal/domain"
	"legacy-booth/internal/middleware"
	"legacy-booth/internal/mocks"
	"legacy-booth/internal/pkg/i18n"
	"legacy-booth/internal/repository"
	"legacy-booth/internal/seed"
	"legacy-booth/internal/service"
	"legacy-booth/internal/service/legacy"
	"legacy-booth/internal/service/session"
)

type testEnv struct {
	app        *fiber.App
	legacy     legacy.Service
	registry   *session.Registry
	videos     *mocks.VideoStore
	email      *mocks.EmailService
	summarizer *mocks.Summarizer
}

func newTestEnv(t *testing.T, staffPasscodeHash string) *testEnv {
	t.Helper()
	require.NoError(t, i18n.LoadEmbedded())

	adapter := repository.NewAdapter(repository.NewMemoryStore(), zap.NewNop())
	env := &testEnv{
		legacy:     legacy.NewService(context.Background(), adapter, seed.Default(), zap.NewNop()),
		registry:   session.NewRegistry([]byte("test-secret"), time.Hour, zap.NewNop()),
		videos:     &mocks.VideoStore{},
		email:      &mocks.EmailService{},
		summarizer: &mocks.Summarizer{},
	}

	services := &service.Services{
		Legacy:   env.legacy,
		Sessions: env.registry,
		Videos:   env.videos,
		Email:    env.email,
		Summary:  env.summarizer,
	}
	cfg := &config.Config{MaxVideoMB: 1, StaffPasscodeHash: staffPasscodeHash}

	env.app = fiber.New(fiber.Config{ErrorHandler: middleware.NewErrorHandler(nil)})
	SetupRoutes(env.app, NewHandlers(services, cfg), env.registry)
	return env
}

func (e *testEnv) send(t *testing.T, req *http.Request, token string) *http.Response {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.send(t, req, token)
}

func (e *testEnv) openSession(t *testing.T) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/v1/sessions", "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func (e *testEnv) signIn(t *testing.T, residentID string) string {
	t.Helper()
	token := e.openSession(t)
	resp := e.do(t, http.MethodPost, "/api/v1/sessions/current/login", token, map[string]string{"resident_id": residentID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return token
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

type snapshotBody struct {
	Resident *domain.Resident `json:"resident"`
	State    stateBody        `json:"state"`
}

type stateBody struct {
	Principal struct {
		Kind       string `json:"kind"`
		ResidentID string `json:"resident_id"`
	} `json:"principal"`
	View    string         `json:"view"`
	Context map[string]any `json:"context"`
}

type viewBody struct {
	State   stateBody `json:"state"`
	Title   string    `json:"title"`
	Outcome string    `json:"outcome"`
	Changed bool      `json:"changed"`
	Reason  string    `json:"reason"`
}

func multipartRecording(t *testing.T, fields map[string]string, fileName, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="video"; filename="`+fileName+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recordings", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

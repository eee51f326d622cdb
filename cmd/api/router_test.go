package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorboard/service/internal/admin"
	"github.com/floorboard/service/internal/auth"
	"github.com/floorboard/service/internal/floor"
	"github.com/floorboard/service/internal/storage"
	"github.com/floorboard/service/internal/upload"
)

const testSecret = "router-secret"

type staticProfiles map[string]*admin.Profile

func (s staticProfiles) GetProfile(_ context.Context, id string) (*admin.Profile, error) {
	p, ok := s[id]
	if !ok {
		return nil, admin.ErrNotFound
	}
	return p, nil
}

func testRouter(t *testing.T, requireAuth bool) http.Handler {
	t.Helper()
	objects := storage.NewMemoryStorage("https://cdn.example.com")
	store := floor.NewInstrumentedStore(floor.NewManifestStore(objects, "floors/manifest.json"))

	return newRouter(routerDeps{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		floors:  floor.NewHandler(floor.NewService(store)),
		uploads: upload.NewHandler(upload.NewService(objects), 1<<20),
		admins: admin.NewHandler(admin.NewService(staticProfiles{
			"a1": {Email: "ops@example.com", Tags: []string{"floors"}},
		})),
		jwtSecret:            testSecret,
		requireAuthForWrites: requireAuth,
	})
}

func send(h http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func authHeader(t *testing.T) string {
	t.Helper()
	tok, err := auth.IssueToken(testSecret, "a1", "ops@example.com", time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestRouterHealthAndMetrics(t *testing.T) {
	r := testRouter(t, false)

	rec := send(r, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = send(r, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "floorboard_http_requests_total")
}

func TestRouterSwaggerDoc(t *testing.T) {
	rec := send(testRouter(t, false), http.MethodGet, "/swagger/doc.json", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Floorboard API")
}

func TestRouterOpenWrites(t *testing.T) {
	r := testRouter(t, false)
	jsonHeaders := map[string]string{"Content-Type": "application/json"}

	rec := send(r, http.MethodGet, "/floors", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"floors":[]}`, rec.Body.String())

	rec = send(r, http.MethodPut, "/floors/publish",
		strings.NewReader(`{"floors":[{"id":"f1","name":"L1","url":"https://x/a.png"}]}`), jsonHeaders)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = send(r, http.MethodDelete, "/floors/f1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"floors":[]`)
}

func TestRouterWritesRequireAuthWhenEnabled(t *testing.T) {
	r := testRouter(t, true)
	body := `{"floors":[{"name":"L1","url":"https://x/a.png"}]}`

	rec := send(r, http.MethodPut, "/floors", strings.NewReader(body), map[string]string{"Content-Type": "application/json"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = send(r, http.MethodPut, "/floors", strings.NewReader(body), map[string]string{
		"Content-Type":  "application/json",
		"Authorization": authHeader(t),
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = send(r, http.MethodGet, "/floors", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterUpload(t *testing.T) {
	r := testRouter(t, false)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "plan.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("png"))
	require.NoError(t, mw.Close())

	rec := send(r, http.MethodPost, "/storage/floors", &buf, map[string]string{"Content-Type": mw.FormDataContentType()})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"key":"floors/`)
	assert.Contains(t, rec.Body.String(), `"url":"https://cdn.example.com/floors/`)
}

func TestRouterMe(t *testing.T) {
	r := testRouter(t, false)

	rec := send(r, http.MethodGet, "/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"No token provided"}`, rec.Body.String())

	rec = send(r, http.MethodGet, "/me", nil, map[string]string{"Authorization": authHeader(t)})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"ops@example.com","tags":["floors"]}`, rec.Body.String())
}

func TestRouterCORSPreflight(t *testing.T) {
	rec := send(testRouter(t, true), http.MethodOptions, "/floors", nil, map[string]string{
		"Origin":                        "https://admin.example.com",
		"Access-Control-Request-Method": http.MethodPut,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorboard/service/internal/auth"
	"github.com/floorboard/service/internal/middleware"
)

const secret = "admin-secret"

type fakeProfiles struct {
	profiles map[string]*Profile
	err      error
}

func (f fakeProfiles) GetProfile(_ context.Context, id string) (*Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func serveMe(t *testing.T, repo ProfileReader, header string) *httptest.ResponseRecorder {
	t.Helper()
	h := middleware.RequireAuth(secret)(http.HandlerFunc(NewHandler(NewService(repo)).GetMe))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func bearer(t *testing.T, adminID string, ttl time.Duration) string {
	t.Helper()
	tok, err := auth.IssueToken(secret, adminID, "", ttl)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestGetMeReturnsOnlyEmailAndTags(t *testing.T) {
	repo := fakeProfiles{profiles: map[string]*Profile{
		"a1": {Email: "ops@example.com", Tags: []string{"floors"}},
	}}

	rec := serveMe(t, repo, bearer(t, "a1", time.Hour))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"ops@example.com","tags":["floors"]}`, rec.Body.String())
}

func TestGetMeExpiredToken(t *testing.T) {
	rec := serveMe(t, fakeProfiles{}, bearer(t, "a1", -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
}

func TestGetMeDeletedAdmin(t *testing.T) {
	rec := serveMe(t, fakeProfiles{profiles: map[string]*Profile{}}, bearer(t, "gone", time.Hour))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMeBackendError(t *testing.T) {
	rec := serveMe(t, fakeProfiles{err: errors.New("db down")}, bearer(t, "a1", time.Hour))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Server error", body["error"])
}

func TestGetMeWithoutMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(NewService(fakeProfiles{})).GetMe(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

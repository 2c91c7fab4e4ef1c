package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vulearn/internal/config"
	"vulearn/internal/mockdata"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Environment:    "test",
		APIBaseURL:     "http://127.0.0.1:1",
		UseMockData:    true,
		AllowedOrigins: []string{"https://vu.example"},
	}
	return New(cfg, zerolog.Nop())
}

func TestCoursesServedWithoutSession(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/courses", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var courses []map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
	assert.Len(t, courses, len(mockdata.Courses()))
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRootRedirectsToV1(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/v1/categories", rec.Header().Get("Location"))
}

func TestUnknownV1PathIsNotFound(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
	req.Header.Set("Origin", "https://vu.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://vu.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taneeshamadhu18/video-call-assignment/internal/config"
)

func devCORS() config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins:   "http://localhost:5173, http://localhost:5174",
		AllowedMethods:   "GET,PUT,PATCH,OPTIONS",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
		MaxAge:           600,
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for preflight")
	})

	req := httptest.NewRequest(http.MethodOptions, "/participants/1/microphone", nil)
	req.Header.Set("Origin", "http://localhost:5174")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()

	CORS(devCORS())(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5174", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,PUT,PATCH,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_AllowedOrigin(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/participants", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	CORS(devCORS())(handler).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/participants", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	CORS(devCORS())(handler).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Wildcard(t *testing.T) {
	cfg := devCORS()
	cfg.AllowedOrigins = "*"
	cfg.AllowCredentials = false

	req := httptest.NewRequest(http.MethodGet, "/participants/count", nil)
	req.Header.Set("Origin", "https://any.example")
	rec := httptest.NewRecorder()

	CORS(cfg)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, "https://any.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_PlainOptionsPassesThrough(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/participants", nil)
	rec := httptest.NewRecorder()

	CORS(devCORS())(handler).ServeHTTP(rec, req)

	assert.True(t, called)
}

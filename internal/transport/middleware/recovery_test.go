package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecovery_NoPanic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Recovery(logger)(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecovery_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("participant row vanished")
	})

	rec := httptest.NewRecorder()
	Recovery(logger)(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/participants/3", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"internal server error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "participant row vanished")
	assert.Contains(t, buf.String(), "/participants/3")
}

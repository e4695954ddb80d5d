package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
	"github.com/taneeshamadhu18/video-call-assignment/pkg/ctxutil"
)

const msgNotFound = "Participant not found"

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Detail: message})
}

// handleError maps service errors onto HTTP statuses. Anything unexpected is
// logged with the request id and hidden behind a generic 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusUnprocessableEntity, ve.Detail())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// NotFound answers unknown routes in the same error shape as the API.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed answers known routes hit with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

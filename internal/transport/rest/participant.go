package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
	"github.com/taneeshamadhu18/video-call-assignment/internal/service/participant"
)

const maxBodyBytes = 1 << 16

// participantService defines the minimal interface needed by ParticipantHandler.
type participantService interface {
	List(ctx context.Context, input participant.ListInput) ([]domain.Participant, error)
	Count(ctx context.Context, search string) (int, error)
	Get(ctx context.Context, id int64) (*domain.Participant, error)
	SetMicrophone(ctx context.Context, input participant.SetFlagInput) (*domain.Participant, error)
	SetCamera(ctx context.Context, input participant.SetFlagInput) (*domain.Participant, error)
	SetStatus(ctx context.Context, input participant.SetFlagInput) (*domain.Participant, error)
	SetMedia(ctx context.Context, input participant.SetMediaInput) (*domain.Participant, error)
	DefaultLimit() int
}

// ParticipantHandler serves the participant REST endpoints.
type ParticipantHandler struct {
	svc participantService
	log *slog.Logger
}

// NewParticipantHandler creates a ParticipantHandler.
func NewParticipantHandler(svc participantService, logger *slog.Logger) *ParticipantHandler {
	return &ParticipantHandler{svc: svc, log: logger.With("handler", "participant")}
}

type countResponse struct {
	Total int `json:"total"`
}

// List handles GET /participants?search=&limit=&offset=.
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, ferr := queryInt(q.Get("limit"), "limit", h.svc.DefaultLimit())
	if ferr != nil {
		writeError(w, http.StatusUnprocessableEntity, ferr.String())
		return
	}
	offset, ferr := queryInt(q.Get("offset"), "offset", 0)
	if ferr != nil {
		writeError(w, http.StatusUnprocessableEntity, ferr.String())
		return
	}

	items, err := h.svc.List(r.Context(), participant.ListInput{
		Search: q.Get("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Count handles GET /participants/count?search=.
func (h *ParticipantHandler) Count(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.Count(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, countResponse{Total: total})
}

// Get handles GET /participants/{id}.
func (h *ParticipantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// SetMicrophone handles PATCH|PUT /participants/{id}/microphone with {"mic_on": bool}.
func (h *ParticipantHandler) SetMicrophone(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, domain.FieldMicrophone, h.svc.SetMicrophone)
}

// SetCamera handles PATCH|PUT /participants/{id}/camera with {"camera_on": bool}.
func (h *ParticipantHandler) SetCamera(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, domain.FieldCamera, h.svc.SetCamera)
}

// SetStatus handles PATCH|PUT /participants/{id}/status with {"online": bool}.
func (h *ParticipantHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, domain.FieldOnline, h.svc.SetStatus)
}

// SetMedia handles PATCH|PUT /participants/{id}/media with both media flags.
func (h *ParticipantHandler) SetMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	flags, ferr := decodeFlags(w, r, domain.FieldMicrophone, domain.FieldCamera)
	if ferr != nil {
		writeError(w, http.StatusUnprocessableEntity, ferr.String())
		return
	}

	p, err := h.svc.SetMedia(r.Context(), participant.SetMediaInput{
		ID:       id,
		MicOn:    flags[domain.FieldMicrophone],
		CameraOn: flags[domain.FieldCamera],
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

type flagSetter func(ctx context.Context, input participant.SetFlagInput) (*domain.Participant, error)

func (h *ParticipantHandler) setFlag(w http.ResponseWriter, r *http.Request, field domain.MediaField, set flagSetter) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	flags, ferr := decodeFlags(w, r, field)
	if ferr != nil {
		writeError(w, http.StatusUnprocessableEntity, ferr.String())
		return
	}

	p, err := set(r.Context(), participant.SetFlagInput{ID: id, Value: flags[field]})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// ---------------------------------------------------------------------------
// Request parsing
// ---------------------------------------------------------------------------

func queryInt(raw, name string, def int) (int, *domain.FieldError) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.FieldError{Field: name, Message: "must be an integer"}
	}
	return n, nil
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "participant_id: must be an integer")
		return 0, false
	}
	// Ids start at 1, so a well-formed non-positive id can never match a row.
	if id <= 0 {
		writeError(w, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return id, true
}

// decodeFlags reads a JSON object and requires every named field to be a
// JSON boolean. Strings, numbers and null are rejected.
func decodeFlags(w http.ResponseWriter, r *http.Request, fields ...domain.MediaField) (map[domain.MediaField]bool, *domain.FieldError) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &domain.FieldError{Field: "body", Message: "could not be read"}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &domain.FieldError{Field: "body", Message: "is required"}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &domain.FieldError{Field: "body", Message: "must be a JSON object"}
	}

	out := make(map[domain.MediaField]bool, len(fields))
	for _, f := range fields {
		v, ok := raw[f.String()]
		if !ok {
			return nil, &domain.FieldError{Field: f.String(), Message: "is required"}
		}
		var b bool
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) || json.Unmarshal(v, &b) != nil {
			return nil, &domain.FieldError{Field: f.String(), Message: "must be a boolean"}
		}
		out[f] = b
	}
	return out, nil
}

// Package client is the HTTP adapter the console uses to talk to the
// participants API. Every failure is normalized into *Error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

// DefaultTimeout bounds every outbound call. Calls are never retried.
const DefaultTimeout = 10 * time.Second

const (
	actionList       = "fetch participants"
	actionCount      = "fetch participant count"
	actionGet        = "fetch participant"
	actionMicrophone = "update microphone"
	actionCamera     = "update camera"
	actionStatus     = "update status"
	actionMedia      = "update media"
)

// Client calls the participants REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger. Requests are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for the API rooted at baseURL, for example
// "http://localhost:8000" or "http://localhost:8000/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("adapter", "participants_api")
	return c
}

// ListParams selects one page of participants.
type ListParams struct {
	Search string
	Limit  int
	Offset int
}

// ListParticipants calls GET /participants.
func (c *Client) ListParticipants(ctx context.Context, p ListParams) ([]domain.Participant, error) {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("offset", strconv.Itoa(p.Offset))

	out := []domain.Participant{}
	if err := c.do(ctx, actionList, http.MethodGet, "/participants?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Participant{}
	}
	return out, nil
}

// CountParticipants calls GET /participants/count.
func (c *Client) CountParticipants(ctx context.Context, search string) (int, error) {
	path := "/participants/count"
	if search != "" {
		path += "?" + url.Values{"search": {search}}.Encode()
	}

	var resp struct {
		Total int `json:"total"`
	}
	if err := c.do(ctx, actionCount, http.MethodGet, path, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Total, nil
}

// GetParticipant calls GET /participants/{id}.
func (c *Client) GetParticipant(ctx context.Context, id int64) (*domain.Participant, error) {
	var p domain.Participant
	if err := c.do(ctx, actionGet, http.MethodGet, participantPath(id, ""), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SetMicrophone calls PATCH /participants/{id}/microphone.
func (c *Client) SetMicrophone(ctx context.Context, id int64, on bool) (*domain.Participant, error) {
	return c.patch(ctx, actionMicrophone, participantPath(id, "microphone"), map[string]bool{"mic_on": on})
}

// SetCamera calls PATCH /participants/{id}/camera.
func (c *Client) SetCamera(ctx context.Context, id int64, on bool) (*domain.Participant, error) {
	return c.patch(ctx, actionCamera, participantPath(id, "camera"), map[string]bool{"camera_on": on})
}

// SetStatus calls PATCH /participants/{id}/status.
func (c *Client) SetStatus(ctx context.Context, id int64, online bool) (*domain.Participant, error) {
	return c.patch(ctx, actionStatus, participantPath(id, "status"), map[string]bool{"online": online})
}

// SetMedia calls PATCH /participants/{id}/media.
func (c *Client) SetMedia(ctx context.Context, id int64, micOn, cameraOn bool) (*domain.Participant, error) {
	return c.patch(ctx, actionMedia, participantPath(id, "media"), map[string]bool{"mic_on": micOn, "camera_on": cameraOn})
}

func (c *Client) patch(ctx context.Context, action, path string, body any) (*domain.Participant, error) {
	var p domain.Participant
	if err := c.do(ctx, action, http.MethodPatch, path, body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func participantPath(id int64, sub string) string {
	path := "/participants/" + strconv.FormatInt(id, 10)
	if sub != "" {
		path += "/" + sub
	}
	return path
}

// do performs one request and decodes a 2xx JSON body into out. Any failure
// comes back as *Error tagged with action.
func (c *Client) do(ctx context.Context, action, method, path string, body, out any) error {
	fail := func(status int, detail string, err error) error {
		c.log.DebugContext(ctx, "api call failed",
			slog.String("action", action),
			slog.Int("status", status),
			slog.String("detail", detail),
		)
		return &Error{Action: action, Status: status, Detail: detail, Err: err}
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fail(0, err.Error(), err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fail(0, err.Error(), err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(0, err.Error(), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, err.Error(), err)
	}

	c.log.DebugContext(ctx, "api call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, extractDetail(resp.StatusCode, raw), nil)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fail(resp.StatusCode, fmt.Sprintf("invalid response body: %v", err), err)
		}
	}
	return nil
}

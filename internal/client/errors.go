package client

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// Error is the only error type returned by Client. Its message is always
// "Failed to <action>: <detail>".
type Error struct {
	Action string
	// Status is the HTTP status, or 0 when the request never got a response.
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return "Failed to " + e.Action + ": " + e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports whether the server answered 404.
func (e *Error) NotFound() bool { return e.Status == http.StatusNotFound }

// errorBody covers the error shapes this API and common proxies return.
// detail is either a string or a list of {"msg": ...} objects.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// extractDetail picks the most specific message from an error response,
// falling back to the status text.
func extractDetail(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if d := detailText(eb.Detail); d != "" {
			return d
		}
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "unexpected status " + strconv.Itoa(status)
}

func detailText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

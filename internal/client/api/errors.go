package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
)

// Error is a backend rejection with the HTTP status and the most specific
// message the response body offered. It unwraps to the matching sentinel so
// callers can branch with errors.Is while still showing the server's text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadRequest:
		return ErrBadRequest
	}
	return nil
}

// errorBody is the backend's error envelope. "error" may be a plain string
// or an object of field errors; "detail" is the DRF fallback.
type errorBody struct {
	Error  json.RawMessage `json:"error"`
	Detail string          `json:"detail"`
}

// newAPIError extracts the most specific message available from an error
// response body, falling back to the standard status text.
func newAPIError(status int, body []byte) *Error {
	msg := extractMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Status: status, Message: msg}
}

func extractMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}

	if len(eb.Error) > 0 {
		var s string
		if err := json.Unmarshal(eb.Error, &s); err == nil {
			return s
		}

		var fields struct {
			NonFieldErrors []string `json:"non_field_errors"`
		}
		if err := json.Unmarshal(eb.Error, &fields); err == nil && len(fields.NonFieldErrors) > 0 {
			return fields.NonFieldErrors[0]
		}
	}

	return eb.Detail
}

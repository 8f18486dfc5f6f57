// Package http talks to the learning platform's REST API and serves the
// renderers over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/lessonmark"
)

// Error is a non-2xx response from the platform API.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("http: status %d", e.StatusCode)
	}
	return fmt.Sprintf("http: status %d: %s", e.StatusCode, e.Detail)
}

// Unwrap maps status codes onto the domain sentinel errors.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return lessonmark.ErrUnauthorized
	case http.StatusNotFound:
		return lessonmark.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return lessonmark.ErrValidation
	}
	return nil
}

// IsUnauthorized reports whether err means the token must be replaced.
func IsUnauthorized(err error) bool {
	return errors.Is(err, lessonmark.ErrUnauthorized)
}

const maxErrorBody = 64 << 10

// parseHTTPError reads the API's {"detail": ...} error body. Detail is a
// string for handled errors and a list of {msg} objects for request
// validation failures.
func parseHTTPError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		apiErr.Detail = detail
		return apiErr
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			msgs = append(msgs, it.Msg)
		}
		apiErr.Detail = strings.Join(msgs, "; ")
		return apiErr
	}
	apiErr.Detail = string(payload.Detail)
	return apiErr
}

// apiTime accepts RFC 3339 timestamps and the zone-less ISO 8601 form the
// platform emits, which is UTC.
type apiTime struct {
	time.Time
}

var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		// null or a non-string leaves the zero time.
		return nil
	}
	for _, layout := range apiTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("parse time %q", s)
}

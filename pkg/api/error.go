package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// ErrNotFound is wrapped by any APIError produced from a 404 so callers
// can branch with errors.Is without inspecting status codes.
var ErrNotFound = errors.New("not found")

type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && e.StatusCode != 0 {
		msg = http.StatusText(e.StatusCode)
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		if msg == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// errorMessage pulls a human readable message out of an error body. The
// API is not consistent about the field name across versions.
func errorMessage(body []byte) string {
	for _, field := range []string{"message", "error"} {
		if msg := gjson.GetBytes(body, field); msg.Exists() && msg.Type == gjson.String {
			return msg.String()
		}
	}
	return ""
}

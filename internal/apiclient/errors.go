package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

var (
	// ErrInvalidJSON is returned when a response claims to be JSON but does
	// not parse.
	ErrInvalidJSON = errors.New("Invalid JSON response from API")
	// ErrSessionExpired is returned when no usable token pair remains. The
	// local session has been cleared by the time it is returned.
	ErrSessionExpired = errors.New("Session expired. Please log in again.")
	// ErrNoSession is returned for authenticated calls on a client built
	// without a session manager.
	ErrNoSession = errors.New("authenticated requests require a session")
	// ErrUnexpectedContent is returned when a typed fetch receives a non-JSON
	// body.
	ErrUnexpectedContent = errors.New("unexpected response content type")
)

// APIError is a non-2xx response. Message carries the server supplied text.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func newAPIError(status int, header http.Header, body []byte) *APIError {
	return &APIError{StatusCode: status, Message: errorMessage(status, header, body)}
}

// errorMessage prefers a JSON "message" field (a string, or a list joined by
// ", "), then the raw body, then a generic status line.
func errorMessage(status int, header http.Header, body []byte) string {
	if isJSONContent(header.Get("Content-Type")) {
		var payload struct {
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && len(payload.Message) > 0 {
			var s string
			if err := json.Unmarshal(payload.Message, &s); err == nil {
				return s
			}
			var list []string
			if err := json.Unmarshal(payload.Message, &list); err == nil {
				return strings.Join(list, ", ")
			}
		}
	}
	if text := string(body); text != "" {
		return text
	}
	return fmt.Sprintf("Request failed with status %d", status)
}

func isJSONContent(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

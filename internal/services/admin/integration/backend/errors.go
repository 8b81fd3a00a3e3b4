package backend

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrUnexpectedEnvelope reports a list response that was neither an array
// nor an object holding the array under the expected key.
var ErrUnexpectedEnvelope = errors.New("backend: unexpected response envelope")

// ErrInvalidInput reports a request the client refused to send.
var ErrInvalidInput = errors.New("backend: invalid input")

// Error is a non-2xx backend response.
type Error struct {
	Status  int
	Message string
	Detail  string
}

func (e *Error) Error() string {
	message := strings.TrimSpace(e.Message)
	detail := strings.TrimSpace(e.Detail)
	switch {
	case message != "" && detail != "":
		return message + ": " + detail
	case message != "":
		return message
	case detail != "":
		return detail
	default:
		return "backend returned " + http.StatusText(e.Status)
	}
}

// StatusOf returns the backend HTTP status carried by err, or zero.
func StatusOf(err error) int {
	var backendErr *Error
	if errors.As(err, &backendErr) {
		return backendErr.Status
	}
	return 0
}

// parseError builds an Error from a `{message, error}` body.
func parseError(status int, body []byte) *Error {
	result := &Error{Status: status}
	if !gjson.ValidBytes(body) {
		result.Detail = strings.TrimSpace(string(body))
		return result
	}
	parsed := gjson.ParseBytes(body)
	result.Message = parsed.Get("message").String()
	if detail := parsed.Get("error"); detail.Exists() {
		if detail.IsObject() || detail.IsArray() {
			result.Detail = detail.Raw
		} else {
			result.Detail = detail.String()
		}
	}
	return result
}

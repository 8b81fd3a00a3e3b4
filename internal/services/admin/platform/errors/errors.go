// Package errors defines typed admin application errors and their HTTP
// status mapping.
package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/louisbranch/cashdesk/internal/services/admin/integration/backend"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
)

// Error is a typed admin failure with an optional localization key.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// LocalizationKey returns the localization key carried by err, if any.
func LocalizationKey(err error) string {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to the status the admin surface responds with.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return kindStatus(appErr.Kind)
	}
	switch {
	case stderrors.Is(err, backend.ErrInvalidInput), stderrors.Is(err, storage.ErrInvalidFilter),
		stderrors.Is(err, storage.ErrInvalidOrder):
		return http.StatusBadRequest
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case stderrors.Is(err, backend.ErrUnexpectedEnvelope):
		return http.StatusBadGateway
	}
	if status := backend.StatusOf(err); status != 0 {
		return backendStatus(status)
	}
	return http.StatusInternalServerError
}

func kindStatus(kind Kind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// backendStatus passes client errors through and reports backend failures
// as a bad gateway.
func backendStatus(status int) int {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return http.StatusBadGateway
	case status >= 400 && status < 500:
		return status
	default:
		return http.StatusBadGateway
	}
}

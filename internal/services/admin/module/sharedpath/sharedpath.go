// Package sharedpath holds the helpers route modules share to build method
// patterns and read identifiers from them.
package sharedpath

import (
	"net/http"
	"strings"
)

// IDParam is the wildcard name used for identifiers in route patterns.
const IDParam = "id"

// Get returns a GET pattern for path.
func Get(path string) string {
	return http.MethodGet + " " + path
}

// Post returns a POST pattern for path.
func Post(path string) string {
	return http.MethodPost + " " + path
}

// WithID appends the identifier wildcard and optional suffix segments to
// base, for example WithID("/users", "reset-password") is
// "/users/{id}/reset-password".
func WithID(base string, suffix ...string) string {
	pattern := strings.TrimRight(base, "/") + "/{" + IDParam + "}"
	for _, part := range suffix {
		pattern += "/" + strings.Trim(part, "/")
	}
	return pattern
}

// ID reads the trimmed identifier matched by a WithID pattern.
func ID(r *http.Request) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.PathValue(IDParam))
}

// WithIDHandler adapts a handler that takes an identifier.
func WithIDHandler(handle func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := ID(r)
		if id == "" {
			http.NotFound(w, r)
			return
		}
		handle(w, r, id)
	}
}

package httpmux

import (
	"io/fs"
	"net/http"
	"strconv"

	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
)

// MountStatic wires static asset serving into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, wrap func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if wrap != nil {
		staticHandler = wrap(staticHandler)
	}
	rootMux.Handle("GET "+routepath.StaticPrefix, staticHandler)
}

// CacheFor marks static responses cacheable for maxAgeSeconds.
func CacheFor(maxAgeSeconds int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxAgeSeconds > 0 {
				w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(maxAgeSeconds))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// MountAdminRoutes mounts admin application routes under root path.
func MountAdminRoutes(rootMux *http.ServeMux, adminMux *http.ServeMux) {
	if rootMux == nil || adminMux == nil {
		return
	}
	rootMux.Handle(routepath.Root, adminMux)
}

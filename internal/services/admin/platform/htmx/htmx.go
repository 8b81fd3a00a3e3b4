// Package htmx renders admin pages for full loads and htmx swaps.
package htmx

import (
	"bytes"
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/httpx"
)

// TitleTag formats an escaped title element, or "" for a blank title.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage writes fragment for htmx requests and full otherwise. htmx
// responses gain a title element so hx-boost navigation updates the tab.
// A nil fragment falls back to full and the reverse.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, title string) {
	RenderPageStatus(w, r, http.StatusOK, fragment, full, title)
}

// RenderPageStatus is RenderPage with an explicit status code.
func RenderPageStatus(w http.ResponseWriter, r *http.Request, status int, fragment templ.Component, full templ.Component, title string) {
	target := full
	prefix := ""
	if httpx.IsHTMXRequest(r) {
		target = fragment
		prefix = TitleTag(title)
	}
	if target == nil {
		target = fragment
		if target == nil {
			target = full
		}
	}
	if target == nil {
		w.WriteHeader(status)
		return
	}

	var body bytes.Buffer
	if err := target.Render(r.Context(), &body); err != nil {
		log.Printf("render %s: %v", r.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(prefix))
	_, _ = body.WriteTo(w)
}

// RenderFragment writes a component with no page chrome, for hx-get
// targets such as table content and dialogs.
func RenderFragment(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	RenderPageStatus(w, r, status, component, component, "")
}

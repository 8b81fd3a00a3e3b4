package templates

import (
	"github.com/louisbranch/cashdesk/internal/datatable"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or the key if no localizer is available.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		if keyString, ok := key.(string); ok {
			return keyString
		}
		return ""
	}
	return loc.Sprintf(key, args...)
}

// TableLabels localizes the data table chrome.
func TableLabels(loc Localizer) datatable.Labels {
	if loc == nil {
		return datatable.DefaultLabels()
	}
	return datatable.Labels{
		Search:   T(loc, "table.search"),
		Loading:  T(loc, "table.loading"),
		Previous: T(loc, "table.previous"),
		Next:     T(loc, "table.next"),
		PageSize: T(loc, "table.page_size"),
		Range: func(first, last, total int) string {
			return T(loc, "table.range", first, last, total)
		},
	}
}

package datatable

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is used when no valid page size is requested.
const DefaultPageSize = 10

// PageSizes lists the page sizes offered by the footer select.
var PageSizes = []int{5, 10, 25, 50}

// Query parameter names, prefixed per table instance.
const (
	paramQuery = "q"
	paramPage  = "page"
	paramSize  = "size"
	paramRow   = "row"
	paramKey   = "key"
)

// State is the per-instance table state carried between requests.
type State struct {
	// Page is 0-based.
	Page     int
	PageSize int
	Query    string
}

// NewState returns the initial state: first page, default size, no query.
func NewState() State {
	return State{PageSize: DefaultPageSize}
}

// WithQuery sets the search query and returns to the first page.
func (s State) WithQuery(query string) State {
	s.Query = query
	s.Page = 0
	s.PageSize = NormalizePageSize(s.PageSize)
	return s
}

// WithPage moves to page p. Negative pages become 0.
func (s State) WithPage(page int) State {
	if page < 0 {
		page = 0
	}
	s.Page = page
	s.PageSize = NormalizePageSize(s.PageSize)
	return s
}

// WithPageSize sets the page size and returns to the first page.
func (s State) WithPageSize(size int) State {
	s.PageSize = NormalizePageSize(size)
	s.Page = 0
	return s
}

// NormalizePageSize maps sizes outside PageSizes to DefaultPageSize.
func NormalizePageSize(size int) int {
	for _, allowed := range PageSizes {
		if size == allowed {
			return size
		}
	}
	return DefaultPageSize
}

// Offset returns the index of the first row on the current page.
func (s State) Offset() int {
	return s.Page * NormalizePageSize(s.PageSize)
}

// ParseState reads a table state from query values under prefix.
// Missing or malformed values fall back to the initial state. The query is
// kept as typed.
func ParseState(values url.Values, prefix string) State {
	state := NewState()
	if values == nil {
		return state
	}
	state.Query = values.Get(paramName(prefix, paramQuery))
	if size, err := strconv.Atoi(values.Get(paramName(prefix, paramSize))); err == nil {
		state.PageSize = NormalizePageSize(size)
	}
	if page, err := strconv.Atoi(values.Get(paramName(prefix, paramPage))); err == nil && page > 0 {
		state.Page = page
	}
	return state
}

// ParseRow reads the clicked row position under prefix.
func ParseRow(values url.Values, prefix string) (int, bool) {
	if values == nil {
		return 0, false
	}
	raw := values.Get(paramName(prefix, paramRow))
	if raw == "" {
		return 0, false
	}
	position, err := strconv.Atoi(raw)
	if err != nil || position < 0 {
		return 0, false
	}
	return position, true
}

// ParseKey reads the clicked row key under prefix.
func ParseKey(values url.Values, prefix string) (string, bool) {
	if values == nil {
		return "", false
	}
	key := values.Get(paramName(prefix, paramKey))
	return key, key != ""
}

// Values returns the state as query values under prefix. Defaults are omitted.
func (s State) Values(prefix string) url.Values {
	values := url.Values{}
	if s.Query != "" {
		values.Set(paramName(prefix, paramQuery), s.Query)
	}
	if s.Page > 0 {
		values.Set(paramName(prefix, paramPage), strconv.Itoa(s.Page))
	}
	if size := NormalizePageSize(s.PageSize); size != DefaultPageSize {
		values.Set(paramName(prefix, paramSize), strconv.Itoa(size))
	}
	return values
}

// Encode returns the state as an encoded query string under prefix.
func (s State) Encode(prefix string) string {
	return s.Values(prefix).Encode()
}

func paramName(prefix string, name string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return name
	}
	return prefix + "_" + name
}

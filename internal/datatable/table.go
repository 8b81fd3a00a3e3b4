package datatable

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/platform/markup"
)

const (
	// DefaultEmptyValue is shown for missing or nil cells.
	DefaultEmptyValue = "N/A"
	// DefaultEmptyMessage is shown when no rows are visible.
	DefaultEmptyMessage = "No data found"
	defaultID           = "table"
)

// Labels holds the display strings of the table chrome.
type Labels struct {
	Search   string
	Loading  string
	Previous string
	Next     string
	PageSize string
	// Range formats the "first-last of total" footer text.
	Range func(first, last, total int) string
}

// DefaultLabels returns English labels.
func DefaultLabels() Labels {
	return Labels{
		Search:   "Search...",
		Loading:  "Loading...",
		Previous: "Previous",
		Next:     "Next",
		PageSize: "Rows per page",
		Range: func(first, last, total int) string {
			return fmt.Sprintf("Showing %d-%d of %d", first, last, total)
		},
	}
}

// Table is one data table instance, built per request.
type Table struct {
	// ID is the DOM id and the query parameter prefix of this instance.
	ID      string
	Title   string
	Columns []Column
	Data    []Row
	// OnRowClick receives the original record of a clicked row. Rows are
	// not interactive when nil.
	OnRowClick func(Row)
	// RowKey returns the stable identity of a record. When set, click URLs
	// carry the key instead of the page position, and rows with an empty
	// key are not interactive.
	RowKey            func(Row) string
	Loading           bool
	SearchDisabled    bool
	SearchPlaceholder string
	// FooterDisabled hides the page size and page controls; only the
	// first page of Data is shown.
	FooterDisabled bool
	// URL is the fragment endpoint the table controls request.
	URL          string
	EmptyValue   string
	EmptyMessage string
	Labels       Labels
}

// VisibleRow is a rendered row. Key is positional within the page and only
// identifies the row for presentation; ID is the RowKey of the record.
type VisibleRow struct {
	Key      string
	ID       string
	Position int
	Record   Row
}

// View is the computed presentation of a table for one state.
type View struct {
	Columns []Column
	Rows    []VisibleRow
	State   State
	// Total counts the filtered rows.
	Total     int
	PageCount int
	HasPrev   bool
	HasNext   bool
	Loading   bool
	// First and Last are the 1-based bounds of the visible rows, 0 when none.
	First int
	Last  int
}

// Prefix returns the query parameter prefix of the instance.
func (t Table) Prefix() string {
	if id := strings.TrimSpace(t.ID); id != "" {
		return id
	}
	return defaultID
}

// Interactive reports whether rows react to clicks.
func (t Table) Interactive() bool {
	return t.OnRowClick != nil
}

// Filtered returns the rows eligible for pagination under state.
func (t Table) Filtered(state State) []Row {
	if t.SearchDisabled {
		return t.Data
	}
	return Filter(t.Data, state.Query)
}

// View computes the visible rows and footer controls for state.
func (t Table) View(state State) View {
	state.PageSize = NormalizePageSize(state.PageSize)
	if state.Page < 0 {
		state.Page = 0
	}
	if t.SearchDisabled {
		state.Query = ""
	}
	view := View{
		Columns: t.Columns,
		State:   state,
		Loading: t.Loading,
	}
	if t.Loading {
		return view
	}

	filtered := t.Filtered(state)
	view.Total = len(filtered)
	view.PageCount = PageCount(view.Total, state.PageSize)
	view.HasPrev = HasPrev(state.Page)
	view.HasNext = HasNext(view.Total, state.Page, state.PageSize)

	page := Paginate(filtered, state.Page, state.PageSize)
	view.Rows = make([]VisibleRow, 0, len(page))
	for idx, record := range page {
		visible := VisibleRow{
			Key:      t.Prefix() + "-row-" + strconv.Itoa(idx),
			Position: idx,
			Record:   record,
		}
		if t.RowKey != nil {
			visible.ID = t.RowKey(record)
		}
		view.Rows = append(view.Rows, visible)
	}
	if len(page) > 0 {
		view.First = state.Offset() + 1
		view.Last = state.Offset() + len(page)
	}
	return view
}

// Click resolves the row at position on the page rendered for state and
// passes its original record to OnRowClick once. Tables with a RowKey only
// dispatch by key.
func (t Table) Click(state State, position int) (Row, bool) {
	if t.OnRowClick == nil || t.RowKey != nil {
		return nil, false
	}
	view := t.View(state)
	if position < 0 || position >= len(view.Rows) {
		return nil, false
	}
	record := view.Rows[position].Record
	t.OnRowClick(record)
	return record, true
}

// ClickKey finds the record whose RowKey is key among the table data and
// passes it to OnRowClick once. Nothing is dispatched when no record matches.
func (t Table) ClickKey(key string) (Row, bool) {
	if t.OnRowClick == nil || t.RowKey == nil || key == "" {
		return nil, false
	}
	for _, record := range t.Data {
		if t.RowKey(record) == key {
			t.OnRowClick(record)
			return record, true
		}
	}
	return nil, false
}

// HandleClick reads the clicked row from query values and dispatches it
// through ClickKey, or through Click with the parsed state for tables
// without a RowKey.
func (t Table) HandleClick(values url.Values) (Row, bool) {
	if t.RowKey != nil {
		key, ok := ParseKey(values, t.Prefix())
		if !ok {
			return nil, false
		}
		return t.ClickKey(key)
	}
	position, ok := ParseRow(values, t.Prefix())
	if !ok {
		return nil, false
	}
	return t.Click(ParseState(values, t.Prefix()), position)
}

// Cell returns the display component for one cell.
func (t Table) Cell(column Column, row Row) templ.Component {
	value := row.Value(column.Key)
	if column.Render != nil {
		return column.Render(value, row)
	}
	text, ok := Stringify(value)
	if !ok {
		text = t.emptyValue()
	}
	return markup.Text(text)
}

func (t Table) emptyValue() string {
	if t.EmptyValue != "" {
		return t.EmptyValue
	}
	return DefaultEmptyValue
}

func (t Table) emptyMessage() string {
	if t.EmptyMessage != "" {
		return t.EmptyMessage
	}
	return DefaultEmptyMessage
}

func (t Table) labels() Labels {
	labels := t.Labels
	defaults := DefaultLabels()
	if labels.Search == "" {
		labels.Search = defaults.Search
	}
	if labels.Loading == "" {
		labels.Loading = defaults.Loading
	}
	if labels.Previous == "" {
		labels.Previous = defaults.Previous
	}
	if labels.Next == "" {
		labels.Next = defaults.Next
	}
	if labels.PageSize == "" {
		labels.PageSize = defaults.PageSize
	}
	if labels.Range == nil {
		labels.Range = defaults.Range
	}
	return labels
}

// StateURL returns the fragment URL carrying state.
func (t Table) StateURL(state State) string {
	return appendQuery(t.URL, state.Values(t.Prefix()))
}

func (t Table) rowURL(state State, row VisibleRow) string {
	values := state.Values(t.Prefix())
	if t.RowKey != nil {
		values.Set(paramName(t.Prefix(), paramKey), row.ID)
	} else {
		values.Set(paramName(t.Prefix(), paramRow), strconv.Itoa(row.Position))
	}
	return appendQuery(t.URL, values)
}

// clickable reports whether a rendered row carries click wiring.
func (t Table) clickable(row VisibleRow) bool {
	if !t.Interactive() {
		return false
	}
	return t.RowKey == nil || row.ID != ""
}

func appendQuery(base string, values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		if base == "" {
			return "?"
		}
		return base
	}
	if strings.Contains(base, "?") {
		return base + "&" + encoded
	}
	return base + "?" + encoded
}

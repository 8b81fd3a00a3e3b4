package datatable

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/platform/markup"
)

// searchTrigger debounces search input requests.
const searchTrigger = "input changed delay:300ms, search"

// Component renders the table for state. Controls request the table URL and
// swap only the content region, so the search input keeps focus.
func (t Table) Component(state State) templ.Component {
	view := t.View(state)
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		id := t.Prefix()
		w.Open("section", "id", id, "class", "card bg-base-100 shadow-sm", "data-table", id)
		w.Open("div", "class", "card-body gap-4")
		t.renderHeader(w, view)
		t.renderContent(ctx, w, view)
		w.Close("div")
		w.Close("section")
	})
}

// Content renders only the swappable region of the table for state.
func (t Table) Content(state State) templ.Component {
	view := t.View(state)
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		t.renderContent(ctx, w, view)
	})
}

func (t Table) contentID() string {
	return t.Prefix() + "-content"
}

func (t Table) searchID() string {
	return t.Prefix() + "-search"
}

func (t Table) sizeID() string {
	return t.Prefix() + "-size"
}

func (t Table) renderHeader(w *markup.Writer, view View) {
	if t.Title == "" && t.SearchDisabled {
		return
	}
	labels := t.labels()
	w.Open("div", "class", "flex flex-wrap items-center justify-between gap-2")
	if t.Title != "" {
		w.Element("h2", t.Title, "class", "card-title")
	}
	if !t.SearchDisabled {
		placeholder := t.SearchPlaceholder
		if placeholder == "" {
			placeholder = labels.Search
		}
		w.Open("input",
			"id", t.searchID(),
			"type", "search",
			"name", paramName(t.Prefix(), paramQuery),
			"value", view.State.Query,
			"placeholder", placeholder,
			"aria-label", placeholder,
			"class", "input input-bordered input-sm w-full max-w-xs",
			"autocomplete", "off",
			"hx-get", t.endpoint(),
			"hx-trigger", searchTrigger,
			"hx-include", "#"+t.sizeID(),
			"hx-target", "#"+t.contentID(),
			"hx-select", "#"+t.contentID(),
			"hx-swap", "outerHTML",
		)
	}
	w.Close("div")
}

func (t Table) renderContent(ctx context.Context, w *markup.Writer, view View) {
	if view.Loading {
		// Loading content fetches itself once; the fragment always resolves
		// to rows or the empty state.
		w.Open("div",
			"id", t.contentID(),
			"hx-get", t.StateURL(view.State),
			"hx-trigger", "load",
			"hx-target", "this",
			"hx-select", "#"+t.contentID(),
			"hx-swap", "outerHTML",
		)
	} else {
		w.Open("div", "id", t.contentID())
	}
	w.Open("div", "class", "overflow-x-auto")
	w.Open("table", "class", "table table-zebra")
	t.renderHead(w, view)
	w.Open("tbody")
	switch {
	case view.Loading:
		t.renderLoadingRow(w, view)
	case len(view.Rows) == 0, len(view.Columns) == 0:
		t.renderEmptyRow(w, view)
	default:
		for _, row := range view.Rows {
			t.renderRow(ctx, w, view, row)
		}
	}
	w.Close("tbody")
	w.Close("table")
	w.Close("div")
	if !view.Loading && !t.FooterDisabled {
		t.renderFooter(w, view)
	}
	w.Close("div")
}

func (t Table) renderHead(w *markup.Writer, view View) {
	w.Open("thead")
	w.Open("tr")
	for _, column := range view.Columns {
		w.Element("th", column.Label,
			"scope", "col",
			"class", alignClass(column.align()),
			"style", "min-width: "+strconv.Itoa(column.minWidth())+"px",
		)
	}
	w.Close("tr")
	w.Close("thead")
}

func (t Table) renderRow(ctx context.Context, w *markup.Writer, view View, row VisibleRow) {
	if t.clickable(row) {
		w.Open("tr",
			"id", row.Key,
			"class", "hover cursor-pointer",
			"hx-get", t.rowURL(view.State, row),
			"hx-trigger", "click",
			"hx-target", "body",
			"hx-swap", "beforeend",
		)
	} else {
		w.Open("tr", "id", row.Key)
	}
	for _, column := range view.Columns {
		w.Open("td", "class", alignClass(column.align()))
		w.Component(ctx, t.Cell(column, row.Record))
		w.Close("td")
	}
	w.Close("tr")
}

func (t Table) renderEmptyRow(w *markup.Writer, view View) {
	w.Open("tr", "data-empty", "true")
	w.Open("td", "colspan", strconv.Itoa(colspan(view.Columns)), "class", "text-center text-base-content/60")
	w.Text(t.emptyMessage())
	w.Close("td")
	w.Close("tr")
}

func (t Table) renderLoadingRow(w *markup.Writer, view View) {
	labels := t.labels()
	w.Open("tr", "data-loading", "true")
	w.Open("td", "colspan", strconv.Itoa(colspan(view.Columns)), "class", "text-center")
	w.Raw(`<span class="loading loading-ring loading-md" aria-hidden="true"></span>`)
	w.Element("span", labels.Loading, "class", "sr-only")
	w.Close("td")
	w.Close("tr")
}

func (t Table) renderFooter(w *markup.Writer, view View) {
	labels := t.labels()
	w.Open("div", "class", "flex flex-wrap items-center justify-between gap-2 pt-2")

	w.Open("label", "class", "flex items-center gap-2 text-sm")
	w.Text(labels.PageSize)
	w.Open("select",
		"id", t.sizeID(),
		"name", paramName(t.Prefix(), paramSize),
		"class", "select select-bordered select-sm",
		"hx-get", t.endpoint(),
		"hx-trigger", "change",
		"hx-include", t.includeSearch(),
		"hx-target", "#"+t.contentID(),
		"hx-select", "#"+t.contentID(),
		"hx-swap", "outerHTML",
	)
	for _, size := range PageSizes {
		value := strconv.Itoa(size)
		if size == view.State.PageSize {
			w.Open("option", "value", value, "selected", "selected")
		} else {
			w.Open("option", "value", value)
		}
		w.Text(value)
		w.Close("option")
	}
	w.Close("select")
	w.Close("label")

	w.Open("div", "class", "flex items-center gap-2")
	w.Element("span", labels.Range(view.First, view.Last, view.Total), "class", "text-sm", "data-range", "true")
	w.Open("div", "class", "join")
	t.renderPageButton(w, labels.Previous, view.State.WithPage(view.State.Page-1), view.HasPrev, "prev")
	t.renderPageButton(w, labels.Next, view.State.WithPage(view.State.Page+1), view.HasNext, "next")
	w.Close("div")
	w.Close("div")

	w.Close("div")
}

func (t Table) renderPageButton(w *markup.Writer, label string, target State, enabled bool, rel string) {
	if !enabled {
		w.Open("button", "type", "button", "class", "join-item btn btn-sm", "disabled", "disabled", "data-page", rel)
		w.Text(label)
		w.Close("button")
		return
	}
	w.Open("button",
		"type", "button",
		"class", "join-item btn btn-sm",
		"data-page", rel,
		"hx-get", t.StateURL(target),
		"hx-target", "#"+t.contentID(),
		"hx-select", "#"+t.contentID(),
		"hx-swap", "outerHTML",
	)
	w.Text(label)
	w.Close("button")
}

// endpoint is the bare fragment URL; htmx appends the included fields.
func (t Table) endpoint() string {
	if t.URL == "" {
		return "?"
	}
	return t.URL
}

func (t Table) includeSearch() string {
	if t.SearchDisabled {
		return ""
	}
	return "#" + t.searchID()
}

func alignClass(align Align) string {
	switch align {
	case AlignCenter:
		return "text-center"
	case AlignRight:
		return "text-right"
	default:
		return "text-left"
	}
}

func colspan(columns []Column) int {
	if len(columns) == 0 {
		return 1
	}
	return len(columns)
}

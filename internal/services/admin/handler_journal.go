package admin

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/datatable"
	"github.com/louisbranch/cashdesk/internal/platform/markup"
	apperrors "github.com/louisbranch/cashdesk/internal/services/admin/platform/errors"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage"
	"github.com/louisbranch/cashdesk/internal/services/admin/templates"
	"golang.org/x/text/message"
)

const (
	// journalListLimit caps the entries loaded into the journal table.
	journalListLimit = 500
	// recentDecisionsLimit caps the entries shown on the dashboard.
	recentDecisionsLimit = 10
)

// journalQuery is the store selection carried by the journal page and its
// table URL.
type journalQuery struct {
	Filter  string
	OrderBy string
}

func parseJournalQuery(values url.Values) journalQuery {
	return journalQuery{
		Filter:  strings.TrimSpace(values.Get("filter")),
		OrderBy: strings.TrimSpace(values.Get("order_by")),
	}
}

// tableURL keeps the selection on every table request.
func (q journalQuery) tableURL() string {
	values := url.Values{}
	if q.Filter != "" {
		values.Set("filter", q.Filter)
	}
	if q.OrderBy != "" {
		values.Set("order_by", q.OrderBy)
	}
	return routepath.WithQuery(routepath.JournalTable, values)
}

func (h *Handler) journalTable(loc *message.Printer, query journalQuery) datatable.Table {
	table := h.baseTable(loc, "journal", query.tableURL())
	table.SearchPlaceholder = loc.Sprintf("search.journal")
	table.EmptyMessage = loc.Sprintf("journal.empty")
	table.Columns = []datatable.Column{
		timeColumn(loc, "recorded_at", "field.recorded_at"),
		{
			Key:      "kind",
			Label:    loc.Sprintf("field.kind"),
			MinWidth: 110,
			Render: func(value any, _ datatable.Row) templ.Component {
				kind, _ := value.(string)
				return markup.Text(loc.Sprintf("kind." + kind))
			},
		},
		textColumn(loc, "subject_id", "field.subject", 120),
		{
			Key:      "decision",
			Label:    loc.Sprintf("field.decision"),
			MinWidth: 120,
			Render: func(value any, _ datatable.Row) templ.Component {
				decision, _ := value.(string)
				return templates.StatusBadge(decisionTone(decision), loc.Sprintf("decision."+decision))
			},
		},
		textColumn(loc, "detail", "field.detail", 160),
	}
	return table
}

func decisionTone(decision string) string {
	switch decision {
	case storage.DecisionApprove, storage.DecisionActivate, storage.DecisionCreate:
		return "success"
	case storage.DecisionReject, storage.DecisionDelete, storage.DecisionDeactivate:
		return "error"
	default:
		return "info"
	}
}

// journalRows lists entries in the requested order as table rows.
func (h *Handler) journalRows(ctx context.Context, opts storage.ListOptions) ([]datatable.Row, error) {
	if h.journal == nil {
		return nil, apperrors.EK(apperrors.KindUnavailable, "error.journal_unavailable", "journal is not configured")
	}
	entries, err := h.journal.ListDecisions(ctx, opts)
	if err != nil {
		return nil, err
	}
	rows := make([]datatable.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, datatable.Row{
			"id":          entry.ID,
			"kind":        entry.Kind,
			"subject_id":  entry.SubjectID,
			"decision":    entry.Decision,
			"detail":      entry.Detail,
			"recorded_at": entry.RecordedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return rows, nil
}

func (h *Handler) handleJournalPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)
	query := parseJournalQuery(r.URL.Query())
	table := h.journalTable(loc, query)
	table.Loading = true
	title := loc.Sprintf("title.journal")
	h.renderPage(w, r, page, title, templates.JournalPage(templates.JournalView{
		Heading: templates.PageHeading{Title: title},
		Filter:  query.Filter,
		OrderBy: query.OrderBy,
		Table:   table.Component(datatable.ParseState(r.URL.Query(), table.Prefix())),
	}, loc))
}

func (h *Handler) handleJournalTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	query := parseJournalQuery(r.URL.Query())
	h.serveTable(w, r, loc, h.journalTable(loc, query), func(ctx context.Context) ([]datatable.Row, error) {
		return h.journalRows(ctx, storage.ListOptions{
			Filter:   query.Filter,
			OrderBy:  query.OrderBy,
			PageSize: journalListLimit,
		})
	}, nil)
}

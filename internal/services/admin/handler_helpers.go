package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/cashdesk/internal/datatable"
	"github.com/louisbranch/cashdesk/internal/services/admin/integration/backend"
	apperrors "github.com/louisbranch/cashdesk/internal/services/admin/platform/errors"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/flash"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/htmx"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/httpx"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage"
	"github.com/louisbranch/cashdesk/internal/services/admin/templates"
	"golang.org/x/text/message"
)

// rowLoader fetches the rows of one table fragment.
type rowLoader func(ctx context.Context) ([]datatable.Row, error)

// rowAction answers a row click with the clicked record.
type rowAction func(w http.ResponseWriter, r *http.Request, row datatable.Row)

// serveTable answers a table fragment request. A request carrying a row
// position dispatches the click through the table; any other request
// renders the swappable content for the requested state.
func (h *Handler) serveTable(w http.ResponseWriter, r *http.Request, loc *message.Printer, table datatable.Table, load rowLoader, onClick rowAction) {
	state := datatable.ParseState(r.URL.Query(), table.Prefix())
	rows, err := load(r.Context())
	if err != nil {
		if !errors.Is(err, backend.ErrUnexpectedEnvelope) {
			log.Printf("load %s table: %v", table.Prefix(), err)
			h.renderFragmentError(w, r, loc, table, state, err)
			return
		}
		log.Printf("load %s table: %v", table.Prefix(), err)
	}
	table.Data = rows
	table.Loading = false

	var clicked datatable.Row
	if onClick != nil {
		table.OnRowClick = func(row datatable.Row) {
			clicked = row
		}
		if _, ok := table.HandleClick(r.URL.Query()); ok {
			onClick(w, r, clicked)
			return
		}
	}
	htmx.RenderFragment(w, r, http.StatusOK, table.Content(state))
}

// renderFragmentError swaps the table content for an alert with a retry.
// htmx only swaps successful responses, so the status stays 200 for htmx.
func (h *Handler) renderFragmentError(w http.ResponseWriter, r *http.Request, loc *message.Printer, table datatable.Table, state datatable.State, err error) {
	status := http.StatusOK
	if !httpx.IsHTMXRequest(r) {
		status = apperrors.HTTPStatus(err)
	}
	component := templates.FragmentError(
		table.Prefix()+"-content",
		table.StateURL(state),
		failureMessage(loc, err),
		loc.Sprintf("action.retry"),
	)
	htmx.RenderFragment(w, r, status, component)
}

// failureMessage returns the text shown for a failed backend call. Backend
// and validation errors are shown verbatim.
func failureMessage(loc *message.Printer, err error) string {
	if key := apperrors.LocalizationKey(err); key != "" {
		return loc.Sprintf(key)
	}
	var backendErr *backend.Error
	switch {
	case errors.As(err, &backendErr):
		return backendErr.Error()
	case errors.Is(err, backend.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, storage.ErrInvalidFilter):
		return loc.Sprintf("error.invalid_filter")
	case errors.Is(err, storage.ErrInvalidOrder):
		return loc.Sprintf("error.invalid_order")
	case errors.Is(err, context.DeadlineExceeded):
		return loc.Sprintf("error.backend_timeout")
	default:
		return loc.Sprintf("error.backend_unavailable")
	}
}

// finishWrite records a successful decision, sets the flash notice and
// redirects to location. A failed write only sets the error notice.
func (h *Handler) finishWrite(w http.ResponseWriter, r *http.Request, location string, err error, entry storage.JournalEntry, successKey string) {
	if err != nil {
		log.Printf("%s %s %s: %v", entry.Decision, entry.Kind, entry.SubjectID, err)
		loc, _ := h.localizer(w, r)
		h.flash.Write(w, r, flash.Failure(failureMessage(loc, err)))
		httpx.WriteRedirect(w, r, location)
		return
	}
	h.record(r.Context(), entry)
	h.flash.Write(w, r, flash.Success(successKey))
	httpx.WriteRedirect(w, r, location)
}

// record appends entry to the journal. Journal failures are logged and do
// not undo the backend write.
func (h *Handler) record(ctx context.Context, entry storage.JournalEntry) {
	if h.journal == nil {
		return
	}
	if _, err := h.journal.RecordDecision(ctx, entry); err != nil {
		log.Printf("record %s decision for %s %s: %v", entry.Decision, entry.Kind, entry.SubjectID, err)
	}
}

// parseDecision reads the decision field and checks it against allowed.
func parseDecision(r *http.Request, allowed ...string) (string, bool) {
	decision := strings.TrimSpace(r.FormValue("decision"))
	for _, candidate := range allowed {
		if decision == candidate {
			return decision, true
		}
	}
	return decision, false
}

// invalidRequest answers with a plain 400 carrying a localized message.
func invalidRequest(w http.ResponseWriter, loc *message.Printer, key string) {
	http.Error(w, loc.Sprintf(key), http.StatusBadRequest)
}

// rowFields turns a record into labelled detail fields.
func rowFields(row datatable.Row, specs []fieldSpec, loc *message.Printer) []templates.DetailField {
	fields := make([]templates.DetailField, 0, len(specs))
	for _, spec := range specs {
		value := row.Value(spec.key)
		text := ""
		if spec.format != nil {
			text = spec.format(value)
		} else if raw, ok := datatable.Stringify(value); ok {
			text = raw
		}
		fields = append(fields, templates.DetailField{Label: loc.Sprintf(spec.labelKey), Value: text})
	}
	return fields
}

// fieldSpec names one detail field and how to format it.
type fieldSpec struct {
	key      string
	labelKey string
	format   func(value any) string
}

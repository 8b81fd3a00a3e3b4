package admin

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/datatable"
	"github.com/louisbranch/cashdesk/internal/platform/icons"
	"github.com/louisbranch/cashdesk/internal/services/admin/integration/backend"
	apperrors "github.com/louisbranch/cashdesk/internal/services/admin/platform/errors"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/httpx"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage"
	"github.com/louisbranch/cashdesk/internal/services/admin/templates"
	"golang.org/x/text/message"
)

func userFields() []fieldSpec {
	return []fieldSpec{
		{key: "id", labelKey: "field.id"},
		{key: "name", labelKey: "field.name"},
		{key: "email", labelKey: "field.email"},
		{key: "username", labelKey: "field.username"},
		{key: "nic_number", labelKey: "field.nic_number"},
		{key: "address", labelKey: "field.address"},
		{key: "country", labelKey: "field.country"},
		{key: "created_at", labelKey: "field.registered", format: textOrEmpty(formatTime)},
	}
}

func (h *Handler) usersTable(loc *message.Printer) datatable.Table {
	table := h.baseTable(loc, "users", routepath.UsersTable)
	table.SearchPlaceholder = loc.Sprintf("search.users")
	table.Columns = []datatable.Column{
		textColumn(loc, "name", "field.name", 150),
		textColumn(loc, "email", "field.email", 180),
		textColumn(loc, "username", "field.username", 120),
		textColumn(loc, "nic_number", "field.nic_number", 120),
		timeColumn(loc, "created_at", "field.registered"),
		{
			Key:      "actions",
			Label:    loc.Sprintf("field.actions"),
			Align:    datatable.AlignRight,
			MinWidth: 100,
			Render: func(_ any, row datatable.Row) templ.Component {
				id := row.String("id")
				if id == "" {
					return nil
				}
				return templates.ActionButtons(templates.ActionButton{
					Label:    loc.Sprintf("action.view"),
					URL:      routepath.User(id),
					Icon:     icons.Users,
					Navigate: true,
				})
			},
		},
	}
	return table
}

func (h *Handler) userTransactionsTable(loc *message.Printer, userID string) datatable.Table {
	table := h.baseTable(loc, "transactions", routepath.UserTransactionsTable(userID))
	table.Title = loc.Sprintf("user.transactions")
	table.SearchPlaceholder = loc.Sprintf("search.transactions")
	table.EmptyMessage = loc.Sprintf("user.no_transactions")
	table.Columns = []datatable.Column{
		groupColumn(loc, backend.GroupField, "field.day"),
		textColumn(loc, "description", "field.description", 200),
		textColumn(loc, "type", "field.type", 90),
		transactionAmountColumn(loc, "display_amount", "field.amount"),
		timeColumn(loc, "created_at", "field.date"),
	}
	return table
}

func (h *Handler) handleUsersPage(w http.ResponseWriter, r *http.Request) {
	h.listPage(w, r, "title.users", h.usersTable)
}

// handleUsersTable serves the users fragment; a row click navigates to the
// user detail page.
func (h *Handler) handleUsersTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	h.serveTable(w, r, loc, h.usersTable(loc), h.backend.ListUsers, func(w http.ResponseWriter, r *http.Request, row datatable.Row) {
		id := row.String("id")
		if id == "" {
			http.NotFound(w, r)
			return
		}
		httpx.WriteRedirect(w, r, routepath.User(id))
	})
}

// handleUserDetail renders a user profile with transactions and the
// password reset form.
func (h *Handler) handleUserDetail(w http.ResponseWriter, r *http.Request, userID string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)
	title := loc.Sprintf("title.user")
	view := templates.UserDetailView{
		Heading: templates.PageHeading{
			Title: title,
			Breadcrumbs: []templates.Breadcrumb{
				{Label: loc.Sprintf("title.users"), URL: routepath.Users},
				{Label: userID},
			},
		},
		EmptyValue:  datatable.DefaultEmptyValue,
		ResetAction: routepath.UserResetPassword(userID),
	}

	row, err := h.backend.GetUser(r.Context(), userID)
	if err != nil {
		log.Printf("get user %s: %v", userID, err)
		view.Message = failureMessage(loc, err)
		h.renderPageStatus(w, r, apperrors.HTTPStatus(err), page, title, templates.UserDetail(view, loc))
		return
	}
	if name := row.String("name"); name != "" {
		view.Heading.Title = name
		view.Heading.Breadcrumbs[1].Label = name
	}
	view.Fields = rowFields(row, userFields(), loc)
	transactions := h.userTransactionsTable(loc, userID)
	transactions.Loading = true
	view.Transactions = transactions.Component(datatable.ParseState(r.URL.Query(), transactions.Prefix()))
	h.renderPage(w, r, page, title, templates.UserDetail(view, loc))
}

func (h *Handler) handleUserTransactionsTable(w http.ResponseWriter, r *http.Request, userID string) {
	loc, _ := h.localizer(w, r)
	h.serveTable(w, r, loc, h.userTransactionsTable(loc, userID), func(ctx context.Context) ([]datatable.Row, error) {
		return h.backend.ListUserTransactions(ctx, userID)
	}, nil)
}

// handleUserResetPassword sets a new password and returns to the user.
func (h *Handler) handleUserResetPassword(w http.ResponseWriter, r *http.Request, userID string) {
	loc, _ := h.localizer(w, r)
	if err := r.ParseForm(); err != nil {
		invalidRequest(w, loc, "error.invalid_form")
		return
	}
	password := r.PostFormValue("new_password")
	err := h.backend.ResetUserPassword(r.Context(), userID, password)
	h.finishWrite(w, r, routepath.User(strings.TrimSpace(userID)), err, storage.JournalEntry{
		Kind:      storage.KindUser,
		SubjectID: userID,
		Decision:  storage.DecisionResetPassword,
	}, "flash.user_reset_password")
}

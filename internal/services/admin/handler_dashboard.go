package admin

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/datatable"
	"github.com/louisbranch/cashdesk/internal/platform/icons"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/htmx"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage"
	"github.com/louisbranch/cashdesk/internal/services/admin/templates"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"
)

// dashboardCounter is one counter fetched for the dashboard.
type dashboardCounter struct {
	labelKey string
	url      string
	icon     icons.ID
	load     func(ctx context.Context) ([]datatable.Row, error)
}

func (h *Handler) dashboardCounters() []dashboardCounter {
	return []dashboardCounter{
		{labelKey: "dashboard.pending_deposits", url: routepath.Deposits, icon: icons.Deposit, load: h.backend.ListPendingDeposits},
		{labelKey: "dashboard.pending_withdrawals", url: routepath.Withdrawals, icon: icons.Withdrawal, load: h.backend.ListPendingWithdrawals},
		{labelKey: "dashboard.pending_kyc", url: routepath.KYC, icon: icons.KYC, load: h.backend.ListPendingKYC},
		{labelKey: "dashboard.total_users", url: routepath.Users, icon: icons.Users, load: h.backend.ListUsers},
	}
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)
	h.renderPage(w, r, page, loc.Sprintf("title.dashboard"), templates.DashboardPage(loc))
}

// handleDashboardContent loads every counter concurrently. Failed counters
// show the empty value and a warning; the others still render.
func (h *Handler) handleDashboardContent(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	counters := h.dashboardCounters()
	counts := make([]int, len(counters))
	failed := make([]bool, len(counters))

	var group errgroup.Group
	for i, counter := range counters {
		group.Go(func() error {
			rows, err := counter.load(r.Context())
			if err != nil {
				log.Printf("dashboard %s: %v", counter.labelKey, err)
				failed[i] = true
				return err
			}
			counts[i] = len(rows)
			return nil
		})
	}
	groupErr := group.Wait()

	view := templates.DashboardView{Recent: h.recentDecisions(r.Context(), loc)}
	for i, counter := range counters {
		value := strconv.Itoa(counts[i])
		if failed[i] {
			value = datatable.DefaultEmptyValue
		}
		view.Stats = append(view.Stats, templates.DashboardStat{
			Label: loc.Sprintf(counter.labelKey),
			Value: value,
			URL:   counter.url,
			Icon:  counter.icon,
		})
	}
	if groupErr != nil {
		view.Warning = loc.Sprintf("dashboard.partial")
	}
	htmx.RenderFragment(w, r, http.StatusOK, templates.DashboardContent(view))
}

// recentDecisions renders the newest journal entries with the journal
// columns. The widget is static: it has its own id and no controls, so it
// never requests or swaps the journal table.
func (h *Handler) recentDecisions(ctx context.Context, loc *message.Printer) templ.Component {
	if h.journal == nil {
		return nil
	}
	table := h.journalTable(loc, journalQuery{})
	table.ID = "recent"
	table.URL = ""
	table.Title = loc.Sprintf("dashboard.recent")
	table.SearchDisabled = true
	table.FooterDisabled = true
	rows, err := h.journalRows(ctx, storage.ListOptions{PageSize: recentDecisionsLimit})
	if err != nil {
		log.Printf("dashboard recent decisions: %v", err)
		return templates.Alert("warning", failureMessage(loc, err))
	}
	table.Data = rows
	return table.Component(datatable.NewState())
}

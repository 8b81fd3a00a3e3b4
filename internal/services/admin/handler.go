package admin

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/cashdesk/internal/datatable"
	"github.com/louisbranch/cashdesk/internal/platform/branding"
	"github.com/louisbranch/cashdesk/internal/services/admin/i18n"
	"github.com/louisbranch/cashdesk/internal/services/admin/integration/backend"
	bankdetailsmodule "github.com/louisbranch/cashdesk/internal/services/admin/module/bankdetails"
	coinsmodule "github.com/louisbranch/cashdesk/internal/services/admin/module/coins"
	dashboardmodule "github.com/louisbranch/cashdesk/internal/services/admin/module/dashboard"
	depositsmodule "github.com/louisbranch/cashdesk/internal/services/admin/module/deposits"
	journalmodule "github.com/louisbranch/cashdesk/internal/services/admin/module/journal"
	kycmodule "github.com/louisbranch/cashdesk/internal/services/admin/module/kyc"
	usersmodule "github.com/louisbranch/cashdesk/internal/services/admin/module/users"
	withdrawalsmodule "github.com/louisbranch/cashdesk/internal/services/admin/module/withdrawals"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/flash"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/htmx"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/requestmeta"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage"
	"github.com/louisbranch/cashdesk/internal/services/admin/templates"
	"github.com/louisbranch/cashdesk/internal/services/admin/transport/httpmux"
	"golang.org/x/text/message"
)

//go:embed static
var staticFiles embed.FS

const staticMaxAge = 3600

// Backend is the slice of the REST backend the dashboard drives.
type Backend interface {
	ListPendingDeposits(ctx context.Context) ([]datatable.Row, error)
	UpdateDepositStatus(ctx context.Context, depositID string, isPending bool) error
	ListPendingWithdrawals(ctx context.Context) ([]datatable.Row, error)
	GetWithdrawal(ctx context.Context, withdrawalID string) (datatable.Row, error)
	UpdateWithdrawalStatus(ctx context.Context, withdrawalID string, isPending bool) error
	DeleteWithdrawal(ctx context.Context, withdrawalID string) error
	ListPendingKYC(ctx context.Context) ([]datatable.Row, error)
	UpdateKYCStatus(ctx context.Context, kycID string, status backend.KYCStatus) error
	ListUsers(ctx context.Context) ([]datatable.Row, error)
	GetUser(ctx context.Context, userID string) (datatable.Row, error)
	ListUserTransactions(ctx context.Context, userID string) ([]datatable.Row, error)
	ResetUserPassword(ctx context.Context, userID string, newPassword string) error
	CreateManualDeposit(ctx context.Context, deposit backend.ManualDeposit) error
	SetCoinValue(ctx context.Context, value backend.CoinValue) error
	CoinValueHistory(ctx context.Context, coin string) ([]datatable.Row, error)
	CommissionHistory(ctx context.Context, userID string) ([]datatable.Row, error)
	ListBankDetails(ctx context.Context) ([]datatable.Row, error)
	CreateBankDetail(ctx context.Context, detail backend.BankDetail) error
	UpdateBankDetail(ctx context.Context, detailID string, detail backend.BankDetail) error
	SetBankDetailActive(ctx context.Context, detailID string, active bool) error
	DeleteBankDetail(ctx context.Context, detailID string) error
}

// HandlerConfig wires the handler dependencies.
type HandlerConfig struct {
	Backend Backend
	// Journal records operator decisions; nil disables recording.
	Journal storage.JournalStore
	Policy  requestmeta.SchemePolicy
	// FilesURL prefixes uploaded receipt and document paths.
	FilesURL string
}

// Handler routes admin dashboard requests.
type Handler struct {
	backend  Backend
	journal  storage.JournalStore
	flash    flash.Writer
	filesURL string
}

// NewHandler builds the HTTP handler for the admin server.
func NewHandler(cfg HandlerConfig) http.Handler {
	handler := &Handler{
		backend:  cfg.Backend,
		journal:  cfg.Journal,
		flash:    flash.Writer{Policy: cfg.Policy},
		filesURL: strings.TrimRight(strings.TrimSpace(cfg.FilesURL), "/"),
	}
	return handler.routes()
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

// pageContext builds the layout context and consumes any pending flash.
func (h *Handler) pageContext(w http.ResponseWriter, r *http.Request, lang string, loc *message.Printer) templates.PageContext {
	page := templates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
	}
	if notice, ok := h.flash.ReadAndClear(w, r); ok {
		text := notice.Message
		if notice.Key != "" {
			text = loc.Sprintf(notice.Key)
		}
		page.Notice = &templates.Notice{Tone: string(notice.Kind), Text: text}
	}
	return page
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	dashboardmodule.RegisterRoutes(mux, h)
	depositsmodule.RegisterRoutes(mux, h)
	withdrawalsmodule.RegisterRoutes(mux, h)
	kycmodule.RegisterRoutes(mux, h)
	usersmodule.RegisterRoutes(mux, h)
	coinsmodule.RegisterRoutes(mux, h)
	bankdetailsmodule.RegisterRoutes(mux, h)
	journalmodule.RegisterRoutes(mux, h)
	mux.HandleFunc("GET "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	rootMux := http.NewServeMux()
	if staticFS, err := fs.Sub(staticFiles, "static"); err == nil {
		httpmux.MountStatic(rootMux, staticFS, httpmux.CacheFor(staticMaxAge))
	}
	httpmux.MountAdminRoutes(rootMux, mux)
	return rootMux
}

// renderPage renders content inside the layout, or alone for htmx requests.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, page templates.PageContext, title string, content templ.Component) {
	h.renderPageStatus(w, r, http.StatusOK, page, title, content)
}

func (h *Handler) renderPageStatus(w http.ResponseWriter, r *http.Request, status int, page templates.PageContext, title string, content templ.Component) {
	htmx.RenderPageStatus(w, r, status, content, templates.Layout(page, title, content), branding.PageTitle(title))
}

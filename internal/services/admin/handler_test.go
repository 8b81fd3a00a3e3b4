package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/cashdesk/internal/datatable"
	"github.com/louisbranch/cashdesk/internal/platform/branding"
	"github.com/louisbranch/cashdesk/internal/services/admin/i18n"
	"github.com/louisbranch/cashdesk/internal/services/admin/integration/backend"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/flash"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage"
	adminsqlite "github.com/louisbranch/cashdesk/internal/services/admin/storage/sqlite"
	"golang.org/x/net/html"
)

type statusCall struct {
	id        string
	isPending bool
}

type fakeBackend struct {
	mu sync.Mutex

	deposits    []datatable.Row
	withdrawals []datatable.Row
	kyc         []datatable.Row
	users       []datatable.Row
	bankDetails []datatable.Row

	listErr  map[string]error
	writeErr error

	depositUpdates    []statusCall
	withdrawalUpdates []statusCall
	kycUpdates        map[string]backend.KYCStatus
	createdDetails    []backend.BankDetail
	coinValues        []backend.CoinValue
	deleted           []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		deposits: []datatable.Row{
			{"id": "d-1", "transaction_id": "tx-1", "username": "alice", "amount": "1250", "created_at": "2026-10-01T09:30:00Z", "image_path": "receipts/d-1.png"},
			{"id": "d-2", "transaction_id": "tx-2", "username": "bob", "amount": "20.5", "created_at": "2026-10-02T10:00:00Z"},
		},
		withdrawals: []datatable.Row{
			{"id": "w-1", "transaction_id": "tx-9", "username": "carol", "amount": "75", "account_holder_name": "Carol", "bank_name": "Acme"},
		},
		kyc: []datatable.Row{
			{"id": "k-1", "username": "dave", "email": "dave@example.com", "id_document_path": "kyc/k-1.png"},
		},
		users: []datatable.Row{
			{"id": "u-1", "name": "Alice", "username": "alice"},
			{"id": "u-2", "name": "Bob", "username": "bob"},
			{"id": "u-3", "name": "Carol", "username": "carol"},
		},
		bankDetails: []datatable.Row{
			{"id": "b-1", "bankName": "Acme", "accountHolderName": "Cashdesk Ltd", "accountNumber": "001", "isActive": true},
		},
		listErr:    map[string]error{},
		kycUpdates: map[string]backend.KYCStatus{},
	}
}

func (f *fakeBackend) list(name string, rows []datatable.Row) ([]datatable.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.listErr[name]; err != nil {
		return nil, err
	}
	return rows, nil
}

func (f *fakeBackend) ListPendingDeposits(context.Context) ([]datatable.Row, error) {
	return f.list("deposits", f.deposits)
}

func (f *fakeBackend) UpdateDepositStatus(_ context.Context, depositID string, isPending bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.depositUpdates = append(f.depositUpdates, statusCall{id: depositID, isPending: isPending})
	return f.writeErr
}

func (f *fakeBackend) ListPendingWithdrawals(context.Context) ([]datatable.Row, error) {
	return f.list("withdrawals", f.withdrawals)
}

func (f *fakeBackend) GetWithdrawal(_ context.Context, withdrawalID string) (datatable.Row, error) {
	rows, err := f.list("withdrawal", f.withdrawals)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.String("id") == withdrawalID {
			return row, nil
		}
	}
	return nil, &backend.Error{Status: http.StatusNotFound, Message: "Withdrawal not found"}
}

func (f *fakeBackend) UpdateWithdrawalStatus(_ context.Context, withdrawalID string, isPending bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.withdrawalUpdates = append(f.withdrawalUpdates, statusCall{id: withdrawalID, isPending: isPending})
	return f.writeErr
}

func (f *fakeBackend) DeleteWithdrawal(_ context.Context, withdrawalID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, withdrawalID)
	return f.writeErr
}

func (f *fakeBackend) ListPendingKYC(context.Context) ([]datatable.Row, error) {
	return f.list("kyc", f.kyc)
}

func (f *fakeBackend) UpdateKYCStatus(_ context.Context, kycID string, status backend.KYCStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kycUpdates[kycID] = status
	return f.writeErr
}

func (f *fakeBackend) ListUsers(context.Context) ([]datatable.Row, error) {
	return f.list("users", f.users)
}

func (f *fakeBackend) GetUser(_ context.Context, userID string) (datatable.Row, error) {
	rows, err := f.list("user", f.users)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.String("id") == userID {
			return row, nil
		}
	}
	return nil, &backend.Error{Status: http.StatusNotFound, Message: "User not found"}
}

func (f *fakeBackend) ListUserTransactions(context.Context, string) ([]datatable.Row, error) {
	return f.list("transactions", []datatable.Row{
		{"description": "Deposit", "type": "income", "display_amount": "10", "created_at": "2026-10-01T09:30:00Z"},
	})
}

func (f *fakeBackend) ResetUserPassword(context.Context, string, string) error {
	return f.writeErr
}

func (f *fakeBackend) CreateManualDeposit(context.Context, backend.ManualDeposit) error {
	return f.writeErr
}

func (f *fakeBackend) SetCoinValue(_ context.Context, value backend.CoinValue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coinValues = append(f.coinValues, value)
	return f.writeErr
}

func (f *fakeBackend) CoinValueHistory(context.Context, string) ([]datatable.Row, error) {
	return f.list("history", nil)
}

func (f *fakeBackend) CommissionHistory(context.Context, string) ([]datatable.Row, error) {
	return f.list("commissions", nil)
}

func (f *fakeBackend) ListBankDetails(context.Context) ([]datatable.Row, error) {
	return f.list("bank", f.bankDetails)
}

func (f *fakeBackend) CreateBankDetail(_ context.Context, detail backend.BankDetail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdDetails = append(f.createdDetails, detail)
	return f.writeErr
}

func (f *fakeBackend) UpdateBankDetail(context.Context, string, backend.BankDetail) error {
	return f.writeErr
}

func (f *fakeBackend) SetBankDetailActive(context.Context, string, bool) error {
	return f.writeErr
}

func (f *fakeBackend) DeleteBankDetail(context.Context, string) error {
	return f.writeErr
}

type fakeJournal struct {
	mu      sync.Mutex
	entries []storage.JournalEntry
	listErr error
	opts    []storage.ListOptions
}

func (f *fakeJournal) RecordDecision(_ context.Context, entry storage.JournalEntry) (storage.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry.ID = fmt.Sprintf("j-%d", len(f.entries)+1)
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeJournal) ListDecisions(_ context.Context, opts storage.ListOptions) ([]storage.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opts = append(f.opts, opts)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]storage.JournalEntry(nil), f.entries...), nil
}

func newTestHandler(b *fakeBackend, j *fakeJournal) http.Handler {
	cfg := HandlerConfig{Backend: b, FilesURL: "https://files.example.com/"}
	if j != nil {
		cfg.Journal = j
	}
	return NewHandler(cfg)
}

func serve(handler http.Handler, method string, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func flashNotice(t *testing.T, rec *httptest.ResponseRecorder) flash.Notice {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == flash.CookieName {
			req.AddCookie(cookie)
		}
	}
	notice, ok := flash.Writer{}.ReadAndClear(nil, req)
	if !ok {
		t.Fatal("expected flash notice")
	}
	return notice
}

func TestListPageRendersLoadingTable(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/deposits", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	assertContains(t, body, "<!doctype html>")
	assertContains(t, body, branding.AppName)
	assertContains(t, body, `id="deposits-content"`)
	assertContains(t, body, `hx-get="/deposits/table"`)
	assertContains(t, body, `data-loading="true"`)
	assertNotContains(t, body, "tx-1")
}

func TestListPageHTMXOmitsLayout(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/kyc", nil, true)
	body := rec.Body.String()
	assertNotContains(t, body, "<!doctype html>")
	assertContains(t, body, "<title>")
	assertContains(t, body, `id="kyc-content"`)
}

func TestListPageHonorsLanguageParam(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/deposits?lang=pt-BR", nil, false)
	assertContains(t, rec.Body.String(), "Depósitos pendentes")
	var persisted bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == i18n.LangCookieName && cookie.Value == "pt-BR" {
			persisted = true
		}
	}
	if !persisted {
		t.Fatal("expected language cookie")
	}
}

func TestTableFragmentRendersRows(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/deposits/table", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	assertContains(t, body, `id="deposits-content"`)
	assertContains(t, body, "tx-1")
	assertContains(t, body, "tx-2")
	assertContains(t, body, "$1,250.00")
	assertContains(t, body, "2026-10-01 09:30")
	assertContains(t, body, "https://files.example.com/receipts/d-1.png")
	assertContains(t, body, `hx-get="/deposits/table?deposits_key=d-1"`)
	assertNotContains(t, body, "deposits_row=")
	assertContains(t, body, "/deposits/d-1/review?decision=approve")
	assertNotContains(t, body, `data-loading="true"`)
}

func TestTableFragmentFiltersBySearch(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/deposits/table?deposits_q=BOB", nil, true)
	body := rec.Body.String()
	assertContains(t, body, "tx-2")
	assertNotContains(t, body, "tx-1")
}

func TestTableFragmentShowsEmptyMessage(t *testing.T) {
	b := newFakeBackend()
	b.deposits = nil
	handler := newTestHandler(b, nil)

	rec := serve(handler, http.MethodGet, "/deposits/table", nil, true)
	assertContains(t, rec.Body.String(), `data-empty="true"`)
	assertContains(t, rec.Body.String(), "No records found.")
}

func TestTableFragmentPaginates(t *testing.T) {
	b := newFakeBackend()
	b.users = nil
	for i := 0; i < 12; i++ {
		b.users = append(b.users, datatable.Row{"id": fmt.Sprintf("u-%02d", i), "username": fmt.Sprintf("user%02d", i)})
	}
	handler := newTestHandler(b, nil)

	rec := serve(handler, http.MethodGet, "/users/table?users_page=1", nil, true)
	body := rec.Body.String()
	assertContains(t, body, "user10")
	assertContains(t, body, "user11")
	assertNotContains(t, body, "user09")
	assertContains(t, body, "Showing 11 to 12 of 12 entries")
}

func TestRowClickOpensReviewDialog(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/deposits/table?deposits_key=d-2", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	assertContains(t, body, "<dialog")
	assertContains(t, body, "Review deposit")
	assertContains(t, body, `action="/deposits/d-2/review"`)
	assertContains(t, body, `data-decision="approve"`)
	assertContains(t, body, `data-decision="reject"`)
	assertNotContains(t, body, `id="deposits-content"`)
}

func TestRowClickCarriesSearchState(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/deposits/table?deposits_q=bob", nil, true)
	assertContains(t, rec.Body.String(), `hx-get="/deposits/table?deposits_key=d-2&amp;deposits_q=bob"`)

	rec = serve(handler, http.MethodGet, "/deposits/table?deposits_q=bob&deposits_key=d-2", nil, true)
	assertContains(t, rec.Body.String(), `action="/deposits/d-2/review"`)
}

func TestRowClickUnknownKeyRendersContent(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/deposits/table?deposits_key=d-9", nil, true)
	assertContains(t, rec.Body.String(), `id="deposits-content"`)
	assertNotContains(t, rec.Body.String(), "<dialog")
}

func TestRowClickIgnoresPagePosition(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/deposits/table?deposits_row=0", nil, true)
	assertContains(t, rec.Body.String(), `id="deposits-content"`)
	assertNotContains(t, rec.Body.String(), "<dialog")
}

func TestRowClickRedirectsToDetail(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/withdrawals/table?withdrawals_key=w-1", nil, true)
	if got := rec.Header().Get("HX-Redirect"); got != "/withdrawals/w-1" {
		t.Fatalf("HX-Redirect = %q, want %q", got, "/withdrawals/w-1")
	}

	rec = serve(handler, http.MethodGet, "/users/table?users_key=u-3", nil, true)
	if got := rec.Header().Get("HX-Redirect"); got != "/users/u-3" {
		t.Fatalf("HX-Redirect = %q, want %q", got, "/users/u-3")
	}
}

func TestRowClickFollowsRecordWhenListChanges(t *testing.T) {
	b := newFakeBackend()
	handler := newTestHandler(b, nil)

	rec := serve(handler, http.MethodGet, "/withdrawals/table", nil, true)
	doc, err := html.Parse(strings.NewReader(rec.Body.String()))
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	var clickURL string
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" && clickURL == "" {
			for _, a := range n.Attr {
				if a.Key == "hx-get" {
					clickURL = a.Val
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	if clickURL == "" {
		t.Fatal("expected a clickable withdrawal row")
	}

	b.mu.Lock()
	b.withdrawals = append([]datatable.Row{{"id": "w-NEW", "username": "eve", "amount": "10"}}, b.withdrawals...)
	b.mu.Unlock()

	rec = serve(handler, http.MethodGet, clickURL, nil, true)
	if got := rec.Header().Get("HX-Redirect"); got != "/withdrawals/w-1" {
		t.Fatalf("HX-Redirect = %q, want %q", got, "/withdrawals/w-1")
	}

	b.mu.Lock()
	b.withdrawals = b.withdrawals[:1]
	b.mu.Unlock()

	rec = serve(handler, http.MethodGet, clickURL, nil, true)
	if got := rec.Header().Get("HX-Redirect"); got != "" {
		t.Fatalf("HX-Redirect = %q, want none for a resolved withdrawal", got)
	}
	assertContains(t, rec.Body.String(), `id="withdrawals-content"`)
}

func TestTableFragmentKeepsWhitespaceQuery(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/users/table?users_q=%20", nil, true)
	body := rec.Body.String()
	assertContains(t, body, `data-empty="true"`)
	assertNotContains(t, body, "Alice")

	rec = serve(handler, http.MethodGet, "/users/table?users_q=al%20", nil, true)
	assertContains(t, rec.Body.String(), `data-empty="true"`)

	rec = serve(handler, http.MethodGet, "/users/table?users_q=al", nil, true)
	assertContains(t, rec.Body.String(), "Alice")
}

func TestReviewDialogConfirmsDecision(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/deposits/d-1/review?decision=reject", nil, true)
	body := rec.Body.String()
	assertContains(t, body, "Reject d-1?")
	assertContains(t, body, `name="decision" value="reject"`)

	rec = serve(handler, http.MethodGet, "/deposits/d-1/review?decision=maybe", nil, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestReviewSubmitUpdatesBackendAndJournal(t *testing.T) {
	b := newFakeBackend()
	j := &fakeJournal{}
	handler := newTestHandler(b, j)

	rec := serve(handler, http.MethodPost, "/deposits/d-1/review", url.Values{"decision": {"reject"}}, false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/deposits" {
		t.Fatalf("Location = %q, want /deposits", got)
	}
	if len(b.depositUpdates) != 1 || b.depositUpdates[0] != (statusCall{id: "d-1", isPending: true}) {
		t.Fatalf("deposit updates = %+v", b.depositUpdates)
	}
	if len(j.entries) != 1 {
		t.Fatalf("journal entries = %d, want 1", len(j.entries))
	}
	entry := j.entries[0]
	if entry.Kind != storage.KindDeposit || entry.SubjectID != "d-1" || entry.Decision != storage.DecisionReject {
		t.Fatalf("journal entry = %+v", entry)
	}
	notice := flashNotice(t, rec)
	if notice.Kind != flash.KindSuccess || notice.Key != "flash.deposit_reject" {
		t.Fatalf("notice = %+v", notice)
	}
}

func TestReviewSubmitHTMXRedirects(t *testing.T) {
	b := newFakeBackend()
	handler := newTestHandler(b, nil)

	rec := serve(handler, http.MethodPost, "/withdrawals/w-1/review", url.Values{"decision": {"approve"}}, true)
	if got := rec.Header().Get("HX-Redirect"); got != "/withdrawals" {
		t.Fatalf("HX-Redirect = %q, want /withdrawals", got)
	}
	if len(b.withdrawalUpdates) != 1 || b.withdrawalUpdates[0].isPending {
		t.Fatalf("withdrawal updates = %+v", b.withdrawalUpdates)
	}
}

func TestKYCReviewMapsDecisionToStatus(t *testing.T) {
	b := newFakeBackend()
	handler := newTestHandler(b, nil)

	serve(handler, http.MethodPost, "/kyc/k-1/review", url.Values{"decision": {"approve"}}, false)
	serve(handler, http.MethodPost, "/kyc/k-2/review", url.Values{"decision": {"reject"}}, false)
	if b.kycUpdates["k-1"] != backend.KYCApproved || b.kycUpdates["k-2"] != backend.KYCRejected {
		t.Fatalf("kyc updates = %+v", b.kycUpdates)
	}
}

func TestReviewSubmitRejectsUnknownDecision(t *testing.T) {
	b := newFakeBackend()
	j := &fakeJournal{}
	handler := newTestHandler(b, j)

	rec := serve(handler, http.MethodPost, "/deposits/d-1/review", url.Values{"decision": {"later"}}, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(b.depositUpdates) != 0 || len(j.entries) != 0 {
		t.Fatal("unknown decisions must not reach the backend or journal")
	}
}

func TestFailedWriteFlashesBackendMessage(t *testing.T) {
	b := newFakeBackend()
	b.writeErr = &backend.Error{Status: http.StatusConflict, Message: "Deposit already processed", Detail: "status is approved"}
	j := &fakeJournal{}
	handler := newTestHandler(b, j)

	rec := serve(handler, http.MethodPost, "/deposits/d-1/review", url.Values{"decision": {"approve"}}, false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if len(j.entries) != 0 {
		t.Fatal("failed writes must not be journaled")
	}
	notice := flashNotice(t, rec)
	if notice.Kind != flash.KindError || notice.Message != "Deposit already processed: status is approved" {
		t.Fatalf("notice = %+v", notice)
	}
}

func TestFlashNoticeRendersOnNextPage(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	write := httptest.NewRecorder()
	flash.Writer{}.Write(write, httptest.NewRequest(http.MethodPost, "/", nil), flash.Success("flash.deposit_approve"))

	req := httptest.NewRequest(http.MethodGet, "/deposits", nil)
	for _, cookie := range write.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assertContains(t, rec.Body.String(), "Deposit approved.")
	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == flash.CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected flash cookie to be cleared")
	}
}

func TestTableBackendErrorRendersFragmentError(t *testing.T) {
	b := newFakeBackend()
	b.listErr["deposits"] = &backend.Error{Status: http.StatusInternalServerError, Message: "Database unavailable"}
	handler := newTestHandler(b, nil)

	rec := serve(handler, http.MethodGet, "/deposits/table?deposits_page=1", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("htmx status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	assertContains(t, body, `data-error="true"`)
	assertContains(t, body, `id="deposits-content"`)
	assertContains(t, body, "Database unavailable")
	assertContains(t, body, `hx-get="/deposits/table?deposits_page=1"`)

	rec = serve(handler, http.MethodGet, "/deposits/table", nil, false)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}

func TestTableTimeoutShowsTimeoutMessage(t *testing.T) {
	b := newFakeBackend()
	b.listErr["kyc"] = fmt.Errorf("list kyc: %w", context.DeadlineExceeded)
	handler := newTestHandler(b, nil)

	rec := serve(handler, http.MethodGet, "/kyc/table", nil, true)
	assertContains(t, rec.Body.String(), "The backend took too long to respond.")
}

func TestTableUnexpectedEnvelopeRendersEmpty(t *testing.T) {
	b := newFakeBackend()
	b.listErr["users"] = backend.ErrUnexpectedEnvelope
	handler := newTestHandler(b, nil)

	rec := serve(handler, http.MethodGet, "/users/table", nil, true)
	body := rec.Body.String()
	assertContains(t, body, `data-empty="true"`)
	assertNotContains(t, body, `data-error="true"`)
}

func TestWithdrawalDetailRendersActions(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/withdrawals/w-1", nil, false)
	body := rec.Body.String()
	assertContains(t, body, "Withdrawal details")
	assertContains(t, body, "Carol")
	assertContains(t, body, "/withdrawals/w-1/review?decision=approve")
	assertContains(t, body, "/withdrawals/w-1/delete")

	rec = serve(handler, http.MethodGet, "/withdrawals/missing", nil, false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	assertContains(t, rec.Body.String(), "Withdrawal not found")
}

func TestWithdrawalDeleteFailureReturnsToDetail(t *testing.T) {
	b := newFakeBackend()
	b.writeErr = &backend.Error{Status: http.StatusBadRequest, Message: "Cannot delete"}
	handler := newTestHandler(b, nil)

	rec := serve(handler, http.MethodPost, "/withdrawals/w-1/delete", url.Values{}, false)
	if got := rec.Header().Get("Location"); got != "/withdrawals/w-1" {
		t.Fatalf("Location = %q, want /withdrawals/w-1", got)
	}
}

func TestDashboardContentShowsPartialCounters(t *testing.T) {
	b := newFakeBackend()
	b.listErr["kyc"] = errors.New("connection refused")
	j := &fakeJournal{entries: []storage.JournalEntry{{ID: "j-1", Kind: storage.KindDeposit, SubjectID: "d-9", Decision: storage.DecisionApprove}}}
	handler := newTestHandler(b, j)

	rec := serve(handler, http.MethodGet, "/dashboard/content", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	assertContains(t, body, "Pending deposits")
	assertContains(t, body, `<div class="stat-value">2</div>`)
	assertContains(t, body, `<div class="stat-value">3</div>`)
	assertContains(t, body, `<div class="stat-value">N/A</div>`)
	assertContains(t, body, "Some counters could not be loaded.")
	assertContains(t, body, "Recent decisions")
	assertContains(t, body, "d-9")
	if len(j.opts) != 1 || j.opts[0].PageSize != recentDecisionsLimit {
		t.Fatalf("journal opts = %+v", j.opts)
	}
}

func TestDashboardRecentDecisionsHaveNoControls(t *testing.T) {
	t.Parallel()

	j := &fakeJournal{entries: []storage.JournalEntry{{ID: "j-1", Kind: storage.KindDeposit, SubjectID: "d-9", Decision: storage.DecisionApprove}}}
	handler := newTestHandler(newFakeBackend(), j)

	rec := serve(handler, http.MethodGet, "/dashboard/content", nil, true)
	body := rec.Body.String()
	assertContains(t, body, `id="recent"`)
	assertContains(t, body, "d-9")
	for _, unwanted := range []string{`id="journal"`, "journal-content", "/journal/table", "recent-size", "recent_page", "hx-get"} {
		if strings.Contains(body, unwanted) {
			t.Fatalf("dashboard content contains %q:\n%s", unwanted, body)
		}
	}
}

func TestDashboardPageLoadsContentLazily(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	assertContains(t, rec.Body.String(), `hx-get="/dashboard/content"`)

	rec = serve(handler, http.MethodGet, "/nope", nil, false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestBankDetailCreateValidation(t *testing.T) {
	b := newFakeBackend()
	handler := newTestHandler(b, nil)

	rec := serve(handler, http.MethodPost, "/bank-details", url.Values{"bank_name": {"Acme"}}, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := rec.Body.String()
	assertContains(t, body, `value="Acme"`)
	assertContains(t, body, "missing")
	if len(b.createdDetails) != 0 {
		t.Fatal("invalid forms must not reach the backend")
	}
}

func TestBankDetailCreateSucceeds(t *testing.T) {
	b := newFakeBackend()
	j := &fakeJournal{}
	handler := newTestHandler(b, j)

	rec := serve(handler, http.MethodPost, "/bank-details", url.Values{
		"bank_name":           {"Acme"},
		"account_holder_name": {"Cashdesk Ltd"},
		"account_number":      {"002"},
	}, false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if len(b.createdDetails) != 1 || b.createdDetails[0].AccountNumber != "002" {
		t.Fatalf("created = %+v", b.createdDetails)
	}
	if len(j.entries) != 1 || j.entries[0].Decision != storage.DecisionCreate {
		t.Fatalf("journal = %+v", j.entries)
	}
}

func TestBankDetailEditUnknownID(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/bank-details/b-404/edit", nil, false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	assertContains(t, rec.Body.String(), "Bank detail not found.")
}

func TestBankDetailStatusDialogOffersToggle(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/bank-details/b-1/status", nil, true)
	assertContains(t, rec.Body.String(), `name="decision" value="deactivate"`)
}

func TestSetCoinValueRejectsBadAmount(t *testing.T) {
	b := newFakeBackend()
	handler := newTestHandler(b, nil)

	rec := serve(handler, http.MethodPost, "/coins/value", url.Values{"coin": {"gold"}, "value": {"abc"}}, false)
	if got := rec.Header().Get("Location"); got != "/coins?coin=gold" {
		t.Fatalf("Location = %q", got)
	}
	if len(b.coinValues) != 0 {
		t.Fatal("invalid amounts must not reach the backend")
	}
	if notice := flashNotice(t, rec); notice.Kind != flash.KindError {
		t.Fatalf("notice = %+v", notice)
	}
}

func TestJournalTableFilters(t *testing.T) {
	j := &fakeJournal{entries: []storage.JournalEntry{{ID: "j-1", Kind: storage.KindKYC, SubjectID: "k-1", Decision: storage.DecisionApprove}}}
	handler := newTestHandler(newFakeBackend(), j)

	rec := serve(handler, http.MethodGet, "/journal/table?filter="+url.QueryEscape(`kind = "kyc"`), nil, true)
	assertContains(t, rec.Body.String(), "k-1")
	if len(j.opts) != 1 || j.opts[0].Filter != `kind = "kyc"` || j.opts[0].PageSize != journalListLimit {
		t.Fatalf("journal opts = %+v", j.opts)
	}
}

func TestJournalTableInvalidFilter(t *testing.T) {
	j := &fakeJournal{listErr: fmt.Errorf("%w: unknown field", storage.ErrInvalidFilter)}
	handler := newTestHandler(newFakeBackend(), j)

	rec := serve(handler, http.MethodGet, "/journal/table?filter=bogus", nil, true)
	assertContains(t, rec.Body.String(), "The filter could not be parsed.")

	rec = serve(handler, http.MethodGet, "/journal/table?filter=bogus", nil, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestJournalTableOrderBy(t *testing.T) {
	t.Parallel()

	j := &fakeJournal{entries: []storage.JournalEntry{{ID: "j-1", Kind: storage.KindKYC, SubjectID: "k-1", Decision: storage.DecisionApprove}}}
	handler := newTestHandler(newFakeBackend(), j)

	target := "/journal/table?" + url.Values{"order_by": {storage.OrderOldestFirst}, "filter": {`kind = "kyc"`}}.Encode()
	rec := serve(handler, http.MethodGet, target, nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if len(j.opts) != 1 || j.opts[0].OrderBy != storage.OrderOldestFirst || j.opts[0].Filter != `kind = "kyc"` {
		t.Fatalf("journal opts = %+v", j.opts)
	}
	// Footer controls keep the ordering on the next request.
	assertContains(t, rec.Body.String(), "order_by=recorded_at+asc")
}

func TestJournalTableOrderAgainstStore(t *testing.T) {
	t.Parallel()

	store, err := adminsqlite.Open(filepath.Join(t.TempDir(), "admin.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, subject := range []string{"d-old", "d-new"} {
		entry := storage.JournalEntry{
			Kind:       storage.KindDeposit,
			SubjectID:  subject,
			Decision:   storage.DecisionApprove,
			RecordedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if _, err := store.RecordDecision(context.Background(), entry); err != nil {
			t.Fatalf("record decision: %v", err)
		}
	}
	handler := NewHandler(HandlerConfig{Backend: newFakeBackend(), Journal: store})

	tests := []struct {
		orderBy string
		first   string
		second  string
	}{
		{orderBy: "", first: "d-new", second: "d-old"},
		{orderBy: "recorded_at desc", first: "d-new", second: "d-old"},
		{orderBy: "recorded_at asc", first: "d-old", second: "d-new"},
	}
	for _, tc := range tests {
		rec := serve(handler, http.MethodGet, "/journal/table?"+url.Values{"order_by": {tc.orderBy}}.Encode(), nil, true)
		body := rec.Body.String()
		first, second := strings.Index(body, tc.first), strings.Index(body, tc.second)
		if first < 0 || second < 0 || first > second {
			t.Fatalf("order %q: %s at %d, %s at %d", tc.orderBy, tc.first, first, tc.second, second)
		}
	}

	rec := serve(handler, http.MethodGet, "/journal/table?order_by=kind+asc", nil, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	rec = serve(handler, http.MethodGet, "/journal/table?order_by=kind+asc", nil, true)
	assertContains(t, rec.Body.String(), "Unknown journal order.")
}

func TestJournalPageKeepsOrderSelection(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(newFakeBackend(), &fakeJournal{})

	rec := serve(handler, http.MethodGet, "/journal?order_by=recorded_at+asc", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	assertContains(t, body, `<option value="recorded_at asc" selected="selected">Oldest first</option>`)
	assertContains(t, body, `hx-get="/journal/table?order_by=recorded_at+asc`)
}

func TestJournalTableWithoutStore(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/journal/table", nil, true)
	assertContains(t, rec.Body.String(), "The decision journal is not configured.")
}

func TestHealthAndStatic(t *testing.T) {
	handler := newTestHandler(newFakeBackend(), nil)

	rec := serve(handler, http.MethodGet, "/healthz", nil, false)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
	rec = serve(handler, http.MethodGet, "/static/admin.css", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("static status = %d", rec.Code)
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatal("expected cache header on static assets")
	}
}

func assertContains(t *testing.T, body string, expected string) {
	t.Helper()
	if !strings.Contains(body, expected) {
		t.Fatalf("expected response to contain %q", expected)
	}
}

func assertNotContains(t *testing.T, body string, unexpected string) {
	t.Helper()
	if strings.Contains(body, unexpected) {
		t.Fatalf("expected response not to contain %q", unexpected)
	}
}

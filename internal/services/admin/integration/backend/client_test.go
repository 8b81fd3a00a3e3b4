package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

type fakeBackend struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
	response string
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Body:   string(body),
	})
	status, response := f.status, f.response
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, response)
}

func (f *fakeBackend) last(t *testing.T) capturedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatal("expected a backend request")
	}
	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, fake *fakeBackend) *Client {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	client, err := New(Config{BaseURL: server.URL + "/api", AdminID: "admin-1"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestNewValidatesBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "  ", "ftp://example.com", "://bad"} {
		if _, err := New(Config{BaseURL: raw}); err == nil {
			t.Fatalf("New(%q) expected error", raw)
		}
	}
}

func TestListPendingDepositsReadsEnvelope(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{response: `{"pendingDeposits":[{"id":1,"username":"ana"}]}`}
	client := newTestClient(t, fake)

	rows, err := client.ListPendingDeposits(context.Background())
	if err != nil {
		t.Fatalf("ListPendingDeposits: %v", err)
	}
	if len(rows) != 1 || rows[0].String("username") != "ana" {
		t.Fatalf("rows = %#v", rows)
	}
	got := fake.last(t)
	if got.Method != http.MethodGet || got.Path != "/api/deposits/pending" {
		t.Fatalf("request = %s %s", got.Method, got.Path)
	}
}

func TestStatusUpdatesSendIsPending(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{response: `{}`}
	client := newTestClient(t, fake)
	ctx := context.Background()

	if err := client.UpdateDepositStatus(ctx, "17", false); err != nil {
		t.Fatalf("UpdateDepositStatus: %v", err)
	}
	got := fake.last(t)
	if got.Method != http.MethodPatch || got.Path != "/api/deposits/17/status" {
		t.Fatalf("request = %s %s", got.Method, got.Path)
	}
	if value := gjson.Get(got.Body, "isPending"); value.Type != gjson.False {
		t.Fatalf("isPending = %s, want false", value.Raw)
	}

	if err := client.UpdateWithdrawalStatus(ctx, "9", true); err != nil {
		t.Fatalf("UpdateWithdrawalStatus: %v", err)
	}
	got = fake.last(t)
	if got.Path != "/api/withdrawals/9/status" || !gjson.Get(got.Body, "isPending").Bool() {
		t.Fatalf("request = %s %s", got.Path, got.Body)
	}
}

func TestUpdateKYCStatus(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{response: `{}`}
	client := newTestClient(t, fake)

	if err := client.UpdateKYCStatus(context.Background(), "k1", KYCRejected); err != nil {
		t.Fatalf("UpdateKYCStatus: %v", err)
	}
	got := fake.last(t)
	if got.Path != "/api/kyc/k1/status" || gjson.Get(got.Body, "status").String() != "rejected" {
		t.Fatalf("request = %s %s", got.Path, got.Body)
	}

	err := client.UpdateKYCStatus(context.Background(), "k1", KYCStatus("maybe"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestDeleteWithdrawal(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{response: `{}`}
	client := newTestClient(t, fake)

	if err := client.DeleteWithdrawal(context.Background(), "w-3"); err != nil {
		t.Fatalf("DeleteWithdrawal: %v", err)
	}
	got := fake.last(t)
	if got.Method != http.MethodDelete || got.Path != "/api/withdrawals/w-3" {
		t.Fatalf("request = %s %s", got.Method, got.Path)
	}
}

func TestIdentifiersAreValidated(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{response: `{}`}
	client := newTestClient(t, fake)

	for _, id := range []string{"", " ", "a/b", "a?b"} {
		if err := client.DeleteWithdrawal(context.Background(), id); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("DeleteWithdrawal(%q) err = %v, want ErrInvalidInput", id, err)
		}
	}
	if len(fake.requests) != 0 {
		t.Fatalf("requests = %d, want none", len(fake.requests))
	}
}

func TestBackendErrorBody(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{status: http.StatusConflict, response: `{"message":"Update failed","error":"already processed"}`}
	client := newTestClient(t, fake)

	err := client.UpdateDepositStatus(context.Background(), "1", false)
	var backendErr *Error
	if !errors.As(err, &backendErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if backendErr.Status != http.StatusConflict {
		t.Fatalf("status = %d, want %d", backendErr.Status, http.StatusConflict)
	}
	if err.Error() != "Update failed: already processed" {
		t.Fatalf("message = %q", err.Error())
	}
	if StatusOf(err) != http.StatusConflict {
		t.Fatalf("StatusOf = %d", StatusOf(err))
	}
}

func TestBackendErrorWithoutBody(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{status: http.StatusBadGateway}
	client := newTestClient(t, fake)

	_, err := client.ListUsers(context.Background())
	if err == nil || !strings.Contains(err.Error(), http.StatusText(http.StatusBadGateway)) {
		t.Fatalf("err = %v", err)
	}
}

func TestUnexpectedEnvelopeReturnsEmptyRows(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{response: `{"data":"nope"}`}
	client := newTestClient(t, fake)

	rows, err := client.ListPendingKYC(context.Background())
	if !errors.Is(err, ErrUnexpectedEnvelope) {
		t.Fatalf("err = %v, want ErrUnexpectedEnvelope", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("rows = %#v, want empty", rows)
	}
}

func TestRequestTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	client, err := New(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.ListUsers(context.Background()); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestUserEndpoints(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{response: `{"user":{"id":"u1","email":"ana@example.com"}}`}
	client := newTestClient(t, fake)
	ctx := context.Background()

	user, err := client.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.String("email") != "ana@example.com" {
		t.Fatalf("user = %#v", user)
	}

	if err := client.ResetUserPassword(ctx, "u1", "short"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short password err = %v", err)
	}
	if err := client.ResetUserPassword(ctx, "u1", "correct-horse"); err != nil {
		t.Fatalf("ResetUserPassword: %v", err)
	}
	got := fake.last(t)
	if got.Method != http.MethodPatch || got.Path != "/api/users/u1/reset-password" {
		t.Fatalf("request = %s %s", got.Method, got.Path)
	}
	if gjson.Get(got.Body, "newPassword").String() != "correct-horse" {
		t.Fatalf("body = %s", got.Body)
	}
}

func TestCoinEndpoints(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{response: `[{"coin":"BTC","value":"101.5"}]`}
	client := newTestClient(t, fake)
	ctx := context.Background()

	err := client.CreateManualDeposit(ctx, ManualDeposit{UserID: "u1", Amount: decimal.RequireFromString("12.50"), Coin: "USDT"})
	if err != nil {
		t.Fatalf("CreateManualDeposit: %v", err)
	}
	got := fake.last(t)
	if got.Path != "/api/admin/deposit" {
		t.Fatalf("path = %s", got.Path)
	}
	if amount := gjson.Get(got.Body, "amount"); amount.Type != gjson.Number || amount.Raw != "12.5" {
		t.Fatalf("amount = %s (%v)", amount.Raw, amount.Type)
	}

	if err := client.SetCoinValue(ctx, CoinValue{Coin: "BTC", Value: decimal.NewFromInt(0)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero value err = %v", err)
	}

	rows, err := client.CoinValueHistory(ctx, "BTC")
	if err != nil {
		t.Fatalf("CoinValueHistory: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if got := fake.last(t); got.Path != "/api/coin/value-history" || got.Query != "coin=BTC" {
		t.Fatalf("request = %s?%s", got.Path, got.Query)
	}

	if _, err := client.CommissionHistory(ctx, "u 1"); err != nil {
		t.Fatalf("CommissionHistory: %v", err)
	}
	if got := fake.last(t); got.Path != "/api/admin/user-commission-history" || got.Query != "user_id=u+1" {
		t.Fatalf("request = %s?%s", got.Path, got.Query)
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	if amount, err := ParseAmount(" 10.25 "); err != nil || amount.String() != "10.25" {
		t.Fatalf("ParseAmount = %v, %v", amount, err)
	}
	for _, raw := range []string{"", "abc", "0", "-3"} {
		if _, err := ParseAmount(raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ParseAmount(%q) err = %v", raw, err)
		}
	}
}

func TestBankDetailEndpoints(t *testing.T) {
	t.Parallel()

	fake := &fakeBackend{response: `{"bankDetails":[{"id":4,"bank_name":"Acme","account_holder_name":"Ana","account_number":"1"}]}`}
	client := newTestClient(t, fake)
	ctx := context.Background()

	rows, err := client.ListBankDetails(ctx)
	if err != nil {
		t.Fatalf("ListBankDetails: %v", err)
	}
	if rows[0].String("bankName") != "Acme" {
		t.Fatalf("row = %#v", rows[0])
	}
	if got := fake.last(t); got.Query != "adminId=admin-1" {
		t.Fatalf("query = %s", got.Query)
	}

	if err := client.CreateBankDetail(ctx, BankDetail{BankName: "Acme"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("incomplete create err = %v", err)
	}

	detail := BankDetail{BankName: " Acme ", AccountHolderName: "Ana", AccountNumber: "1"}
	if err := client.UpdateBankDetail(ctx, "4", detail); err != nil {
		t.Fatalf("UpdateBankDetail: %v", err)
	}
	got := fake.last(t)
	if got.Method != http.MethodPatch || got.Path != "/api/admin/bank-details/4" {
		t.Fatalf("request = %s %s", got.Method, got.Path)
	}
	if gjson.Get(got.Body, "bankName").String() != "Acme" || gjson.Get(got.Body, "adminId").String() != "admin-1" {
		t.Fatalf("body = %s", got.Body)
	}

	if err := client.SetBankDetailActive(ctx, "4", false); err != nil {
		t.Fatalf("SetBankDetailActive: %v", err)
	}
	got = fake.last(t)
	if got.Path != "/api/admin/bank-details/4/status" || gjson.Get(got.Body, "isActive").Type != gjson.False {
		t.Fatalf("request = %s %s", got.Path, got.Body)
	}

	if err := client.DeleteBankDetail(ctx, "4"); err != nil {
		t.Fatalf("DeleteBankDetail: %v", err)
	}
	got = fake.last(t)
	if got.Method != http.MethodDelete || gjson.Get(got.Body, "adminId").String() != "admin-1" {
		t.Fatalf("request = %s %s", got.Method, got.Body)
	}
}

func TestBankDetailsRequireAdmin(t *testing.T) {
	t.Parallel()

	client, err := New(Config{BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.ListBankDetails(context.Background()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

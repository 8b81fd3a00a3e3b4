package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/cashdesk/internal/datatable"
	"github.com/louisbranch/cashdesk/internal/services/admin/integration/backend"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
	"github.com/louisbranch/cashdesk/internal/services/admin/storage"
	"github.com/louisbranch/cashdesk/internal/services/admin/templates"
	"golang.org/x/text/message"
)

func (h *Handler) coinHistoryTable(loc *message.Printer, coin string) datatable.Table {
	table := h.baseTable(loc, "history", routepath.WithQuery(routepath.CoinsHistoryTable, url.Values{"coin": {coin}}))
	table.Title = loc.Sprintf("coins.history", coin)
	table.SearchDisabled = true
	table.Columns = []datatable.Column{
		timeColumn(loc, "date", "field.date"),
		coinValueColumn(loc, "value", "field.value"),
	}
	return table
}

func (h *Handler) commissionTable(loc *message.Printer, userID string) datatable.Table {
	table := h.baseTable(loc, "commissions", routepath.WithQuery(routepath.CoinsCommissionsTable, url.Values{"user_id": {userID}}))
	table.Title = loc.Sprintf("coins.commissions", userID)
	table.SearchPlaceholder = loc.Sprintf("search.commissions")
	table.Columns = []datatable.Column{
		timeColumn(loc, "date", "field.date"),
		textColumn(loc, "type", "field.type", 120),
		moneyColumn(loc, "amount", "field.amount"),
	}
	return table
}

// handleCoinsPage renders coin value management. The history tables load
// once a coin or user is chosen in the filter form.
func (h *Handler) handleCoinsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(w, r, lang, loc)
	title := loc.Sprintf("title.coins")
	query := r.URL.Query()
	coin := strings.TrimSpace(query.Get("coin"))
	userID := strings.TrimSpace(query.Get("user_id"))

	view := templates.CoinsView{
		Heading:     templates.PageHeading{Title: title},
		ValueAction: routepath.CoinsValue,
		ValueForm: []templates.FormField{
			{Name: "coin", Label: loc.Sprintf("coins.coin"), Value: coin, Required: true},
			{Name: "value", Label: loc.Sprintf("field.value"), Type: "number", Step: "any", Required: true},
		},
		DepositURL: routepath.CoinsDeposit,
		DepositForm: []templates.FormField{
			{Name: "user_id", Label: loc.Sprintf("coins.user_id"), Value: userID, Required: true},
			{Name: "amount", Label: loc.Sprintf("field.amount"), Type: "number", Step: "any", Required: true},
			{Name: "coin", Label: loc.Sprintf("coins.coin"), Value: coin, Required: true},
		},
		Coin:   coin,
		UserID: userID,
	}
	if coin != "" {
		table := h.coinHistoryTable(loc, coin)
		table.Loading = true
		view.History = table.Component(datatable.ParseState(query, table.Prefix()))
	}
	if userID != "" {
		table := h.commissionTable(loc, userID)
		table.Loading = true
		view.Commissions = table.Component(datatable.ParseState(query, table.Prefix()))
	}
	h.renderPage(w, r, page, title, templates.CoinsPage(view, loc))
}

func (h *Handler) handleCoinHistoryTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	coin := strings.TrimSpace(r.URL.Query().Get("coin"))
	h.serveTable(w, r, loc, h.coinHistoryTable(loc, coin), func(ctx context.Context) ([]datatable.Row, error) {
		return h.backend.CoinValueHistory(ctx, coin)
	}, nil)
}

func (h *Handler) handleCommissionTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	h.serveTable(w, r, loc, h.commissionTable(loc, userID), func(ctx context.Context) ([]datatable.Row, error) {
		return h.backend.CommissionHistory(ctx, userID)
	}, nil)
}

// handleSetCoinValue records a new value for a coin and shows its history.
func (h *Handler) handleSetCoinValue(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if err := r.ParseForm(); err != nil {
		invalidRequest(w, loc, "error.invalid_form")
		return
	}
	coin := strings.TrimSpace(r.PostFormValue("coin"))
	raw := strings.TrimSpace(r.PostFormValue("value"))
	value, err := backend.ParseAmount(raw)
	if err == nil {
		err = h.backend.SetCoinValue(r.Context(), backend.CoinValue{Coin: coin, Value: value})
	}
	h.finishWrite(w, r, coinsURL(coin, ""), err, storage.JournalEntry{
		Kind:      storage.KindCoin,
		SubjectID: coin,
		Decision:  storage.DecisionSetValue,
		Detail:    raw,
	}, "flash.coin_set_value")
}

// handleManualDeposit credits a user directly and shows their commissions.
func (h *Handler) handleManualDeposit(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if err := r.ParseForm(); err != nil {
		invalidRequest(w, loc, "error.invalid_form")
		return
	}
	userID := strings.TrimSpace(r.PostFormValue("user_id"))
	coin := strings.TrimSpace(r.PostFormValue("coin"))
	amount, err := backend.ParseAmount(r.PostFormValue("amount"))
	if err == nil {
		err = h.backend.CreateManualDeposit(r.Context(), backend.ManualDeposit{UserID: userID, Amount: amount, Coin: coin})
	}
	h.finishWrite(w, r, coinsURL(coin, userID), err, storage.JournalEntry{
		Kind:      storage.KindUser,
		SubjectID: userID,
		Decision:  storage.DecisionManualDeposit,
		Detail:    fmt.Sprintf("%s %s", amount.String(), coin),
	}, "flash.manual_deposit")
}

func coinsURL(coin string, userID string) string {
	values := url.Values{}
	if coin != "" {
		values.Set("coin", coin)
	}
	if userID != "" {
		values.Set("user_id", userID)
	}
	return routepath.WithQuery(routepath.Coins, values)
}

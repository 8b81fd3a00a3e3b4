package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/cashdesk/internal/datatable"
	"github.com/shopspring/decimal"
)

// ManualDeposit credits a user balance without a deposit request.
type ManualDeposit struct {
	UserID string
	Amount decimal.Decimal
	Coin   string
}

// CoinValue sets the current value of a coin.
type CoinValue struct {
	Coin  string
	Value decimal.Decimal
}

// ParseAmount parses a positive decimal amount from form input.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalidInput, raw)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	return amount, nil
}

// CreateManualDeposit posts a manual deposit for a user.
func (c *Client) CreateManualDeposit(ctx context.Context, deposit ManualDeposit) error {
	userID := strings.TrimSpace(deposit.UserID)
	coin := strings.TrimSpace(deposit.Coin)
	if userID == "" || coin == "" {
		return fmt.Errorf("%w: user id and coin are required", ErrInvalidInput)
	}
	if !deposit.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	payload, err := newBody().
		set("userId", userID).
		setRaw("amount", deposit.Amount.String()).
		set("coin", coin).
		bytes()
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		Method: http.MethodPost,
		Route:  "/admin/deposit",
		Path:   []string{"admin", "deposit"},
		Body:   payload,
	})
	return err
}

// SetCoinValue updates a coin's value.
func (c *Client) SetCoinValue(ctx context.Context, value CoinValue) error {
	coin := strings.TrimSpace(value.Coin)
	if coin == "" {
		return fmt.Errorf("%w: coin is required", ErrInvalidInput)
	}
	if !value.Value.IsPositive() {
		return fmt.Errorf("%w: value must be positive", ErrInvalidInput)
	}
	payload, err := newBody().
		set("coin", coin).
		setRaw("value", value.Value.String()).
		bytes()
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		Method: http.MethodPost,
		Route:  "/coin/set-value",
		Path:   []string{"coin", "set-value"},
		Body:   payload,
	})
	return err
}

// CoinValueHistory returns the recorded values of a coin.
func (c *Client) CoinValueHistory(ctx context.Context, coin string) ([]datatable.Row, error) {
	coin = strings.TrimSpace(coin)
	if coin == "" {
		return nil, fmt.Errorf("%w: coin is required", ErrInvalidInput)
	}
	body, err := c.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/coin/value-history",
		Path:   []string{"coin", "value-history"},
		Query:  url.Values{"coin": {coin}},
	})
	if err != nil {
		return nil, err
	}
	return normalizeRows(body, "history")
}

// CommissionHistory returns the commissions credited to a user.
func (c *Client) CommissionHistory(ctx context.Context, userID string) ([]datatable.Row, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	body, err := c.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/user-commission-history",
		Path:   []string{"admin", "user-commission-history"},
		Query:  url.Values{"user_id": {userID}},
	})
	if err != nil {
		return nil, err
	}
	return normalizeRows(body, "history")
}

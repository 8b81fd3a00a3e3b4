package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/louisbranch/cashdesk/internal/datatable"
)

// KYCStatus is the decision sent for a KYC request.
type KYCStatus string

const (
	KYCApproved KYCStatus = "approved"
	KYCRejected KYCStatus = "rejected"
)

// ListPendingDeposits returns deposits awaiting review.
func (c *Client) ListPendingDeposits(ctx context.Context) ([]datatable.Row, error) {
	body, err := c.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/deposits/pending",
		Path:   []string{"deposits", "pending"},
	})
	if err != nil {
		return nil, err
	}
	return normalizeRows(body, "pendingDeposits")
}

// UpdateDepositStatus approves (isPending=false) or rejects (isPending=true)
// a deposit.
func (c *Client) UpdateDepositStatus(ctx context.Context, depositID string, isPending bool) error {
	id, err := segment("deposit id", depositID)
	if err != nil {
		return err
	}
	return c.patchPending(ctx, "/deposits/{id}/status", []string{"deposits", id, "status"}, isPending)
}

// ListPendingWithdrawals returns withdrawals awaiting review.
func (c *Client) ListPendingWithdrawals(ctx context.Context) ([]datatable.Row, error) {
	body, err := c.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/withdrawals/pending",
		Path:   []string{"withdrawals", "pending"},
	})
	if err != nil {
		return nil, err
	}
	return normalizeRows(body, "pendingWithdrawals")
}

// GetWithdrawal loads one withdrawal.
func (c *Client) GetWithdrawal(ctx context.Context, withdrawalID string) (datatable.Row, error) {
	id, err := segment("withdrawal id", withdrawalID)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/withdrawals/{id}",
		Path:   []string{"withdrawals", id},
	})
	if err != nil {
		return nil, err
	}
	return normalizeObject(body, "withdrawal")
}

// UpdateWithdrawalStatus approves (isPending=false) or rejects
// (isPending=true) a withdrawal.
func (c *Client) UpdateWithdrawalStatus(ctx context.Context, withdrawalID string, isPending bool) error {
	id, err := segment("withdrawal id", withdrawalID)
	if err != nil {
		return err
	}
	return c.patchPending(ctx, "/withdrawals/{id}/status", []string{"withdrawals", id, "status"}, isPending)
}

// DeleteWithdrawal removes a withdrawal.
func (c *Client) DeleteWithdrawal(ctx context.Context, withdrawalID string) error {
	id, err := segment("withdrawal id", withdrawalID)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		Method: http.MethodDelete,
		Route:  "/withdrawals/{id}",
		Path:   []string{"withdrawals", id},
	})
	return err
}

// ListPendingKYC returns KYC requests awaiting review.
func (c *Client) ListPendingKYC(ctx context.Context) ([]datatable.Row, error) {
	body, err := c.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/kyc/pending",
		Path:   []string{"kyc", "pending"},
	})
	if err != nil {
		return nil, err
	}
	return normalizeRows(body, "pendingKyc")
}

// UpdateKYCStatus records the review decision for a KYC request.
func (c *Client) UpdateKYCStatus(ctx context.Context, kycID string, status KYCStatus) error {
	id, err := segment("kyc id", kycID)
	if err != nil {
		return err
	}
	if status != KYCApproved && status != KYCRejected {
		return fmt.Errorf("%w: kyc status %q", ErrInvalidInput, status)
	}
	payload, err := newBody().set("status", string(status)).bytes()
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		Method: http.MethodPatch,
		Route:  "/kyc/{id}/status",
		Path:   []string{"kyc", id, "status"},
		Body:   payload,
	})
	return err
}

func (c *Client) patchPending(ctx context.Context, route string, path []string, isPending bool) error {
	payload, err := newBody().set("isPending", isPending).bytes()
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		Method: http.MethodPatch,
		Route:  route,
		Path:   path,
		Body:   payload,
	})
	return err
}

package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/cashdesk/internal/datatable"
)

// BankDetail is the editable part of an operator bank account.
type BankDetail struct {
	BankName          string
	AccountHolderName string
	AccountNumber     string
	BranchName        string
	SwiftCode         string
	Description       string
}

// Normalize trims every field.
func (d BankDetail) Normalize() BankDetail {
	return BankDetail{
		BankName:          strings.TrimSpace(d.BankName),
		AccountHolderName: strings.TrimSpace(d.AccountHolderName),
		AccountNumber:     strings.TrimSpace(d.AccountNumber),
		BranchName:        strings.TrimSpace(d.BranchName),
		SwiftCode:         strings.TrimSpace(d.SwiftCode),
		Description:       strings.TrimSpace(d.Description),
	}
}

// Validate requires bank name, account holder and account number.
func (d BankDetail) Validate() error {
	d = d.Normalize()
	var missing []string
	if d.BankName == "" {
		missing = append(missing, "bank name")
	}
	if d.AccountHolderName == "" {
		missing = append(missing, "account holder name")
	}
	if d.AccountNumber == "" {
		missing = append(missing, "account number")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// BankDetailFromRow reads the editable fields of a folded bank detail row.
func BankDetailFromRow(row datatable.Row) BankDetail {
	return BankDetail{
		BankName:          row.String("bankName"),
		AccountHolderName: row.String("accountHolderName"),
		AccountNumber:     row.String("accountNumber"),
		BranchName:        row.String("branchName"),
		SwiftCode:         row.String("swiftCode"),
		Description:       row.String("description"),
	}
}

// ListBankDetails returns the operator bank accounts with canonical
// camelCase keys.
func (c *Client) ListBankDetails(ctx context.Context) ([]datatable.Row, error) {
	if err := c.requireAdmin(); err != nil {
		return nil, err
	}
	body, err := c.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/bank-details",
		Path:   []string{"admin", "bank-details"},
		Query:  url.Values{"adminId": {c.adminID}},
	})
	if err != nil {
		return nil, err
	}
	rows, err := normalizeRows(body, "bankDetails")
	for i, row := range rows {
		rows[i] = foldBankDetail(row)
	}
	return rows, err
}

// CreateBankDetail adds an operator bank account.
func (c *Client) CreateBankDetail(ctx context.Context, detail BankDetail) error {
	payload, err := c.bankDetailBody(detail)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		Method: http.MethodPost,
		Route:  "/admin/bank-details",
		Path:   []string{"admin", "bank-details"},
		Body:   payload,
	})
	return err
}

// UpdateBankDetail replaces the editable fields of a bank account.
func (c *Client) UpdateBankDetail(ctx context.Context, detailID string, detail BankDetail) error {
	id, err := segment("bank detail id", detailID)
	if err != nil {
		return err
	}
	payload, err := c.bankDetailBody(detail)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		Method: http.MethodPatch,
		Route:  "/admin/bank-details/{id}",
		Path:   []string{"admin", "bank-details", id},
		Body:   payload,
	})
	return err
}

// SetBankDetailActive activates or deactivates a bank account.
func (c *Client) SetBankDetailActive(ctx context.Context, detailID string, active bool) error {
	id, err := segment("bank detail id", detailID)
	if err != nil {
		return err
	}
	if err := c.requireAdmin(); err != nil {
		return err
	}
	payload, err := newBody().set("isActive", active).set("adminId", c.adminID).bytes()
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		Method: http.MethodPatch,
		Route:  "/admin/bank-details/{id}/status",
		Path:   []string{"admin", "bank-details", id, "status"},
		Body:   payload,
	})
	return err
}

// DeleteBankDetail removes a bank account.
func (c *Client) DeleteBankDetail(ctx context.Context, detailID string) error {
	id, err := segment("bank detail id", detailID)
	if err != nil {
		return err
	}
	if err := c.requireAdmin(); err != nil {
		return err
	}
	payload, err := newBody().set("adminId", c.adminID).bytes()
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		Method: http.MethodDelete,
		Route:  "/admin/bank-details/{id}",
		Path:   []string{"admin", "bank-details", id},
		Body:   payload,
	})
	return err
}

func (c *Client) bankDetailBody(detail BankDetail) ([]byte, error) {
	if err := c.requireAdmin(); err != nil {
		return nil, err
	}
	if err := detail.Validate(); err != nil {
		return nil, err
	}
	detail = detail.Normalize()
	return newBody().
		set("bankName", detail.BankName).
		set("accountHolderName", detail.AccountHolderName).
		set("accountNumber", detail.AccountNumber).
		set("branchName", detail.BranchName).
		set("swiftCode", detail.SwiftCode).
		set("description", detail.Description).
		set("adminId", c.adminID).
		bytes()
}

func (c *Client) requireAdmin() error {
	if c.adminID == "" {
		return fmt.Errorf("%w: admin id is not configured", ErrInvalidInput)
	}
	return nil
}

// Package routepath defines the admin URL paths and the builders for paths
// that carry identifiers.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root             = "/"
	StaticPrefix     = "/static/"
	Stylesheet       = StaticPrefix + "admin.css"
	Health           = "/healthz"
	DashboardContent = "/dashboard/content"
)

const (
	Deposits      = "/deposits"
	DepositsTable = "/deposits/table"
)

const (
	Withdrawals      = "/withdrawals"
	WithdrawalsTable = "/withdrawals/table"
)

const (
	KYC      = "/kyc"
	KYCTable = "/kyc/table"
)

const (
	Users      = "/users"
	UsersTable = "/users/table"
)

const (
	Coins                 = "/coins"
	CoinsValue            = "/coins/value"
	CoinsDeposit          = "/coins/deposit"
	CoinsHistoryTable     = "/coins/history/table"
	CoinsCommissionsTable = "/coins/commissions/table"
)

const (
	BankDetails      = "/bank-details"
	BankDetailsTable = "/bank-details/table"
	BankDetailsNew   = "/bank-details/new"
)

const (
	Journal      = "/journal"
	JournalTable = "/journal/table"
)

// Deposit returns the base path of one deposit.
func Deposit(depositID string) string {
	return Deposits + "/" + escapeSegment(depositID)
}

// DepositReview returns the review path of a deposit.
func DepositReview(depositID string) string {
	return Deposit(depositID) + "/review"
}

// Withdrawal returns the detail path of one withdrawal.
func Withdrawal(withdrawalID string) string {
	return Withdrawals + "/" + escapeSegment(withdrawalID)
}

// WithdrawalReview returns the review path of a withdrawal.
func WithdrawalReview(withdrawalID string) string {
	return Withdrawal(withdrawalID) + "/review"
}

// WithdrawalDelete returns the delete path of a withdrawal.
func WithdrawalDelete(withdrawalID string) string {
	return Withdrawal(withdrawalID) + "/delete"
}

// KYCRequest returns the base path of one KYC request.
func KYCRequest(kycID string) string {
	return KYC + "/" + escapeSegment(kycID)
}

// KYCReview returns the review path of a KYC request.
func KYCReview(kycID string) string {
	return KYCRequest(kycID) + "/review"
}

// User returns the detail path of one user.
func User(userID string) string {
	return Users + "/" + escapeSegment(userID)
}

// UserTransactionsTable returns the transactions fragment of a user.
func UserTransactionsTable(userID string) string {
	return User(userID) + "/transactions/table"
}

// UserResetPassword returns the password reset path of a user.
func UserResetPassword(userID string) string {
	return User(userID) + "/reset-password"
}

// BankDetail returns the update path of one bank detail.
func BankDetail(detailID string) string {
	return BankDetails + "/" + escapeSegment(detailID)
}

// BankDetailEdit returns the edit form path of a bank detail.
func BankDetailEdit(detailID string) string {
	return BankDetail(detailID) + "/edit"
}

// BankDetailStatus returns the activation toggle path of a bank detail.
func BankDetailStatus(detailID string) string {
	return BankDetail(detailID) + "/status"
}

// BankDetailDelete returns the delete path of a bank detail.
func BankDetailDelete(detailID string) string {
	return BankDetail(detailID) + "/delete"
}

// WithQuery appends encoded values to path when any are set.
func WithQuery(path string, values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

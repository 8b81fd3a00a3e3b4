package admin

import (
	"net/http"
)

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	h.handleDashboard(w, r)
}

func (h *Handler) HandleDashboardContent(w http.ResponseWriter, r *http.Request) {
	h.handleDashboardContent(w, r)
}

func (h *Handler) HandleDepositsPage(w http.ResponseWriter, r *http.Request) {
	h.handleDepositsPage(w, r)
}

func (h *Handler) HandleDepositsTable(w http.ResponseWriter, r *http.Request) {
	h.handleDepositsTable(w, r)
}

func (h *Handler) HandleDepositReviewDialog(w http.ResponseWriter, r *http.Request, depositID string) {
	h.handleDepositReviewDialog(w, r, depositID)
}

func (h *Handler) HandleDepositReview(w http.ResponseWriter, r *http.Request, depositID string) {
	h.handleDepositReview(w, r, depositID)
}

func (h *Handler) HandleWithdrawalsPage(w http.ResponseWriter, r *http.Request) {
	h.handleWithdrawalsPage(w, r)
}

func (h *Handler) HandleWithdrawalsTable(w http.ResponseWriter, r *http.Request) {
	h.handleWithdrawalsTable(w, r)
}

func (h *Handler) HandleWithdrawalDetail(w http.ResponseWriter, r *http.Request, withdrawalID string) {
	h.handleWithdrawalDetail(w, r, withdrawalID)
}

func (h *Handler) HandleWithdrawalReviewDialog(w http.ResponseWriter, r *http.Request, withdrawalID string) {
	h.handleWithdrawalReviewDialog(w, r, withdrawalID)
}

func (h *Handler) HandleWithdrawalReview(w http.ResponseWriter, r *http.Request, withdrawalID string) {
	h.handleWithdrawalReview(w, r, withdrawalID)
}

func (h *Handler) HandleWithdrawalDeleteDialog(w http.ResponseWriter, r *http.Request, withdrawalID string) {
	h.handleWithdrawalDeleteDialog(w, r, withdrawalID)
}

func (h *Handler) HandleWithdrawalDelete(w http.ResponseWriter, r *http.Request, withdrawalID string) {
	h.handleWithdrawalDelete(w, r, withdrawalID)
}

func (h *Handler) HandleKYCPage(w http.ResponseWriter, r *http.Request) {
	h.handleKYCPage(w, r)
}

func (h *Handler) HandleKYCTable(w http.ResponseWriter, r *http.Request) {
	h.handleKYCTable(w, r)
}

func (h *Handler) HandleKYCReviewDialog(w http.ResponseWriter, r *http.Request, kycID string) {
	h.handleKYCReviewDialog(w, r, kycID)
}

func (h *Handler) HandleKYCReview(w http.ResponseWriter, r *http.Request, kycID string) {
	h.handleKYCReview(w, r, kycID)
}

func (h *Handler) HandleUsersPage(w http.ResponseWriter, r *http.Request) {
	h.handleUsersPage(w, r)
}

func (h *Handler) HandleUsersTable(w http.ResponseWriter, r *http.Request) {
	h.handleUsersTable(w, r)
}

func (h *Handler) HandleUserDetail(w http.ResponseWriter, r *http.Request, userID string) {
	h.handleUserDetail(w, r, userID)
}

func (h *Handler) HandleUserTransactionsTable(w http.ResponseWriter, r *http.Request, userID string) {
	h.handleUserTransactionsTable(w, r, userID)
}

func (h *Handler) HandleUserResetPassword(w http.ResponseWriter, r *http.Request, userID string) {
	h.handleUserResetPassword(w, r, userID)
}

func (h *Handler) HandleCoinsPage(w http.ResponseWriter, r *http.Request) {
	h.handleCoinsPage(w, r)
}

func (h *Handler) HandleCoinHistoryTable(w http.ResponseWriter, r *http.Request) {
	h.handleCoinHistoryTable(w, r)
}

func (h *Handler) HandleCommissionTable(w http.ResponseWriter, r *http.Request) {
	h.handleCommissionTable(w, r)
}

func (h *Handler) HandleSetCoinValue(w http.ResponseWriter, r *http.Request) {
	h.handleSetCoinValue(w, r)
}

func (h *Handler) HandleManualDeposit(w http.ResponseWriter, r *http.Request) {
	h.handleManualDeposit(w, r)
}

func (h *Handler) HandleBankDetailsPage(w http.ResponseWriter, r *http.Request) {
	h.handleBankDetailsPage(w, r)
}

func (h *Handler) HandleBankDetailsTable(w http.ResponseWriter, r *http.Request) {
	h.handleBankDetailsTable(w, r)
}

func (h *Handler) HandleBankDetailNew(w http.ResponseWriter, r *http.Request) {
	h.handleBankDetailNew(w, r)
}

func (h *Handler) HandleBankDetailCreate(w http.ResponseWriter, r *http.Request) {
	h.handleBankDetailCreate(w, r)
}

func (h *Handler) HandleBankDetailEdit(w http.ResponseWriter, r *http.Request, detailID string) {
	h.handleBankDetailEdit(w, r, detailID)
}

func (h *Handler) HandleBankDetailUpdate(w http.ResponseWriter, r *http.Request, detailID string) {
	h.handleBankDetailUpdate(w, r, detailID)
}

func (h *Handler) HandleBankDetailStatusDialog(w http.ResponseWriter, r *http.Request, detailID string) {
	h.handleBankDetailStatusDialog(w, r, detailID)
}

func (h *Handler) HandleBankDetailStatus(w http.ResponseWriter, r *http.Request, detailID string) {
	h.handleBankDetailStatus(w, r, detailID)
}

func (h *Handler) HandleBankDetailDeleteDialog(w http.ResponseWriter, r *http.Request, detailID string) {
	h.handleBankDetailDeleteDialog(w, r, detailID)
}

func (h *Handler) HandleBankDetailDelete(w http.ResponseWriter, r *http.Request, detailID string) {
	h.handleBankDetailDelete(w, r, detailID)
}

func (h *Handler) HandleJournalPage(w http.ResponseWriter, r *http.Request) {
	h.handleJournalPage(w, r)
}

func (h *Handler) HandleJournalTable(w http.ResponseWriter, r *http.Request) {
	h.handleJournalTable(w, r)
}

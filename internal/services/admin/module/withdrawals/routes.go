package withdrawals

import (
	"net/http"

	"github.com/louisbranch/cashdesk/internal/services/admin/module/sharedpath"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
)

// Service defines withdrawal route handlers consumed by this route module.
type Service interface {
	HandleWithdrawalsPage(w http.ResponseWriter, r *http.Request)
	HandleWithdrawalsTable(w http.ResponseWriter, r *http.Request)
	HandleWithdrawalDetail(w http.ResponseWriter, r *http.Request, withdrawalID string)
	HandleWithdrawalReviewDialog(w http.ResponseWriter, r *http.Request, withdrawalID string)
	HandleWithdrawalReview(w http.ResponseWriter, r *http.Request, withdrawalID string)
	HandleWithdrawalDeleteDialog(w http.ResponseWriter, r *http.Request, withdrawalID string)
	HandleWithdrawalDelete(w http.ResponseWriter, r *http.Request, withdrawalID string)
}

// RegisterRoutes wires withdrawal routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	review := sharedpath.WithID(routepath.Withdrawals, "review")
	remove := sharedpath.WithID(routepath.Withdrawals, "delete")
	mux.HandleFunc(sharedpath.Get(routepath.Withdrawals), service.HandleWithdrawalsPage)
	mux.HandleFunc(sharedpath.Get(routepath.WithdrawalsTable), service.HandleWithdrawalsTable)
	mux.HandleFunc(sharedpath.Get(sharedpath.WithID(routepath.Withdrawals)), sharedpath.WithIDHandler(service.HandleWithdrawalDetail))
	mux.HandleFunc(sharedpath.Get(review), sharedpath.WithIDHandler(service.HandleWithdrawalReviewDialog))
	mux.HandleFunc(sharedpath.Post(review), sharedpath.WithIDHandler(service.HandleWithdrawalReview))
	mux.HandleFunc(sharedpath.Get(remove), sharedpath.WithIDHandler(service.HandleWithdrawalDeleteDialog))
	mux.HandleFunc(sharedpath.Post(remove), sharedpath.WithIDHandler(service.HandleWithdrawalDelete))
}

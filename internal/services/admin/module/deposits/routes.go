package deposits

import (
	"net/http"

	"github.com/louisbranch/cashdesk/internal/services/admin/module/sharedpath"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
)

// Service defines pending deposit route handlers consumed by this route module.
type Service interface {
	HandleDepositsPage(w http.ResponseWriter, r *http.Request)
	HandleDepositsTable(w http.ResponseWriter, r *http.Request)
	HandleDepositReviewDialog(w http.ResponseWriter, r *http.Request, depositID string)
	HandleDepositReview(w http.ResponseWriter, r *http.Request, depositID string)
}

// RegisterRoutes wires deposit routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	review := sharedpath.WithID(routepath.Deposits, "review")
	mux.HandleFunc(sharedpath.Get(routepath.Deposits), service.HandleDepositsPage)
	mux.HandleFunc(sharedpath.Get(routepath.DepositsTable), service.HandleDepositsTable)
	mux.HandleFunc(sharedpath.Get(review), sharedpath.WithIDHandler(service.HandleDepositReviewDialog))
	mux.HandleFunc(sharedpath.Post(review), sharedpath.WithIDHandler(service.HandleDepositReview))
}

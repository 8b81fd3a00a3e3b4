package coins

import (
	"net/http"

	"github.com/louisbranch/cashdesk/internal/services/admin/module/sharedpath"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
)

// Service defines coin management route handlers consumed by this route module.
type Service interface {
	HandleCoinsPage(w http.ResponseWriter, r *http.Request)
	HandleCoinHistoryTable(w http.ResponseWriter, r *http.Request)
	HandleCommissionTable(w http.ResponseWriter, r *http.Request)
	HandleSetCoinValue(w http.ResponseWriter, r *http.Request)
	HandleManualDeposit(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires coin routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(sharedpath.Get(routepath.Coins), service.HandleCoinsPage)
	mux.HandleFunc(sharedpath.Get(routepath.CoinsHistoryTable), service.HandleCoinHistoryTable)
	mux.HandleFunc(sharedpath.Get(routepath.CoinsCommissionsTable), service.HandleCommissionTable)
	mux.HandleFunc(sharedpath.Post(routepath.CoinsValue), service.HandleSetCoinValue)
	mux.HandleFunc(sharedpath.Post(routepath.CoinsDeposit), service.HandleManualDeposit)
}

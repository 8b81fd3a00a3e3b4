package bankdetails

import (
	"net/http"

	"github.com/louisbranch/cashdesk/internal/services/admin/module/sharedpath"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
)

// Service defines bank detail route handlers consumed by this route module.
type Service interface {
	HandleBankDetailsPage(w http.ResponseWriter, r *http.Request)
	HandleBankDetailsTable(w http.ResponseWriter, r *http.Request)
	HandleBankDetailNew(w http.ResponseWriter, r *http.Request)
	HandleBankDetailCreate(w http.ResponseWriter, r *http.Request)
	HandleBankDetailEdit(w http.ResponseWriter, r *http.Request, detailID string)
	HandleBankDetailUpdate(w http.ResponseWriter, r *http.Request, detailID string)
	HandleBankDetailStatusDialog(w http.ResponseWriter, r *http.Request, detailID string)
	HandleBankDetailStatus(w http.ResponseWriter, r *http.Request, detailID string)
	HandleBankDetailDeleteDialog(w http.ResponseWriter, r *http.Request, detailID string)
	HandleBankDetailDelete(w http.ResponseWriter, r *http.Request, detailID string)
}

// RegisterRoutes wires bank detail routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	status := sharedpath.WithID(routepath.BankDetails, "status")
	remove := sharedpath.WithID(routepath.BankDetails, "delete")
	mux.HandleFunc(sharedpath.Get(routepath.BankDetails), service.HandleBankDetailsPage)
	mux.HandleFunc(sharedpath.Post(routepath.BankDetails), service.HandleBankDetailCreate)
	mux.HandleFunc(sharedpath.Get(routepath.BankDetailsTable), service.HandleBankDetailsTable)
	mux.HandleFunc(sharedpath.Get(routepath.BankDetailsNew), service.HandleBankDetailNew)
	mux.HandleFunc(sharedpath.Get(sharedpath.WithID(routepath.BankDetails, "edit")), sharedpath.WithIDHandler(service.HandleBankDetailEdit))
	mux.HandleFunc(sharedpath.Post(sharedpath.WithID(routepath.BankDetails)), sharedpath.WithIDHandler(service.HandleBankDetailUpdate))
	mux.HandleFunc(sharedpath.Get(status), sharedpath.WithIDHandler(service.HandleBankDetailStatusDialog))
	mux.HandleFunc(sharedpath.Post(status), sharedpath.WithIDHandler(service.HandleBankDetailStatus))
	mux.HandleFunc(sharedpath.Get(remove), sharedpath.WithIDHandler(service.HandleBankDetailDeleteDialog))
	mux.HandleFunc(sharedpath.Post(remove), sharedpath.WithIDHandler(service.HandleBankDetailDelete))
}

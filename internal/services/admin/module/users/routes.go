package users

import (
	"net/http"

	"github.com/louisbranch/cashdesk/internal/services/admin/module/sharedpath"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
)

// Service defines user route handlers consumed by this route module.
type Service interface {
	HandleUsersPage(w http.ResponseWriter, r *http.Request)
	HandleUsersTable(w http.ResponseWriter, r *http.Request)
	HandleUserDetail(w http.ResponseWriter, r *http.Request, userID string)
	HandleUserTransactionsTable(w http.ResponseWriter, r *http.Request, userID string)
	HandleUserResetPassword(w http.ResponseWriter, r *http.Request, userID string)
}

// RegisterRoutes wires user routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(sharedpath.Get(routepath.Users), service.HandleUsersPage)
	mux.HandleFunc(sharedpath.Get(routepath.UsersTable), service.HandleUsersTable)
	mux.HandleFunc(sharedpath.Get(sharedpath.WithID(routepath.Users)), sharedpath.WithIDHandler(service.HandleUserDetail))
	mux.HandleFunc(sharedpath.Get(sharedpath.WithID(routepath.Users, "transactions", "table")), sharedpath.WithIDHandler(service.HandleUserTransactionsTable))
	mux.HandleFunc(sharedpath.Post(sharedpath.WithID(routepath.Users, "reset-password")), sharedpath.WithIDHandler(service.HandleUserResetPassword))
}

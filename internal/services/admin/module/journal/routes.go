package journal

import (
	"net/http"

	"github.com/louisbranch/cashdesk/internal/services/admin/module/sharedpath"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
)

// Service defines decision journal route handlers consumed by this route module.
type Service interface {
	HandleJournalPage(w http.ResponseWriter, r *http.Request)
	HandleJournalTable(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires journal routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(sharedpath.Get(routepath.Journal), service.HandleJournalPage)
	mux.HandleFunc(sharedpath.Get(routepath.JournalTable), service.HandleJournalTable)
}

package kyc

import (
	"net/http"

	"github.com/louisbranch/cashdesk/internal/services/admin/module/sharedpath"
	"github.com/louisbranch/cashdesk/internal/services/admin/routepath"
)

// Service defines KYC route handlers consumed by this route module.
type Service interface {
	HandleKYCPage(w http.ResponseWriter, r *http.Request)
	HandleKYCTable(w http.ResponseWriter, r *http.Request)
	HandleKYCReviewDialog(w http.ResponseWriter, r *http.Request, kycID string)
	HandleKYCReview(w http.ResponseWriter, r *http.Request, kycID string)
}

// RegisterRoutes wires KYC routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	review := sharedpath.WithID(routepath.KYC, "review")
	mux.HandleFunc(sharedpath.Get(routepath.KYC), service.HandleKYCPage)
	mux.HandleFunc(sharedpath.Get(routepath.KYCTable), service.HandleKYCTable)
	mux.HandleFunc(sharedpath.Get(review), sharedpath.WithIDHandler(service.HandleKYCReviewDialog))
	mux.HandleFunc(sharedpath.Post(review), sharedpath.WithIDHandler(service.HandleKYCReview))
}

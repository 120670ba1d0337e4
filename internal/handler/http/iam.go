package http

import (
	"net/http"

	"github.com/MKhiriev/auctions-api/internal/requestcontext"
	"github.com/MKhiriev/auctions-api/internal/utils"
)

// me returns the user bound to the current request scope.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) error {
	user, err := requestcontext.CurrentUser(r.Context())
	if err != nil {
		return err
	}

	utils.WriteJSON(w, user, http.StatusOK)
	return nil
}

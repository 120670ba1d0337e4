package http

import (
	"net/http"

	"github.com/MKhiriev/auctions-api/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, buildInfo.Response(), http.StatusOK)
}

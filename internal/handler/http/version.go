package http

import (
	"net/http"

	"newsroom/internal/utils"
)

// version reports the build metadata of the running binary.
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, r, http.StatusOK, h.services.AppInfoService.BuildInfo(r.Context()))
}

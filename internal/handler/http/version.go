package http

import (
	"net/http"

	"github.com/mkarev/go-break-ledger/internal/utils"
	"github.com/mkarev/go-break-ledger/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteJSON(w, models.VersionResponse{Version: serverVersion}, http.StatusOK)
}

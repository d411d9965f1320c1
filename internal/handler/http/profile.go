package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkarev/go-break-ledger/internal/app"
	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/internal/utils"
	"github.com/mkarev/go-break-ledger/models"
)

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Str("func", "*Handler.saveProfile").Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	if err := h.services.LogService.SaveProfile(ctx, profile); err != nil {
		log.Err(err).Str("func", "*Handler.saveProfile").Msg("error saving profile")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token := r.URL.Query().Get("token")

	profile, err := h.services.LogService.GetProfile(ctx, token)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProfile").Msg("error getting profile")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

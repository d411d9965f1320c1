package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mkarev/go-break-ledger/internal/app"
	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/internal/store"
	"github.com/mkarev/go-break-ledger/internal/utils"
	"github.com/mkarev/go-break-ledger/models"
)

func (h *Handler) submitLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var record models.LogRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.submitLog").Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	stored, err := h.services.LogService.SubmitLog(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitLog").Msg("error submitting break record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SubmitLogResponse{LogRecord: stored}, http.StatusCreated)
}

func (h *Handler) listLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := store.LogFilter{City: r.URL.Query().Get("city")}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listLogs").Msg("invalid limit parameter")
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	logs, err := h.services.LogService.ListLogs(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listLogs").Msg("error listing break records")
		writeError(w, err)
		return
	}
	if logs == nil {
		logs = []models.LogRecord{}
	}

	utils.WriteJSON(w, logs, http.StatusOK)
}

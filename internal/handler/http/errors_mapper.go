package http

import (
	"errors"
	"net/http"

	"github.com/mkarev/go-break-ledger/internal/app"
	"github.com/mkarev/go-break-ledger/internal/service"
	"github.com/mkarev/go-break-ledger/internal/store"
	"github.com/mkarev/go-break-ledger/internal/utils"
	"github.com/mkarev/go-break-ledger/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrProfileNotFound: http.StatusNotFound,
	store.ErrLogNotSaved:     http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders a service or store failure as a JSON error body with a
// stable message. Internal error details never leak into the response.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := app.MsgInternalServerError
	switch status {
	case http.StatusBadRequest:
		message = app.MsgInvalidDataProvided
	case http.StatusNotFound:
		message = app.MsgProfileNotFound
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

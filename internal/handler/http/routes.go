package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkarev/go-break-ledger/internal/app"
	"github.com/mkarev/go-break-ledger/internal/utils"
	"github.com/mkarev/go-break-ledger/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Route("/api", func(r chi.Router) {
		r.Post("/log", h.submitLog)
		r.Get("/log", h.listLogs)
		r.Post("/profile", h.saveProfile)
		r.Get("/profile", h.getProfile)
		r.Get("/version", h.getServerVersion)
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
	})

	return router
}

package service

import (
	"github.com/mkarev/go-break-ledger/internal/adapter"
	"github.com/mkarev/go-break-ledger/internal/config"
	"github.com/mkarev/go-break-ledger/internal/geo"
	"github.com/mkarev/go-break-ledger/internal/identity"
	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/internal/store"
	"github.com/mkarev/go-break-ledger/internal/utils"
)

// ClientServices groups all client-side services for injection into the TUI.
type ClientServices struct {
	Session    ClientSessionService
	Views      ClientViewsService
	RefreshJob ClientRefreshJob
}

// NewClientServices wires the client service layer over the local state
// store, the server adapter and the geolocation helpers.
func NewClientServices(storages *store.ClientStorages, server adapter.ServerAdapter, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	log.Info().Msg("creating new client services...")

	identities := identity.NewStore(storages.State, utils.NewUUIDGenerator(), log)
	locator := geo.NewLocatorFromConfig(cfg.Geo)

	session := NewClientSessionService(identities, server, locator, cfg.Geo, log)
	views := NewClientViewsService(server, session, cfg.Views.LeaderboardSize, log)

	return &ClientServices{
		Session:    session,
		Views:      views,
		RefreshJob: NewClientRefreshJob(views, cfg.Workers.RefreshInterval, log),
	}
}

package client

import (
	"context"
	"errors"

	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/internal/service"
	"github.com/mkarev/go-break-ledger/internal/tui"
	"github.com/mkarev/go-break-ledger/internal/workers"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) *App {
	return &App{
		services: services,
		tui:      ui,
		logger:   log,
	}
}

// Run drives the client lifecycle: bootstrap the persisted identity, walk the
// welcome flow when there is none, then hand over to the dashboard. A logout
// from the dashboard loops back to the welcome screen.
func (a *App) Run() error {
	ctx := context.Background()

	identity := a.services.Session.Bootstrap(ctx)
	if !identity.IsZero() {
		a.logger.Info().Str("username", identity.Username).Msg("restored identity")
	}

	for {
		if a.services.Session.Identity().IsZero() {
			_, err := a.tui.WelcomeFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return err
			}
		}

		logout, err := a.runSession(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}

// runSession runs the dashboard with the views refresh worker alive for its
// duration.
func (a *App) runSession(ctx context.Context) (bool, error) {
	workers.NewWorkers(a.services.RefreshJob).Run()
	defer a.services.RefreshJob.Stop()

	return a.tui.MainLoop(ctx)
}

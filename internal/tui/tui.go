// Package tui implements the terminal user interface of the break ledger
// client on top of bubbletea. It is a thin display layer: every state
// transition and every server call goes through the client services, and the
// models here only translate key presses into service calls and service
// results into text.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarev/go-break-ledger/internal/config"
	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/internal/service"
	"github.com/mkarev/go-break-ledger/models"
)

// ErrUserQuit is returned when the user leaves the welcome screen without
// activating an identity.
var ErrUserQuit = errors.New("quit by user")

type TUI struct {
	services *service.ClientServices
	views    config.ClientViews
	logger   *logger.Logger
}

func New(services *service.ClientServices, views config.ClientViews, log *logger.Logger) *TUI {
	return &TUI{
		services: services,
		views:    views,
		logger:   log,
	}
}

// WelcomeFlow runs the first-run screen until the user has an active identity,
// either freshly generated or recovered by token.
func (t *TUI) WelcomeFlow(ctx context.Context) (models.Identity, error) {
	program := tea.NewProgram(newWelcomeModel(ctx, t.services.Session), tea.WithAltScreen())

	finalModel, err := program.Run()
	if err != nil {
		return models.Identity{}, err
	}

	result, ok := finalModel.(welcomeModel)
	if !ok {
		return models.Identity{}, errors.New("unexpected welcome model type")
	}
	if result.quitByUser {
		return models.Identity{}, ErrUserQuit
	}

	return result.identity, nil
}

// MainLoop runs the dashboard until the user quits or logs out. The returned
// bool reports a logout: the caller is expected to restart the welcome flow.
func (t *TUI) MainLoop(ctx context.Context) (bool, error) {
	program := tea.NewProgram(newMainLoopModel(ctx, t.services, t.views), tea.WithAltScreen())

	finalModel, err := program.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, errors.New("unexpected main loop model type")
	}

	return result.logout, nil
}

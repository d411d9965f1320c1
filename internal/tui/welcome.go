package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarev/go-break-ledger/internal/service"
	"github.com/mkarev/go-break-ledger/models"
)

type welcomeStage int

const (
	welcomeStageMenu welcomeStage = iota
	welcomeStageRecover
	welcomeStageWorking
)

// identityReadyMsg carries the result of identity generation or recovery.
type identityReadyMsg struct {
	identity models.Identity
	err      error
}

type welcomeModel struct {
	ctx     context.Context
	session service.ClientSessionService

	stage      welcomeStage
	cursor     int
	items      []string
	tokenInput textinput.Model
	errMsg     string

	identity   models.Identity
	quitByUser bool
}

func newWelcomeModel(ctx context.Context, session service.ClientSessionService) welcomeModel {
	input := textinput.New()
	input.Placeholder = "recovery code"
	input.CharLimit = 64
	input.Width = 40

	return welcomeModel{
		ctx:     ctx,
		session: session,
		items: []string{
			"Start fresh with a new name",
			"I have a recovery code",
		},
		tokenInput: input,
	}
}

func (m welcomeModel) Init() tea.Cmd {
	return nil
}

func (m welcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case identityReadyMsg:
		if msg.err != nil {
			m.stage = welcomeStageRecover
			m.errMsg = msg.err.Error()
			m.tokenInput.Focus()
			return m, textinput.Blink
		}
		m.identity = msg.identity
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}

		switch m.stage {
		case welcomeStageMenu:
			return m.updateMenu(msg)
		case welcomeStageRecover:
			return m.updateRecover(msg)
		}
	}

	if m.stage == welcomeStageRecover {
		var cmd tea.Cmd
		m.tokenInput, cmd = m.tokenInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m welcomeModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitByUser = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor == 0 {
			m.stage = welcomeStageWorking
			return m, m.cmdGenerate()
		}
		m.stage = welcomeStageRecover
		m.errMsg = ""
		m.tokenInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m welcomeModel) updateRecover(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stage = welcomeStageMenu
		m.errMsg = ""
		m.tokenInput.Blur()
		m.tokenInput.SetValue("")
		return m, nil
	case "enter":
		token := strings.TrimSpace(m.tokenInput.Value())
		if token == "" {
			m.errMsg = "enter your recovery code"
			return m, nil
		}
		m.stage = welcomeStageWorking
		return m, m.cmdRecover(token)
	}

	var cmd tea.Cmd
	m.tokenInput, cmd = m.tokenInput.Update(msg)
	return m, cmd
}

func (m welcomeModel) cmdGenerate() tea.Cmd {
	return func() tea.Msg {
		return identityReadyMsg{identity: m.session.GenerateIdentity(m.ctx)}
	}
}

func (m welcomeModel) cmdRecover(token string) tea.Cmd {
	return func() tea.Msg {
		identity, err := m.session.Recover(m.ctx, token)
		return identityReadyMsg{identity: identity, err: err}
	}
}

func (m welcomeModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Break Ledger"))
	b.WriteString("\n\n")

	switch m.stage {
	case welcomeStageMenu:
		b.WriteString("No identity on this device yet.\n\n")
		for i, item := range m.items {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s\n", cursor, item))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("up/down: move • enter: select • q: quit"))

	case welcomeStageRecover:
		b.WriteString("Paste the recovery code from your previous device:\n\n")
		b.WriteString(m.tokenInput.View())
		b.WriteString("\n\n")
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render(m.errMsg))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter: recover • esc: back"))

	case welcomeStageWorking:
		b.WriteString(dimStyle.Render("working..."))
	}

	return appStyle.Render(b.String())
}

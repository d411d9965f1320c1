package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarev/go-break-ledger/internal/config"
	"github.com/mkarev/go-break-ledger/internal/geo"
	"github.com/mkarev/go-break-ledger/internal/service"
	"github.com/mkarev/go-break-ledger/models"
)

type mainStage int

const (
	stageDashboard mainStage = iota
	stageRateForm
	stageLocationChoice
	stageManualCity
)

type (
	// tickMsg drives the one-second timer redraw.
	tickMsg time.Time

	// viewsLoadedMsg carries a fresh derived snapshot.
	viewsLoadedMsg struct {
		views models.DerivedViews
		err   error
	}

	// rateLoadedMsg carries the persisted rate on startup.
	rateLoadedMsg struct {
		rate float64
		ok   bool
	}

	// rateSavedMsg carries the outcome of a rate form submission.
	rateSavedMsg struct {
		hourly float64
		err    error
	}

	// submitDoneMsg carries the outcome of a break submission.
	submitDoneMsg struct {
		record models.LogRecord
		err    error
		// autoFailed marks a position acquisition failure: the pending break
		// is still held and the user falls back to manual city entry.
		autoFailed bool
	}

	// tokenCopiedMsg carries the outcome of a clipboard copy.
	tokenCopiedMsg struct {
		err error
	}
)

type mainLoopModel struct {
	ctx      context.Context
	session  service.ClientSessionService
	views    service.ClientViewsService
	viewsCfg config.ClientViews

	stage mainStage

	rate    float64
	hasRate bool

	snapshot     models.DerivedViews
	haveSnapshot bool
	showAll      bool

	rateInput  textinput.Model
	rateAnnual bool
	cityInput  textinput.Model

	submitting bool
	statusMsg  string
	errMsg     string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, viewsCfg config.ClientViews) mainLoopModel {
	rateInput := textinput.New()
	rateInput.Placeholder = "25.00"
	rateInput.CharLimit = 12
	rateInput.Width = 20

	cityInput := textinput.New()
	cityInput.Placeholder = "city"
	cityInput.CharLimit = 64
	cityInput.Width = 30

	return mainLoopModel{
		ctx:       ctx,
		session:   services.Session,
		views:     services.Views,
		viewsCfg:  viewsCfg,
		rateInput: rateInput,
		cityInput: cityInput,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadRate(), m.cmdRefreshViews(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// The tick doubles as the dashboard's pulse: elapsed time and
		// earnings are recomputed in View, and any snapshot the background
		// refresh job has derived since the last tick is picked up here.
		if views, ok := m.views.Cached(); ok {
			m.snapshot, m.haveSnapshot = views, true
		}
		return m, tickCmd()

	case rateLoadedMsg:
		m.rate, m.hasRate = msg.rate, msg.ok
		if !m.hasRate && m.stage == stageDashboard {
			m.stage = stageRateForm
			m.rateInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case viewsLoadedMsg:
		if msg.err != nil {
			m.errMsg = "refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.snapshot, m.haveSnapshot = msg.views, true
		return m, nil

	case rateSavedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.rate, m.hasRate = msg.hourly, true
		m.stage = stageDashboard
		m.errMsg = ""
		m.statusMsg = "rate saved: " + formatMoney(msg.hourly) + "/h"
		m.rateInput.Blur()
		m.rateInput.SetValue("")
		return m, nil

	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			if msg.autoFailed {
				m.stage = stageManualCity
				m.errMsg = "location unavailable, enter your city"
				m.cityInput.Focus()
				return m, textinput.Blink
			}
			m.stage = stageLocationChoice
			m.errMsg = "submit failed: " + msg.err.Error()
			return m, nil
		}
		m.stage = stageDashboard
		m.errMsg = ""
		m.statusMsg = "break logged: " + formatDuration(msg.record.Duration) +
			" for " + formatMoney(msg.record.Earnings)
		m.cityInput.Blur()
		m.cityInput.SetValue("")
		return m, m.cmdRefreshViews()

	case tokenCopiedMsg:
		if msg.err != nil {
			m.errMsg = "copy failed: " + msg.err.Error()
		} else {
			m.statusMsg = "recovery code copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m mainLoopModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.stage {
	case stageDashboard:
		return m.updateDashboard(msg)
	case stageRateForm:
		return m.updateRateForm(msg)
	case stageLocationChoice:
		return m.updateLocationChoice(msg)
	case stageManualCity:
		return m.updateManualCity(msg)
	}

	return m, nil
}

func (m mainLoopModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter", " ":
		return m.toggleBreak()

	case "r":
		m.stage = stageRateForm
		m.errMsg = ""
		m.rateInput.Focus()
		return m, textinput.Blink

	case "a":
		m.showAll = !m.showAll

	case "c":
		return m, m.cmdCopyToken()

	case "g":
		m.statusMsg = "refreshing..."
		return m, m.cmdRefreshViews()

	case "l":
		m.session.Logout(m.ctx)
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

// toggleBreak starts a break when idle, stops it when running and reopens the
// location prompt when a stopped break is still waiting to be submitted.
func (m mainLoopModel) toggleBreak() (tea.Model, tea.Cmd) {
	switch m.session.State() {
	case service.StateIdle:
		if err := m.session.StartBreak(m.ctx); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.statusMsg = ""

	case service.StateRunning:
		if _, err := m.session.StopBreak(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.stage = stageLocationChoice
		m.errMsg = ""

	case service.StateAwaitingLocation:
		m.stage = stageLocationChoice
	}

	return m, nil
}

func (m mainLoopModel) updateRateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.hasRate {
			m.stage = stageDashboard
			m.errMsg = ""
			m.rateInput.Blur()
			m.rateInput.SetValue("")
		}
		return m, nil

	case "tab":
		m.rateAnnual = !m.rateAnnual
		return m, nil

	case "enter":
		value, err := strconv.ParseFloat(strings.TrimSpace(m.rateInput.Value()), 64)
		if err != nil {
			m.errMsg = "enter a number"
			return m, nil
		}
		return m, m.cmdSaveRate(value, m.rateAnnual)
	}

	var cmd tea.Cmd
	m.rateInput, cmd = m.rateInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateLocationChoice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "a":
		m.submitting = true
		m.errMsg = ""
		return m, m.cmdSubmitAuto()

	case "m":
		m.stage = stageManualCity
		m.errMsg = ""
		m.cityInput.Focus()
		return m, textinput.Blink

	case "s":
		m.submitting = true
		m.errMsg = ""
		return m, m.cmdSubmitWithout()

	case "esc":
		// The stopped break stays pending; the dashboard shows a reminder.
		m.stage = stageDashboard
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) updateManualCity(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.stage = stageLocationChoice
		m.errMsg = ""
		m.cityInput.Blur()
		return m, nil

	case "enter":
		city := strings.TrimSpace(m.cityInput.Value())
		if city == "" {
			m.errMsg = "enter a city or go back"
			return m, nil
		}
		m.submitting = true
		m.errMsg = ""
		return m, m.cmdSubmitManual(city)
	}

	var cmd tea.Cmd
	m.cityInput, cmd = m.cityInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) cmdLoadRate() tea.Cmd {
	return func() tea.Msg {
		rate, ok := m.session.Rate(m.ctx)
		return rateLoadedMsg{rate: rate, ok: ok}
	}
}

func (m mainLoopModel) cmdRefreshViews() tea.Cmd {
	return func() tea.Msg {
		views, err := m.views.Refresh(m.ctx)
		return viewsLoadedMsg{views: views, err: err}
	}
}

func (m mainLoopModel) cmdSaveRate(value float64, annual bool) tea.Cmd {
	return func() tea.Msg {
		if annual {
			hourly, err := m.session.SaveAnnualRate(m.ctx, value)
			return rateSavedMsg{hourly: hourly, err: err}
		}
		return rateSavedMsg{hourly: value, err: m.session.SaveHourlyRate(m.ctx, value)}
	}
}

func (m mainLoopModel) cmdSubmitAuto() tea.Cmd {
	return func() tea.Msg {
		record, err := m.session.SubmitWithAutoLocation(m.ctx)
		return submitDoneMsg{
			record:     record,
			err:        err,
			autoFailed: errors.Is(err, geo.ErrPositionUnavailable),
		}
	}
}

func (m mainLoopModel) cmdSubmitManual(city string) tea.Cmd {
	return func() tea.Msg {
		record, err := m.session.SubmitWithManualCity(m.ctx, city)
		return submitDoneMsg{record: record, err: err}
	}
}

func (m mainLoopModel) cmdSubmitWithout() tea.Cmd {
	return func() tea.Msg {
		record, err := m.session.SubmitWithoutLocation(m.ctx)
		return submitDoneMsg{record: record, err: err}
	}
}

func (m mainLoopModel) cmdCopyToken() tea.Cmd {
	token := m.session.Identity().Token
	return func() tea.Msg {
		return tokenCopiedMsg{err: clipboard.WriteAll(token)}
	}
}

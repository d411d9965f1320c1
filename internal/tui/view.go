package tui

import (
	"fmt"
	"strings"

	"github.com/mkarev/go-break-ledger/internal/service"
	"github.com/mkarev/go-break-ledger/models"
)

func (m mainLoopModel) View() string {
	var b strings.Builder

	identity := m.session.Identity()
	b.WriteString(titleStyle.Render("Break Ledger"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(identity.Username))
	b.WriteString("\n\n")

	switch m.stage {
	case stageRateForm:
		b.WriteString(m.viewRateForm())
	case stageLocationChoice:
		b.WriteString(m.viewLocationChoice())
	case stageManualCity:
		b.WriteString(m.viewManualCity())
	default:
		b.WriteString(m.viewDashboard())
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	return appStyle.Render(b.String())
}

func (m mainLoopModel) viewDashboard() string {
	var b strings.Builder

	b.WriteString(m.viewTimer())
	b.WriteString("\n")
	b.WriteString(m.viewOwnLogs())
	b.WriteString("\n")
	b.WriteString(m.viewLeaderboards())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"enter: start/stop break • r: rate • a: show all • g: refresh • c: copy code • l: logout • q: quit"))

	return b.String()
}

func (m mainLoopModel) viewTimer() string {
	var b strings.Builder

	if m.hasRate {
		b.WriteString(fmt.Sprintf("Rate: %s/h\n", formatMoney(m.rate)))
	} else {
		b.WriteString(dimStyle.Render("No rate set, press r") + "\n")
	}

	switch m.session.State() {
	case service.StateRunning:
		elapsed := m.session.Elapsed()
		b.WriteString(fmt.Sprintf("On break: %s, earned %s so far\n",
			timerStyle.Render(formatDuration(elapsed)),
			earningsStyle.Render(formatMoney(models.RoundEarnings(m.rate, elapsed)))))
	case service.StateAwaitingLocation:
		b.WriteString(dimStyle.Render(
			fmt.Sprintf("Stopped break of %s awaits a location, press enter", formatDuration(m.session.Elapsed()))) + "\n")
	default:
		b.WriteString(dimStyle.Render("Not on a break") + "\n")
	}

	return b.String()
}

func (m mainLoopModel) viewOwnLogs() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Recent breaks"))
	b.WriteString("\n")

	if !m.haveSnapshot {
		b.WriteString(dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if len(m.snapshot.OwnLogs) == 0 {
		b.WriteString(dimStyle.Render("no breaks yet") + "\n")
		return b.String()
	}

	logs := m.snapshot.OwnLogs
	if !m.showAll && len(logs) > m.viewsCfg.DisplayLimit {
		logs = logs[:m.viewsCfg.DisplayLimit]
	}

	for _, record := range logs {
		city := record.City
		if city == "" {
			city = "somewhere"
		}
		b.WriteString(fmt.Sprintf("  %s  %8s  %10s  %s\n",
			formatTimestamp(record.Timestamp),
			formatDuration(record.Duration),
			formatMoney(record.Earnings),
			city))
	}

	if !m.showAll && len(m.snapshot.OwnLogs) > m.viewsCfg.DisplayLimit {
		b.WriteString(dimStyle.Render(
			fmt.Sprintf("  ...and %d more, press a", len(m.snapshot.OwnLogs)-m.viewsCfg.DisplayLimit)) + "\n")
	}

	return b.String()
}

func (m mainLoopModel) viewLeaderboards() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Longest breaks, everywhere"))
	b.WriteString("\n")
	b.WriteString(m.viewRanking(m.snapshot.GlobalTop))

	if m.snapshot.LastKnownCity != "" {
		b.WriteString(sectionStyle.Render("Longest breaks in " + m.snapshot.LastKnownCity))
		b.WriteString("\n")
		b.WriteString(m.viewRanking(m.snapshot.LocalTop))
	}

	return b.String()
}

func (m mainLoopModel) viewRanking(entries []models.LeaderboardEntry) string {
	if len(entries) == 0 {
		return dimStyle.Render("  nobody yet") + "\n"
	}

	var b strings.Builder
	for i, entry := range entries {
		marker := "  "
		if entry.Username == m.session.Identity().Username {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%2d. %-24s %8s  %10s\n",
			marker, i+1, entry.Username, formatDuration(entry.Duration), formatMoney(entry.Earnings)))
	}
	return b.String()
}

func (m mainLoopModel) viewRateForm() string {
	var b strings.Builder

	unit := "hourly rate"
	if m.rateAnnual {
		unit = "annual salary"
	}

	b.WriteString(fmt.Sprintf("Enter your %s:\n\n", unit))
	b.WriteString(m.rateInput.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: save • tab: hourly/annual • esc: back"))
	b.WriteString("\n")

	return b.String()
}

func (m mainLoopModel) viewLocationChoice() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Break of %s stopped. Attach a location?\n\n", formatDuration(m.session.Elapsed())))
	if m.submitting {
		b.WriteString(dimStyle.Render("submitting...") + "\n")
		return b.String()
	}
	b.WriteString("  a  use my position (coordinates are blurred before upload)\n")
	b.WriteString("  m  type a city\n")
	b.WriteString("  s  no location\n\n")
	b.WriteString(helpStyle.Render("esc: decide later"))
	b.WriteString("\n")

	return b.String()
}

func (m mainLoopModel) viewManualCity() string {
	var b strings.Builder

	b.WriteString("Which city was that break in?\n\n")
	b.WriteString(m.cityInput.View())
	b.WriteString("\n\n")
	if m.submitting {
		b.WriteString(dimStyle.Render("submitting...") + "\n")
		return b.String()
	}
	b.WriteString(helpStyle.Render("enter: submit • esc: back"))
	b.WriteString("\n")

	return b.String()
}

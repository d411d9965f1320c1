package tui

import (
	"fmt"
	"time"
)

// formatDuration renders whole seconds as mm:ss, growing to h:mm:ss past an
// hour.
func formatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// formatTimestamp renders a millisecond epoch timestamp in local time.
func formatTimestamp(millis int64) string {
	return time.UnixMilli(millis).Local().Format("Jan 02 15:04")
}

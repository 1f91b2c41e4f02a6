package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aerialops/snaptrigger/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	blockStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Width(22).
			Foreground(lipgloss.Color("245"))

	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	busyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	idleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// RenderStatus formats a statistics snapshot as the periodic console
// status block.
func RenderStatus(snap stats.Snapshot, outputDir string) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("FLIGHT CAPTURE STATUS"))
	sb.WriteString("\n")

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	row("Triggers received", fmt.Sprintf("%d", snap.TotalTriggers))
	row("Successful captures", fmt.Sprintf("%d", snap.SuccessfulCaptures))
	row("Failed captures", fmt.Sprintf("%d", snap.FailedCaptures))
	row("Success rate", rateStyle(snap).Render(fmt.Sprintf("%.1f%%", snap.SuccessRatePercent)))
	row("Current status", statusStyle(snap.CurrentStatus).Render(snap.CurrentStatus))
	row("Uptime", FormatUptime(snap.UptimeSeconds))
	row("Photo directory", outputDir)

	return blockStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// rateStyle colors the success rate: green above 90%, amber above 50%,
// red below. With no triggers yet the rate is neutral.
func rateStyle(snap stats.Snapshot) lipgloss.Style {
	if snap.TotalTriggers == 0 {
		return lipgloss.NewStyle()
	}
	switch {
	case snap.SuccessRatePercent >= 90:
		return goodStyle
	case snap.SuccessRatePercent >= 50:
		return warnStyle
	default:
		return badStyle
	}
}

// statusStyle colors the current status word.
func statusStyle(status string) lipgloss.Style {
	if status == stats.StatusCapturing {
		return busyStyle
	}
	return idleStyle
}

// FormatUptime renders a second count as HH:MM:SS.
func FormatUptime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

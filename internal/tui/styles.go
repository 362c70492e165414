package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/vita/internal/classify"
)

// Color constants — vita palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
	colorAlt    = lipgloss.Color("#0f172a")
)

// StyleHeader — full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleVitalCard — bordered card for the overview bar.
var StyleVitalCard = lipgloss.NewStyle().
	Background(colorAlt).
	Foreground(colorWhite).
	Padding(0, 1).
	Align(lipgloss.Center)

// Speaker labels in the transcript.
var (
	StyleUserLabel      = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleAssistantLabel = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	StyleNotice         = lipgloss.NewStyle().Foreground(colorRed)
)

// Structured-reply styles.
var (
	StyleReportTitle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	StyleCategory    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleMetricName  = lipgloss.NewStyle().Foreground(colorWhite)
)

// Utility styles.
var (
	StyleError = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(colorGray)
)

// Named color styles for status coloring.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(colorRed)
)

// MetricStatusStyle returns the style for a classified metric status.
func MetricStatusStyle(s classify.Status) lipgloss.Style {
	switch s {
	case classify.StatusWarning:
		return StyleYellow
	case classify.StatusCritical:
		return StyleRed
	default:
		return StyleGreen
	}
}

// metricStatusLabel is the short badge text shown next to a metric value.
func metricStatusLabel(s classify.Status) string {
	switch s {
	case classify.StatusWarning:
		return "WARN"
	case classify.StatusCritical:
		return "CRIT"
	default:
		return "OK"
	}
}

// VitalStatusStyle returns the style for a vital-sign status string as
// reported by the agent ("normal", "elevated", "deficient", ...). Anything
// other than normal is rendered as a warning.
func VitalStatusStyle(status string) lipgloss.Style {
	switch status {
	case "normal":
		return StyleGreen
	case "":
		return StyleDim
	default:
		return StyleYellow
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/vita/internal/format"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   user name (or "Connecting to <URL>..." before the overview lands)
//	center: colored "● CONNECTED" indicator (or "● DISCONNECTED  <error>")
//	right:  "Session: <short id>  Last: HH:MM:SS"
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	var left, center, right string

	if app.overview == nil {
		baseURL := ""
		if app.client != nil {
			baseURL = app.client.BaseURL()
		}
		left = "Connecting to " + baseURL + "..."
	} else {
		left = app.overview.Profile.Name
		if left == "" && app.client != nil {
			left = app.client.BaseURL()
		}
	}

	if app.connState == stateDisconnected {
		errDisplay := "● DISCONNECTED"
		if app.lastError != nil {
			errDisplay += "  " + format.Truncate(app.lastError.Error(), 40)
		}
		center = StyleError.Render(errDisplay)
	} else {
		center = StyleGreen.Bold(true).Render("● CONNECTED")
	}

	sessionID := ""
	if app.client != nil {
		sessionID = format.Truncate(app.client.SessionID(), 13)
	}
	lastStr := "--:--:--"
	if !app.lastReply.IsZero() {
		lastStr = format.Clock(app.lastReply)
	}
	right = StyleDim.Render(fmt.Sprintf("Session: %s  Last: %s", sessionID, lastStr))

	// Build row: left + padding + center + padding + right, filling innerWidth.
	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	spacing := innerWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/vita/internal/engine"
)

// renderOverviewBar renders the latest-vitals cards plus an abnormal blood
// test counter in a single horizontal row. Returns empty string when the
// overview has not arrived yet or the panel is toggled off.
func renderOverviewBar(app *App) string {
	if app.overview == nil || !app.showOverview {
		return ""
	}

	width := app.width
	if width <= 0 {
		width = 80
	}

	cards := app.vitalCards
	abnormal := engine.CountAbnormalResults(app.overview)

	total := len(cards) + 1 // + blood-test card
	cardWidth := (width - 2*total) / total
	if cardWidth < 12 {
		cardWidth = 12
	}

	rendered := make([]string, 0, total)
	for _, c := range cards {
		body := StyleDim.Render(c.Label) + "\n" +
			VitalStatusStyle(c.Status).Bold(true).Render(c.Value)
		rendered = append(rendered, StyleVitalCard.Width(cardWidth).Render(body))
	}

	testLabel := StyleDim.Render("Blood Tests")
	var testValue string
	if abnormal == 0 {
		testValue = StyleGreen.Bold(true).Render("all normal")
	} else {
		testValue = StyleYellow.Bold(true).Render(fmt.Sprintf("%d flagged", abnormal))
	}
	rendered = append(rendered, StyleVitalCard.Width(cardWidth).Render(testLabel+"\n"+testValue))

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

package tui

import (
	"strings"

	"github.com/dm/vita/internal/classify"
	"github.com/dm/vita/internal/format"
	"github.com/dm/vita/internal/model"
)

// renderTranscript renders all transcript messages, oldest first, separated
// by blank lines. The result is handed to the viewport for scrolling.
func renderTranscript(transcript *model.Transcript, width int) string {
	if transcript == nil || transcript.Len() == 0 {
		return StyleDim.Render("Ask the health assistant about your blood tests, vitals, or recommendations.")
	}

	msgs := transcript.Messages()
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, renderMessage(m, width))
	}
	return strings.Join(parts, "\n\n")
}

// renderMessage renders one transcript entry: a speaker line with timestamp,
// then the body. Assistant bodies are rendered by classification kind.
func renderMessage(m model.Message, width int) string {
	clock := format.Clock(m.SentAt)

	switch m.Role {
	case model.RoleUser:
		label := StyleUserLabel.Render("You")
		if clock != "" {
			label += StyleDim.Render("  " + clock)
		}
		return label + "\n" + format.Wrap(m.Content, width)

	case model.RoleAssistant:
		label := StyleAssistantLabel.Render("Assistant")
		if clock != "" {
			label += StyleDim.Render("  " + clock)
		}
		return label + "\n" + renderReply(m.Result, width)

	default: // model.RoleNotice
		return StyleNotice.Render(format.Wrap(m.Content, width))
	}
}

// renderReply renders a classified assistant reply.
func renderReply(res classify.Result, width int) string {
	switch res.Kind {
	case classify.KindMetrics:
		return renderMetricsReport(res.Report, width)
	case classify.KindRecommendations:
		return renderRecommendationSet(res.Recommendations, width)
	default:
		return format.Wrap(res.PlainText, width)
	}
}

// renderMetricsReport renders a metrics table: title, then one row per
// metric with a colored status badge.
func renderMetricsReport(r *classify.MetricsReport, width int) string {
	if r == nil {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	nameWidth := 0
	valueWidth := 0
	for _, m := range r.Metrics {
		if len(m.Name) > nameWidth {
			nameWidth = len(m.Name)
		}
		if len(m.Value) > valueWidth {
			valueWidth = len(m.Value)
		}
	}

	var b strings.Builder
	b.WriteString(StyleReportTitle.Render(format.Truncate(r.Title, width)))
	for _, m := range r.Metrics {
		b.WriteString("\n  ")
		b.WriteString(StyleMetricName.Render(pad(m.Name, nameWidth)))
		b.WriteString("  ")
		b.WriteString(pad(m.Value, valueWidth))
		b.WriteString("  ")
		b.WriteString(MetricStatusStyle(m.Status).Render(metricStatusLabel(m.Status)))
	}
	return b.String()
}

// renderRecommendationSet renders the summary line followed by each category
// with its bullet items.
func renderRecommendationSet(s *classify.RecommendationSet, width int) string {
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(format.Wrap(s.Summary, width))
	for _, g := range s.Groups {
		b.WriteString("\n\n")
		b.WriteString(StyleCategory.Render(g.Category))
		for _, item := range g.Items {
			b.WriteString("\n  • ")
			b.WriteString(item)
		}
	}
	return b.String()
}

// pad right-pads s with spaces to the given width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

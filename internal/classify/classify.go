// Package classify turns raw health-assistant prose into a tagged, structured
// result for rendering. The assistant returns free-form text; classification
// is a best-effort reconstruction of structure, and any parse failure degrades
// to the original text unmodified so no information is ever lost.
package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies which shape was detected in an assistant reply.
type Kind int

const (
	KindPlainText Kind = iota
	KindMetrics
	KindRecommendations
)

// Status is the qualitative reading attached to a single metric.
type Status int

const (
	StatusNormal Status = iota
	StatusWarning
	StatusCritical
)

// Metric is a single named health measurement extracted from a reply line.
type Metric struct {
	Name   string
	Value  string
	Status Status
}

// MetricsReport holds the metrics extracted from an analysis-style reply.
// Metrics is never empty when a report is produced.
type MetricsReport struct {
	Title   string
	Metrics []Metric
}

// RecommendationGroup is a named category with its suggestion items.
// Items is never empty when a group is produced.
type RecommendationGroup struct {
	Category string
	Items    []string
}

// RecommendationSet holds the categorized suggestions extracted from a
// recommendations-style reply. Groups is never empty when a set is produced.
type RecommendationSet struct {
	Summary string
	Groups  []RecommendationGroup
}

// Result is the tagged outcome of classifying one reply. Exactly one of the
// payload fields is populated, selected by Kind: PlainText for KindPlainText,
// Report for KindMetrics, Recommendations for KindRecommendations.
type Result struct {
	Kind            Kind
	PlainText       string
	Report          *MetricsReport
	Recommendations *RecommendationSet
}

// Trigger tokens and defaults. Kept as named constants so the detection
// behavior is auditable and testable independently of the UI.
const (
	triggerRecommendations = "recommendations" // matched case-insensitively
	triggerAnalysis        = "Analysis"        // matched case-sensitively

	defaultSummary = "Here are some recommendations:"
	defaultTitle   = "Health analysis"
)

// unitTriggers gate metrics detection at the whole-text level: one occurrence
// anywhere is enough, even when individual lines carry other units.
var unitTriggers = []string{"mg/dL", "mmHg"}

var (
	// reGroupBoundary marks the start of a numbered recommendation group:
	// a list marker followed immediately by an uppercase letter. Splitting on
	// it consumes the capital, which is harmless because items are collected
	// from bullet lines only.
	reGroupBoundary = regexp.MustCompile(`\d+\.\s+[A-Z]`)

	// reCategory extracts a group heading of the form "<n>. <Words>:".
	reCategory = regexp.MustCompile(`\d+\.\s+([A-Za-z][A-Za-z ]*):`)

	// reMetricLine matches one measurement line: optional bullet, label,
	// colon, numeric token (decimals and readings like 120/80 allowed),
	// unit token, optional parenthesized detail.
	reMetricLine = regexp.MustCompile(`^\s*(?:[-•]\s*)?([^:]+):\s+(\d+(?:[./]\d+)*\s*[A-Za-z/%]+)(?:\s*\(([^)]*)\))?`)
)

// Classify maps raw assistant text to a tagged Result. It is pure and total:
// it never fails, and any input that yields no extractable structure comes
// back as KindPlainText with the input verbatim.
//
// Rule priority is fixed: recommendations, then metrics, then plain text.
// When the recommendations trigger fires but extraction yields nothing, the
// text goes straight to plain text without trying the metrics rule.
func Classify(raw string) Result {
	if strings.Contains(strings.ToLower(raw), triggerRecommendations) {
		if set, ok := extractRecommendations(raw); ok {
			return Result{Kind: KindRecommendations, Recommendations: set}
		}
		return Result{Kind: KindPlainText, PlainText: raw}
	}

	if strings.Contains(raw, triggerAnalysis) && containsUnitTrigger(raw) {
		if report, ok := extractMetrics(raw); ok {
			return Result{Kind: KindMetrics, Report: report}
		}
	}

	return Result{Kind: KindPlainText, PlainText: raw}
}

// extractRecommendations splits raw on numbered-group boundaries and collects
// bullet items per group. Reports ok=false when no group keeps at least one
// item, so the caller can fall back to plain text.
func extractRecommendations(raw string) (*RecommendationSet, bool) {
	segments := reGroupBoundary.Split(raw, -1)
	if len(segments) < 2 {
		return nil, false
	}

	// One search against the whole text, reused for every segment. All
	// groups can therefore share the first heading's label; this mirrors
	// the reference behavior and is kept deliberately.
	heading := reCategory.FindStringSubmatch(raw)

	var groups []RecommendationGroup
	for i, body := range segments[1:] {
		category := ""
		if heading != nil {
			category = strings.TrimSpace(heading[1])
		} else {
			category = fmt.Sprintf("Recommendation %d", i+1)
		}

		items := bulletItems(body)
		if len(items) == 0 {
			continue
		}
		groups = append(groups, RecommendationGroup{Category: category, Items: items})
	}

	if len(groups) == 0 {
		return nil, false
	}

	summary := firstLine(raw)
	if summary == "" {
		summary = defaultSummary
	}
	return &RecommendationSet{Summary: summary, Groups: groups}, true
}

// bulletItems collects the bullet lines of a group body, in order. Markers
// and surrounding whitespace are stripped; lines that are empty after
// stripping are dropped.
func bulletItems(body string) []string {
	var items []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		var item string
		switch {
		case strings.HasPrefix(trimmed, "-"):
			item = strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
		case strings.HasPrefix(trimmed, "•"):
			item = strings.TrimSpace(strings.TrimPrefix(trimmed, "•"))
		default:
			continue
		}

		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// extractMetrics scans raw line by line for measurement lines. One metric per
// line: only the first match on a line is taken. Reports ok=false when no
// line matches.
func extractMetrics(raw string) (*MetricsReport, bool) {
	var metrics []Metric
	for _, line := range strings.Split(raw, "\n") {
		m := reMetricLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		metrics = append(metrics, Metric{
			Name:   strings.TrimSpace(m[1]),
			Value:  strings.TrimSpace(m[2]),
			Status: detailStatus(m[3]),
		})
	}

	if len(metrics) == 0 {
		return nil, false
	}

	title := firstLine(raw)
	if title == "" {
		title = defaultTitle
	}
	return &MetricsReport{Title: title, Metrics: metrics}, true
}

// detailStatus derives a metric status from its parenthesized detail clause.
// The keyword checks are independent substring tests over the lowercased
// clause, evaluated warning-first.
func detailStatus(detail string) Status {
	d := strings.ToLower(detail)
	if strings.Contains(d, "elevated") || strings.Contains(d, "high") {
		return StatusWarning
	}
	if strings.Contains(d, "critical") || strings.Contains(d, "severe") {
		return StatusCritical
	}
	return StatusNormal
}

// containsUnitTrigger reports whether any of the unit trigger substrings
// appears anywhere in raw.
func containsUnitTrigger(raw string) bool {
	for _, u := range unitTriggers {
		if strings.Contains(raw, u) {
			return true
		}
	}
	return false
}

// firstLine returns the trimmed first line of raw.
func firstLine(raw string) string {
	line := raw
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		line = raw[:i]
	}
	return strings.TrimSpace(line)
}

package formatters

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"
)

// SegmentFormatter formats segment text for a given detail level.
type SegmentFormatter func(text string, detailLevel string) string

// summaryWidth is the number of runes kept per segment in summary detail.
const summaryWidth = 120

// FormatOffset renders a position in seconds as "M:SS", or "H:MM:SS" past
// the hour. Negative values render as zero.
func FormatOffset(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(seconds)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatDuration renders a duration in seconds as e.g. "1h 02m", "12m 05s"
// or "42s". A nil duration renders as "-".
func FormatDuration(seconds *float64) string {
	if seconds == nil {
		return "-"
	}
	total := int(math.Round(*seconds))
	if total < 0 {
		total = 0
	}
	h, m, s := total/3600, (total%3600)/60, total%60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatSegmentText shortens text to a single line in summary detail and
// returns it unchanged in full detail.
func FormatSegmentText(text string, detailLevel string) string {
	if detailLevel == "full" {
		return text
	}
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= summaryWidth {
		return text
	}
	return string(runes[:summaryWidth-1]) + "…"
}

// FormatActionItems renders action items as a checklist.
func FormatActionItems(items []string) string {
	var checklist strings.Builder
	if len(items) == 0 {
		checklist.WriteString(fmt.Sprintf("%s No action items found\n", theme.IconChecklist))
		return checklist.String()
	}
	checklist.WriteString(fmt.Sprintf("%s Action Items (%d):\n", theme.IconChecklist, len(items)))
	for _, item := range items {
		checklist.WriteString(fmt.Sprintf("  [ ] %s\n", item))
	}
	return checklist.String()
}

// FormatAttendees renders attendee names as a bulleted list.
func FormatAttendees(names []string) string {
	var output strings.Builder
	nameStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Yellow)

	output.WriteString(fmt.Sprintf("%s Attendees (%d):\n", theme.IconChevron, len(names)))
	for _, name := range names {
		output.WriteString(fmt.Sprintf("  • %s\n", nameStyle.Render(name)))
	}
	return output.String()
}

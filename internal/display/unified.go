package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"

	"github.com/grovetools/meetlogs/internal/formatters"
	"github.com/grovetools/meetlogs/internal/transcript"
)

// Formatting constants for output
const (
	treeChar = "⎿" // Tree connector for continuation lines
)

// Options control how a transcript is rendered.
type Options struct {
	DetailLevel    string
	ShowTimestamps bool
	// MaxSegments limits output to the last N segments; zero shows all.
	MaxSegments    int
	Formatter      formatters.SegmentFormatter
}

// speakerPalette assigns colors to speakers in order of first appearance.
var speakerPalette = []lipgloss.TerminalColor{
	theme.DefaultColors.Yellow,
	theme.DefaultColors.Green,
	theme.DefaultColors.Violet,
	theme.DefaultColors.Red,
}

// RenderTranscript writes a metadata header followed by one line per segment.
// Consecutive segments by the same speaker are grouped under one label.
func RenderTranscript(w io.Writer, t *transcript.NormalizedTranscript, opts Options) {
	mutedStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)
	textStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.LightText)
	tree := mutedStyle.Render(treeChar)

	format := opts.Formatter
	if format == nil {
		format = formatters.FormatSegmentText
	}

	fmt.Fprintln(w, RenderHeader(t))
	fmt.Fprintln(w)

	segments := t.Segments
	if opts.MaxSegments > 0 && len(segments) > opts.MaxSegments {
		skipped := len(segments) - opts.MaxSegments
		segments = segments[skipped:]
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("... (%d earlier segments)", skipped)))
		fmt.Fprintln(w)
	}

	styles := speakerStyles(t)
	lastSpeaker := ""
	for i, seg := range segments {
		text := format(seg.Text, opts.DetailLevel)

		var prefix string
		if opts.ShowTimestamps && seg.StartTime != nil {
			prefix = mutedStyle.Render("["+formatters.FormatOffset(*seg.StartTime)+"]") + " "
		}

		if seg.Speaker != "" && (i == 0 || seg.Speaker != lastSpeaker) {
			fmt.Fprintf(w, "%s%s %s\n", prefix, styles[seg.Speaker].Render(theme.IconChevron+" "+seg.Speaker), textStyle.Render(firstLine(text)))
		} else if seg.Speaker != "" {
			fmt.Fprintf(w, "%s  %s  %s\n", prefix, tree, textStyle.Render(firstLine(text)))
		} else {
			fmt.Fprintf(w, "%s%s\n", prefix, textStyle.Render(firstLine(text)))
		}
		for _, line := range restLines(text) {
			fmt.Fprintf(w, "     %s\n", line)
		}
		lastSpeaker = seg.Speaker
	}
}

// RenderHeader summarizes transcript metadata on one line.
func RenderHeader(t *transcript.NormalizedTranscript) string {
	mutedStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)
	md := t.Metadata

	parts := []string{
		fmt.Sprintf("format: %s", md.Format),
		fmt.Sprintf("source: %s", md.Source),
		fmt.Sprintf("speakers: %d", md.SpeakerCount),
		fmt.Sprintf("segments: %d", len(t.Segments)),
	}
	if md.TotalDuration != nil {
		parts = append(parts, fmt.Sprintf("duration: %s", formatters.FormatDuration(md.TotalDuration)))
	}
	return fmt.Sprintf("%s %s", theme.IconFile, mutedStyle.Render(strings.Join(parts, " · ")))
}

func speakerStyles(t *transcript.NormalizedTranscript) map[string]lipgloss.Style {
	styles := make(map[string]lipgloss.Style, len(t.Speakers))
	for i, s := range t.Speakers {
		styles[s.ID] = lipgloss.NewStyle().Bold(true).Foreground(speakerPalette[i%len(speakerPalette)])
	}
	return styles
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}

func restLines(text string) []string {
	_, rest, ok := strings.Cut(text, "\n")
	if !ok {
		return nil
	}
	return strings.Split(rest, "\n")
}

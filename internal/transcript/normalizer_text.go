package transcript

import (
	"regexp"
	"strings"
)

var (
	lineTimestampPattern = regexp.MustCompile(`^[\[(](\d{1,2}:\d{2}:\d{2})[\])]\s*`)
	lineLabelPattern     = regexp.MustCompile(`^([^:]{1,50}):\s*(.+)$`)
)

// TextNormalizer parses diarized plain text, one segment per non-blank line.
type TextNormalizer struct {
	hint Source
}

// NewTextNormalizer creates a text normalizer. An empty hint means the source
// is detected from content.
func NewTextNormalizer(hint Source) *TextNormalizer {
	return &TextNormalizer{hint: hint}
}

// Format returns FormatText.
func (n *TextNormalizer) Format() Format {
	return FormatText
}

// Normalize parses content as diarized text. It never returns an error.
func (n *TextNormalizer) Normalize(content string) (*NormalizedTranscript, error) {
	return ParseText(content, n.hint), nil
}

// ParseText parses "[H:MM:SS] Name: text" style lines. Both the timestamp and
// the label are optional; a label is only taken as a speaker when it passes
// the speaker name rules.
func ParseText(content string, hint Source) *NormalizedTranscript {
	source := hint
	if source == "" {
		source = DetectSource(content)
	}
	b := newBuilder(FormatText, source)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.add(parseTextLine(line), "")
	}

	return b.build()
}

func parseTextLine(line string) Segment {
	var seg Segment

	if m := lineTimestampPattern.FindStringSubmatch(line); m != nil {
		seg.StartTime = Float(ParseClockTimestamp(m[1]))
		line = strings.TrimSpace(line[len(m[0]):])
	}

	if m := lineLabelPattern.FindStringSubmatch(line); m != nil {
		label := strings.TrimSpace(m[1])
		if IsSpeakerName(label) {
			seg.Speaker = label
			seg.Text = strings.TrimSpace(m[2])
			return seg
		}
	}

	seg.Text = line
	return seg
}

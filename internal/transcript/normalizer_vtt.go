package transcript

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	vttHeader = "WEBVTT"
	cueArrow  = "-->"
)

var (
	blankLinePattern = regexp.MustCompile(`\n[ \t]*\n`)
	cueIndexPattern  = regexp.MustCompile(`^\d+$`)
	// <v Alice>Hello</v>, <v.loud Alice>Hello, with the closing tag optional.
	voiceTagPattern = regexp.MustCompile(`<v(?:\.[^\s>]+)*\s+([^>]+)>(.*?)(?:</v>|$)`)
	cueLabelPattern = regexp.MustCompile(`^([^:]+):\s*(.+)$`)
)

// Block prefixes that carry container metadata rather than cues.
var vttMetadataPrefixes = []string{vttHeader, "NOTE", "STYLE", "REGION"}

// VTTNormalizer parses WebVTT caption exports.
type VTTNormalizer struct{}

// NewVTTNormalizer creates a new WebVTT normalizer.
func NewVTTNormalizer() *VTTNormalizer {
	return &VTTNormalizer{}
}

// Format returns FormatVTT.
func (n *VTTNormalizer) Format() Format {
	return FormatVTT
}

// Normalize parses content as WebVTT. It never returns an error.
func (n *VTTNormalizer) Normalize(content string) (*NormalizedTranscript, error) {
	return ParseVTT(content), nil
}

// ParseVTT splits content into blank-line separated cue blocks and emits one
// segment per timed block with non-empty text.
func ParseVTT(content string) *NormalizedTranscript {
	b := newBuilder(FormatVTT, DetectSource(content))

	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	for _, block := range blankLinePattern.Split(normalized, -1) {
		block = strings.Trim(block, "\n")
		if strings.TrimSpace(block) == "" {
			continue
		}
		if seg, ok := parseCueBlock(strings.Split(block, "\n")); ok {
			b.add(seg, "")
		}
	}

	return b.build()
}

func parseCueBlock(lines []string) (Segment, bool) {
	first := strings.TrimSpace(lines[0])
	for _, prefix := range vttMetadataPrefixes {
		if strings.HasPrefix(first, prefix) {
			return Segment{}, false
		}
	}

	arrowIdx := -1
	for i, line := range lines {
		if strings.Contains(line, cueArrow) {
			arrowIdx = i
			break
		}
	}
	if arrowIdx == -1 {
		return Segment{}, false
	}

	startRaw, endRaw, _ := strings.Cut(lines[arrowIdx], cueArrow)
	start := ParseCueTimestamp(startRaw)
	// Cue settings such as "align:start" follow the end timestamp.
	endFields := strings.Fields(endRaw)
	end := 0.0
	if len(endFields) > 0 {
		end = ParseCueTimestamp(endFields[0])
	}

	var textLines []string
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if i == arrowIdx || line == "" || cueIndexPattern.MatchString(line) {
			continue
		}
		textLines = append(textLines, line)
	}
	text := strings.Join(textLines, " ")

	seg := Segment{StartTime: Float(start), EndTime: Float(end)}
	if m := voiceTagPattern.FindStringSubmatch(text); m != nil {
		seg.Speaker = strings.TrimSpace(m[1])
		seg.Text = strings.TrimSpace(m[2])
	} else if m := cueLabelPattern.FindStringSubmatch(text); m != nil && utf8.RuneCountInString(m[1]) < 50 {
		seg.Speaker = strings.TrimSpace(m[1])
		seg.Text = strings.TrimSpace(m[2])
	} else {
		seg.Text = strings.TrimSpace(text)
	}

	if seg.Text == "" {
		return Segment{}, false
	}
	return seg, true
}

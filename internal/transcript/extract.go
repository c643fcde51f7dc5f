package transcript

import (
	"regexp"
	"strings"
)

// PatternRule is a named, case-insensitive pattern.
type PatternRule struct {
	ID      string
	Pattern *regexp.Regexp
}

// ActionItemRules detect action intent in a segment.
var ActionItemRules = []PatternRule{
	{ID: "action-item", Pattern: regexp.MustCompile(`(?i)\baction items?\b`)},
	{ID: "todo", Pattern: regexp.MustCompile(`(?i)\bto-?do\b`)},
	{ID: "follow-up", Pattern: regexp.MustCompile(`(?i)\bfollow[- ]?up\b`)},
	{ID: "will-send", Pattern: regexp.MustCompile(`(?i)\bwill send\b`)},
	{ID: "need-to", Pattern: regexp.MustCompile(`(?i)\bneeds? to\b`)},
	{ID: "should", Pattern: regexp.MustCompile(`(?i)\bshould\b`)},
	{ID: "must", Pattern: regexp.MustCompile(`(?i)\bmust\b`)},
	{ID: "next-step", Pattern: regexp.MustCompile(`(?i)\bnext steps?\b`)},
	{ID: "deadline", Pattern: regexp.MustCompile(`(?i)\bdeadline\b`)},
	{ID: "assigned-to", Pattern: regexp.MustCompile(`(?i)\bassign(?:ed)? to\b`)},
	{ID: "will-commit", Pattern: regexp.MustCompile(`(?i)\bwill (?:schedule|share|get back|circle back)\b`)},
}

// AttendeeLineRules find lines that list who attended.
var AttendeeLineRules = []PatternRule{
	{ID: "attendees", Pattern: regexp.MustCompile(`(?i)\battendees\s*:\s*(.+)`)},
	{ID: "participants", Pattern: regexp.MustCompile(`(?i)\bparticipants\s*:\s*(.+)`)},
	{ID: "present", Pattern: regexp.MustCompile(`(?i)\bpresent\s*:\s*(.+)`)},
}

var attendeeSeparator = regexp.MustCompile(`(?i)\s*(?:[,;]|\band\b)\s*`)

// MatchActionItem returns the ID of the first action rule matching text.
func MatchActionItem(text string) (string, bool) {
	for _, rule := range ActionItemRules {
		if rule.Pattern.MatchString(text) {
			return rule.ID, true
		}
	}
	return "", false
}

// ExtractActionItems returns, in order, the text of every segment expressing
// action intent. Each matching segment contributes its text once.
func ExtractActionItems(segments []Segment) []string {
	items := make([]string, 0)
	for _, seg := range segments {
		if _, ok := MatchActionItem(seg.Text); ok {
			items = append(items, seg.Text)
		}
	}
	return items
}

// ExtractAttendees returns speaker names followed by names listed on
// "Attendees:", "Participants:" or "Present:" lines, de-duplicated by exact
// string in first-seen order.
func ExtractAttendees(t *NormalizedTranscript) []string {
	seen := make(map[string]bool)
	attendees := make([]string, 0)
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		attendees = append(attendees, name)
	}

	if t == nil {
		return attendees
	}

	for _, s := range t.Speakers {
		add(s.Name)
	}

	for _, line := range transcriptLines(t) {
		for _, rule := range AttendeeLineRules {
			m := rule.Pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			for _, token := range attendeeSeparator.Split(m[1], -1) {
				token = strings.Trim(strings.TrimSpace(token), ".")
				if len([]rune(token)) > 2 {
					add(token)
				}
			}
			break
		}
	}

	return attendees
}

// transcriptLines recovers the line structure of t.Text: each segment text
// split on newlines, in segment order.
func transcriptLines(t *NormalizedTranscript) []string {
	if len(t.Segments) == 0 {
		if t.Text == "" {
			return nil
		}
		return strings.Split(t.Text, "\n")
	}
	var lines []string
	for _, seg := range t.Segments {
		lines = append(lines, strings.Split(seg.Text, "\n")...)
	}
	return lines
}

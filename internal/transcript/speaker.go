package transcript

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SpeakerRule is one named check in the speaker name validator.
type SpeakerRule struct {
	ID    string
	Check func(name string) bool // true when the name passes
}

var (
	sentenceStarterPattern = regexp.MustCompile(`(?i)^(?:the|a|an|this|that|these|those|it|its|we|they|i|you|he|she|there|here|our|my|your|so|and|but|or|if|when|what|why|how|also|just|then)\b`)
	headerKeywordPattern   = regexp.MustCompile(`(?i)^(?:attendees|participants|present|agenda|date|time|subject|location|action items?|notes)$`)
)

// SpeakerRules is applied in order; the first failing rule rejects the name.
var SpeakerRules = []SpeakerRule{
	{ID: "length", Check: func(name string) bool {
		n := utf8.RuneCountInString(name)
		return n >= 2 && n <= 50
	}},
	{ID: "punctuation", Check: func(name string) bool {
		return !strings.ContainsAny(name, ".!?")
	}},
	{ID: "shouting", Check: func(name string) bool {
		return utf8.RuneCountInString(name) <= 5 || !isUpperCase(name)
	}},
	{ID: "sentence-starter", Check: func(name string) bool {
		return !sentenceStarterPattern.MatchString(name)
	}},
	{ID: "header-keyword", Check: func(name string) bool {
		return !headerKeywordPattern.MatchString(strings.TrimSpace(name))
	}},
}

// ValidateSpeakerName reports whether name looks like a speaker label rather
// than the start of a sentence. When it does not, rule is the ID of the first
// rule that rejected it.
func ValidateSpeakerName(name string) (ok bool, rule string) {
	for _, r := range SpeakerRules {
		if !r.Check(name) {
			return false, r.ID
		}
	}
	return true, ""
}

// IsSpeakerName is ValidateSpeakerName without the rule ID.
func IsSpeakerName(name string) bool {
	ok, _ := ValidateSpeakerName(name)
	return ok
}

// isUpperCase is true when s has at least one letter and no lower-case letters.
func isUpperCase(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

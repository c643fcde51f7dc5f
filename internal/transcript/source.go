package transcript

import "strings"

// SourceRule maps content markers to a platform.
type SourceRule struct {
	Source  Source
	Markers []string // lower-case substrings
}

// SourceRules is evaluated in order; the first rule with a matching marker wins.
var SourceRules = []SourceRule{
	{Source: SourceTeams, Markers: []string{"microsoft teams", "teams.microsoft.com", "teams", "<v "}},
	{Source: SourceZoom, Markers: []string{"zoom.us", "zoom"}},
	{Source: SourceGoogleMeet, Markers: []string{"meet.google.com", "google meet"}},
}

// DetectSource infers the originating platform from content keywords,
// independently of the transcript format.
func DetectSource(content string) Source {
	lower := strings.ToLower(content)
	for _, rule := range SourceRules {
		for _, marker := range rule.Markers {
			if strings.Contains(lower, marker) {
				return rule.Source
			}
		}
	}
	return SourceUnknown
}

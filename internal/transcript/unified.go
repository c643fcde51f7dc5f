// Package transcript normalizes meeting transcripts from heterogeneous sources
// (WebVTT caption exports, diarized plain-text notes, structured JSON exports)
// into a single NormalizedTranscript.
package transcript

// Format identifies which parser produced a transcript.
type Format string

const (
	FormatVTT  Format = "vtt"  // cue-based caption export
	FormatText Format = "text" // diarized plain text
	FormatJSON Format = "json" // structured export
)

// Source is the platform a transcript was inferred to come from.
type Source string

const (
	SourceTeams      Source = "teams"
	SourceZoom       Source = "zoom"
	SourceGoogleMeet Source = "google_meet"
	SourceUnknown    Source = "unknown"
)

// NormalizedTranscript is the canonical representation produced by every parser.
type NormalizedTranscript struct {
	Text     string    `json:"text" yaml:"text"`         // segment texts joined by a single space
	Segments []Segment `json:"segments" yaml:"segments"` // source order, never sorted
	Speakers []Speaker `json:"speakers" yaml:"speakers"` // first-seen order
	Metadata Metadata  `json:"metadata" yaml:"metadata"`
}

// Segment is one attributed utterance.
type Segment struct {
	Speaker    string   `json:"speaker,omitempty" yaml:"speaker,omitempty"` // raw label
	Text       string   `json:"text" yaml:"text"`
	StartTime  *float64 `json:"startTime,omitempty" yaml:"startTime,omitempty"` // seconds
	EndTime    *float64 `json:"endTime,omitempty" yaml:"endTime,omitempty"`     // seconds
	Confidence *float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

// Speaker is keyed by the exact raw label; labels differing only in case or
// whitespace are distinct speakers.
type Speaker struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Email        string `json:"email,omitempty" yaml:"email,omitempty"`
	SegmentCount int    `json:"segmentCount" yaml:"segmentCount"`
}

// Metadata is derived from the segments and the raw content.
type Metadata struct {
	Format        Format   `json:"format" yaml:"format"`
	Source        Source   `json:"source" yaml:"source"`
	TotalDuration *float64 `json:"totalDuration,omitempty" yaml:"totalDuration,omitempty"` // end time of the last segment
	SpeakerCount  int      `json:"speakerCount" yaml:"speakerCount"`
	HasTimestamps bool     `json:"hasTimestamps" yaml:"hasTimestamps"`
}

// Speaker looks up a speaker by its raw label.
func (t *NormalizedTranscript) Speaker(id string) (Speaker, bool) {
	for _, s := range t.Speakers {
		if s.ID == id {
			return s, true
		}
	}
	return Speaker{}, false
}

// IsEmpty reports whether no segment was produced.
func (t *NormalizedTranscript) IsEmpty() bool {
	return len(t.Segments) == 0
}

// Float returns a pointer to v, for optional numeric fields.
func Float(v float64) *float64 {
	return &v
}

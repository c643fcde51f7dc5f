// Package meetlogs normalizes meeting transcripts exported by conferencing
// tools into a single speaker-attributed model.
package meetlogs

import (
	"errors"
	"io"

	"github.com/grovetools/meetlogs/internal/ingest"
	"github.com/grovetools/meetlogs/internal/transcript"
)

// Type aliases for the normalized model.
type (
	NormalizedTranscript = transcript.NormalizedTranscript
	Segment              = transcript.Segment
	Speaker              = transcript.Speaker
	Metadata             = transcript.Metadata
	Format               = transcript.Format
	Source               = transcript.Source
	MalformedInputError  = transcript.MalformedInputError
)

const (
	FormatVTT  = transcript.FormatVTT
	FormatText = transcript.FormatText
	FormatJSON = transcript.FormatJSON

	SourceTeams      = transcript.SourceTeams
	SourceZoom       = transcript.SourceZoom
	SourceGoogleMeet = transcript.SourceGoogleMeet
	SourceUnknown    = transcript.SourceUnknown
)

// ErrMalformedInput is returned by ParseJSON for content that is not a
// structured transcript.
var ErrMalformedInput = transcript.ErrMalformedInput

// ErrTooLarge is returned by the loaders when content exceeds the size limit.
var ErrTooLarge = ingest.ErrTooLarge

// Normalize detects the format of content and parses it. It never fails.
func Normalize(content string) *NormalizedTranscript {
	return transcript.Normalize(content)
}

// DetectFormat returns the parser Normalize tries first for content.
func DetectFormat(content string) Format {
	return transcript.DetectFormat(content)
}

// DetectSource guesses the conferencing platform that produced content.
func DetectSource(content string) Source {
	return transcript.DetectSource(content)
}

// ParseVTT parses WebVTT captions.
func ParseVTT(content string) *NormalizedTranscript {
	return transcript.ParseVTT(content)
}

// ParseText parses diarized plain text. An empty hint detects the source.
func ParseText(content string, hint Source) *NormalizedTranscript {
	return transcript.ParseText(content, hint)
}

// ParseJSON parses a structured JSON export.
func ParseJSON(content string) (*NormalizedTranscript, error) {
	return transcript.ParseJSON(content)
}

// ExtractActionItems returns the text of segments expressing action intent.
func ExtractActionItems(segments []Segment) []string {
	return transcript.ExtractActionItems(segments)
}

// ExtractAttendees returns speaker names and names from attendee lines.
func ExtractAttendees(t *NormalizedTranscript) []string {
	return transcript.ExtractAttendees(t)
}

// IsMalformedInput reports whether err was caused by malformed structured input.
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// LoadFile reads and normalizes the transcript at path.
func LoadFile(path string) (*NormalizedTranscript, error) {
	return ingest.NewLoader(0).LoadFile(path)
}

// LoadReader reads and normalizes a transcript from r.
func LoadReader(r io.Reader) (*NormalizedTranscript, error) {
	return ingest.NewLoader(0).LoadReader(r)
}

package transcript

import (
	"errors"
	"strings"

	"github.com/grovetools/core/logging"
)

var log = logging.NewLogger("meetlogs.transcript")

// Normalizer converts one transcript format to a NormalizedTranscript.
type Normalizer interface {
	// Normalize parses the full content. Only the JSON normalizer returns an
	// error, and only one wrapping ErrMalformedInput.
	Normalize(content string) (*NormalizedTranscript, error)

	// Format returns the format this normalizer handles.
	Format() Format
}

// Recognizer pairs a format check with the normalizer that handles it.
type Recognizer struct {
	Format     Format
	Recognize  func(content string) bool
	Normalizer Normalizer
}

// Recognizers is the dispatch table, evaluated in order; the first recognizer
// whose check passes handles the content. The last entry always matches.
var Recognizers = []Recognizer{
	{Format: FormatVTT, Recognize: recognizeVTT, Normalizer: NewVTTNormalizer()},
	{Format: FormatJSON, Recognize: recognizeJSON, Normalizer: NewJSONNormalizer()},
	{Format: FormatText, Recognize: recognizeText, Normalizer: NewTextNormalizer("")},
}

// recognizeVTT also matches prose that merely contains an arrow.
func recognizeVTT(content string) bool {
	return strings.Contains(content, vttHeader) || strings.Contains(content, cueArrow)
}

func recognizeJSON(content string) bool {
	trimmed := strings.TrimSpace(content)
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

func recognizeText(string) bool {
	return true
}

// DetectFormat returns the format the dispatcher would try first for content.
// It does not validate JSON, so malformed JSON-looking content reports FormatJSON
// even though Normalize would fall back to text parsing.
func DetectFormat(content string) Format {
	for _, r := range Recognizers {
		if r.Recognize(content) {
			return r.Format
		}
	}
	return FormatText
}

// Normalize auto-detects the format of content and parses it. It never fails:
// structured content that cannot be deserialized is parsed as diarized text.
func Normalize(content string) *NormalizedTranscript {
	for _, r := range Recognizers {
		if !r.Recognize(content) {
			continue
		}
		result, err := r.Normalizer.Normalize(content)
		if err != nil {
			if errors.Is(err, ErrMalformedInput) {
				log.WithError(err).WithField("format", r.Format).Debug("Falling back to text parsing")
				continue
			}
			log.WithError(err).WithField("format", r.Format).Warn("Unexpected normalizer error")
			continue
		}
		return result
	}
	return ParseText(content, "")
}

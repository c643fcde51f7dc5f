package transcript

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// jsonEntry holds every accepted alias of an entry field. Values stay untyped
// until coercion because exporters disagree on strings versus numbers.
type jsonEntry struct {
	Speaker      interface{} `mapstructure:"speaker"`
	SpeakerName  interface{} `mapstructure:"speaker_name"`
	Text         interface{} `mapstructure:"text"`
	Content      interface{} `mapstructure:"content"`
	StartTime    interface{} `mapstructure:"start_time"`
	StartCamel   interface{} `mapstructure:"startTime"`
	Start        interface{} `mapstructure:"start"`
	EndTime      interface{} `mapstructure:"end_time"`
	EndCamel     interface{} `mapstructure:"endTime"`
	End          interface{} `mapstructure:"end"`
	Confidence   interface{} `mapstructure:"confidence"`
	Email        interface{} `mapstructure:"email"`
	SpeakerEmail interface{} `mapstructure:"speaker_email"`
}

// JSONNormalizer parses structured JSON exports.
type JSONNormalizer struct{}

// NewJSONNormalizer creates a new JSON normalizer.
func NewJSONNormalizer() *JSONNormalizer {
	return &JSONNormalizer{}
}

// Format returns FormatJSON.
func (n *JSONNormalizer) Format() Format {
	return FormatJSON
}

// Normalize parses content as a structured export.
func (n *JSONNormalizer) Normalize(content string) (*NormalizedTranscript, error) {
	return ParseJSON(content)
}

// ParseJSON parses an object with a "transcript" or "segments" array, or a bare
// array of entries. Content that cannot be deserialized into that shape returns
// an error matching ErrMalformedInput. An object without either key yields an
// empty transcript.
func ParseJSON(content string) (*NormalizedTranscript, error) {
	var raw interface{}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, malformed("invalid JSON", err)
	}

	entries, err := jsonEntries(raw)
	if err != nil {
		return nil, err
	}

	b := newBuilder(FormatJSON, DetectSource(content))
	for i, item := range entries {
		fields, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		var entry jsonEntry
		if err := mapstructure.Decode(fields, &entry); err != nil {
			log.WithError(err).WithField("entry", i).Debug("Skipping undecodable entry")
			continue
		}
		seg, email := entry.segment()
		b.add(seg, email)
	}

	return b.build(), nil
}

func jsonEntries(raw interface{}) ([]interface{}, error) {
	switch v := raw.(type) {
	case []interface{}:
		return v, nil
	case map[string]interface{}:
		for _, key := range []string{"transcript", "segments"} {
			field, ok := v[key]
			if !ok || field == nil {
				continue
			}
			list, ok := field.([]interface{})
			if !ok {
				return nil, malformed(fmt.Sprintf("%q is not an array", key), nil)
			}
			return list, nil
		}
		return nil, nil
	default:
		return nil, malformed(fmt.Sprintf("unexpected top-level %T", raw), nil)
	}
}

func (e jsonEntry) segment() (Segment, string) {
	seg := Segment{
		Speaker:    firstString(e.Speaker, e.SpeakerName),
		Text:       firstString(e.Text, e.Content),
		StartTime:  firstFloat(e.StartTime, e.StartCamel, e.Start),
		EndTime:    firstFloat(e.EndTime, e.EndCamel, e.End),
		Confidence: firstFloat(e.Confidence),
	}
	return seg, strings.TrimSpace(firstString(e.Email, e.SpeakerEmail))
}

// firstString returns the first value that coerces to a non-blank string.
func firstString(values ...interface{}) string {
	for _, v := range values {
		if v == nil {
			continue
		}
		switch v.(type) {
		case map[string]interface{}, []interface{}:
			continue
		}
		s, err := cast.ToStringE(v)
		if err == nil && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// firstFloat returns the first value that coerces to a number, or nil.
func firstFloat(values ...interface{}) *float64 {
	for _, v := range values {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}
		f, err := cast.ToFloat64E(v)
		if err == nil {
			return Float(f)
		}
	}
	return nil
}

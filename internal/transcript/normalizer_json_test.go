package transcript

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zoomExport = `{
  "meeting": "Quarterly review",
  "join_url": "https://zoom.us/j/555",
  "transcript": [
    {"speaker": "Dana", "text": "Let's start.", "start_time": "0.5", "end_time": "2.25", "confidence": 0.93},
    {"speaker_name": "Eli", "content": "Sure thing", "startTime": 3, "endTime": "4.5", "email": "eli@example.com"},
    {"speaker": "Dana", "text": "   "},
    {"speaker": 7, "text": "numeric speaker id", "start": 5},
    "not an entry",
    {"text": "no speaker", "start_time": "n/a", "end_time": 9}
  ]
}`

func TestParseJSON_ZoomExport(t *testing.T) {
	got, err := ParseJSON(zoomExport)
	require.NoError(t, err)

	require.Len(t, got.Segments, 4)

	first := got.Segments[0]
	assert.Equal(t, "Dana", first.Speaker)
	assert.Equal(t, "Let's start.", first.Text)
	assert.Equal(t, 0.5, *first.StartTime)
	assert.Equal(t, 2.25, *first.EndTime)
	require.NotNil(t, first.Confidence)
	assert.Equal(t, 0.93, *first.Confidence)

	second := got.Segments[1]
	assert.Equal(t, "Eli", second.Speaker)
	assert.Equal(t, "Sure thing", second.Text)
	assert.Equal(t, 3.0, *second.StartTime)
	assert.Equal(t, 4.5, *second.EndTime)
	assert.Nil(t, second.Confidence)

	assert.Equal(t, "7", got.Segments[2].Speaker)
	assert.Equal(t, 5.0, *got.Segments[2].StartTime)

	last := got.Segments[3]
	assert.Equal(t, "", last.Speaker)
	assert.Nil(t, last.StartTime)
	assert.Equal(t, 9.0, *last.EndTime)

	eli, ok := got.Speaker("Eli")
	require.True(t, ok)
	assert.Equal(t, "eli@example.com", eli.Email)
	dana, _ := got.Speaker("Dana")
	assert.Equal(t, 1, dana.SegmentCount)

	assert.Equal(t, 3, got.Metadata.SpeakerCount)
	assert.Equal(t, SourceZoom, got.Metadata.Source)
	assert.Equal(t, FormatJSON, got.Metadata.Format)
	assert.Equal(t, 9.0, *got.Metadata.TotalDuration)
}

func TestParseJSON_SegmentCountEqualsEntriesWithText(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{`{"segments":[{"text":"a"},{"content":"b"},{"text":""},{}]}`, 2},
		{`{"transcript":[],"segments":[{"text":"ignored"}]}`, 0},
		{`{"transcript":null,"segments":[{"text":"used"}]}`, 1},
		{`[{"text":"bare array"}]`, 1},
		{`{"title":"no entries"}`, 0},
		{`{"segments":[{"text":"","content":"fallback"}]}`, 1},
	}
	for _, tt := range tests {
		got, err := ParseJSON(tt.content)
		require.NoError(t, err, tt.content)
		assert.Len(t, got.Segments, tt.want, tt.content)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	inputs := []string{
		"{not valid json",
		`{"transcript":"a single blob of text"}`,
		`{"segments":{"0":{"text":"x"}}}`,
		`"just a string"`,
		`42`,
		"",
	}
	for _, in := range inputs {
		got, err := ParseJSON(in)
		assert.Nil(t, got, in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrMalformedInput), in)

		var mie *MalformedInputError
		assert.True(t, errors.As(err, &mie), in)
		assert.NotEmpty(t, mie.Reason)
	}
}

func TestJSONNormalizer_PropagatesMalformedInput(t *testing.T) {
	_, err := NewJSONNormalizer().Normalize("[oops")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

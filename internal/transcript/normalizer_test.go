package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_VTTScenario(t *testing.T) {
	got := Normalize("WEBVTT\n\n00:00:00.000 --> 00:00:05.000\n<v Alice>Hello team</v>")

	require.Len(t, got.Segments, 1)
	seg := got.Segments[0]
	assert.Equal(t, "Alice", seg.Speaker)
	assert.Equal(t, "Hello team", seg.Text)
	require.NotNil(t, seg.StartTime)
	require.NotNil(t, seg.EndTime)
	assert.Equal(t, 0.0, *seg.StartTime)
	assert.Equal(t, 5.0, *seg.EndTime)
	assert.Equal(t, FormatVTT, got.Metadata.Format)
	assert.Equal(t, 1, got.Metadata.SpeakerCount)
}

func TestNormalize_DiarizedTextScenario(t *testing.T) {
	got := Normalize("Bob: We need to follow up with the customer")

	require.Len(t, got.Segments, 1)
	assert.Equal(t, "Bob", got.Segments[0].Speaker)
	assert.Equal(t, FormatText, got.Metadata.Format)
	assert.Equal(t, []string{"We need to follow up with the customer"}, ExtractActionItems(got.Segments))
}

func TestNormalize_StructuredScenario(t *testing.T) {
	got := Normalize(`{"transcript":[{"speaker":"Carol","text":"Let us begin","start_time":"0"}]}`)

	require.Len(t, got.Segments, 1)
	assert.Equal(t, "Carol", got.Segments[0].Speaker)
	require.NotNil(t, got.Segments[0].StartTime)
	assert.Equal(t, 0.0, *got.Segments[0].StartTime)
	assert.Equal(t, FormatJSON, got.Metadata.Format)
}

func TestNormalize_MalformedJSONFallsBackToText(t *testing.T) {
	got := Normalize("{not valid json")

	require.NotNil(t, got)
	assert.Equal(t, FormatText, got.Metadata.Format)
	require.Len(t, got.Segments, 1)
	assert.Equal(t, "{not valid json", got.Segments[0].Text)
}

func TestNormalize_ArrowInProseRoutesToVTT(t *testing.T) {
	got := Normalize("Alice: the flow goes A --> B")

	assert.Equal(t, FormatVTT, got.Metadata.Format)
	assert.Empty(t, got.Segments)
}

func TestNormalize_HeaderRoutesToVTT(t *testing.T) {
	inputs := []string{
		"WEBVTT",
		"WEBVTT\n\nNOTE exported from zoom",
		"Some preamble WEBVTT\nAlice: hi",
	}
	for _, in := range inputs {
		assert.Equal(t, FormatVTT, Normalize(in).Metadata.Format, in)
	}
}

func TestNormalize_HeaderOnly(t *testing.T) {
	got := Normalize("WEBVTT\n")

	assert.Empty(t, got.Segments)
	assert.Empty(t, got.Speakers)
	assert.Equal(t, 0, got.Metadata.SpeakerCount)
	assert.Equal(t, "", got.Text)
	assert.Nil(t, got.Metadata.TotalDuration)
}

func TestNormalize_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t\n"} {
		got := Normalize(in)
		require.NotNil(t, got)
		assert.Empty(t, got.Segments)
		assert.Empty(t, got.Speakers)
		assert.Equal(t, "", got.Text)
		assert.False(t, got.Metadata.HasTimestamps)
		assert.Equal(t, FormatText, got.Metadata.Format)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	inputs := []string{
		"WEBVTT\n\n1\n00:00:01.000 --> 00:00:02.500\n<v Ann>One</v>\n\n2\n00:00:03.000 --> 00:00:04.000\nBen: Two",
		"[0:00:05] Ann: Hello\n[0:00:09] Ben: Hi there\nloose line",
		`{"segments":[{"speaker_name":"Ann","content":"x","startTime":1.5,"endTime":2}]}`,
		"{broken",
	}
	for _, in := range inputs {
		assert.Equal(t, Normalize(in), Normalize(in), in)
	}
}

func TestNormalize_SpeakerCountMatchesDistinctLabels(t *testing.T) {
	inputs := map[string]int{
		"WEBVTT\n\n00:00:01.000 --> 00:00:02.000\n<v Ann>a</v>\n\n00:00:02.000 --> 00:00:03.000\n<v ann>b</v>\n\n00:00:03.000 --> 00:00:04.000\n<v Ann>c</v>": 2,
		"Ann: a\nBen: b\nAnn: c\nplain":                                                  2,
		`[{"speaker":"Ann","text":"a"},{"speaker":"Ann ","text":"b"},{"text":"c"}]`: 2,
	}
	for in, want := range inputs {
		got := Normalize(in)
		assert.Equal(t, want, got.Metadata.SpeakerCount, in)
		assert.Len(t, got.Speakers, got.Metadata.SpeakerCount, in)
		for _, s := range got.Speakers {
			assert.GreaterOrEqual(t, s.SegmentCount, 1)
		}
	}
}

func TestNormalize_HasTimestamps(t *testing.T) {
	assert.True(t, Normalize("Ann: hi\n[0:00:03] Ben: hello").Metadata.HasTimestamps)
	assert.False(t, Normalize("Ann: hi\nBen: hello").Metadata.HasTimestamps)
	assert.False(t, Normalize(`[{"text":"no times"}]`).Metadata.HasTimestamps)
	assert.True(t, Normalize(`[{"text":"a"},{"text":"b","start":"2"}]`).Metadata.HasTimestamps)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		content string
		want    Format
	}{
		{"WEBVTT", FormatVTT},
		{"a --> b", FormatVTT},
		{`  {"segments":[]}`, FormatJSON},
		{"[1,2]", FormatJSON},
		{"{broken", FormatJSON},
		{"[0:00:01] Ann: hi", FormatJSON},
		{"Ann: hi", FormatText},
		{"", FormatText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFormat(tt.content), tt.content)
	}
}

func TestNormalize_BracketedTimestampLineIsNotJSON(t *testing.T) {
	// Looks like a JSON array, fails to decode, and is parsed as text.
	got := Normalize("[0:00:01] Ann: hi\n[0:00:04] Ben: hello")

	assert.Equal(t, FormatText, got.Metadata.Format)
	require.Len(t, got.Segments, 2)
	assert.Equal(t, "Ann", got.Segments[0].Speaker)
	assert.Equal(t, 4.0, *got.Segments[1].StartTime)
}

func TestNormalizers_Format(t *testing.T) {
	assert.Equal(t, FormatVTT, NewVTTNormalizer().Format())
	assert.Equal(t, FormatText, NewTextNormalizer("").Format())
	assert.Equal(t, FormatJSON, NewJSONNormalizer().Format())

	for _, r := range Recognizers {
		assert.Equal(t, r.Format, r.Normalizer.Format())
	}
}

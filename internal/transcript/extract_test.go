package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractActionItems(t *testing.T) {
	segments := []Segment{
		{Speaker: "Ann", Text: "Action item: Ben owns the SOW"},
		{Speaker: "Ben", Text: "Sounds good"},
		{Speaker: "Ann", Text: "I will send the contract tomorrow and we need to follow-up on pricing"},
		{Text: "TODO review redlines"},
		{Text: "Shoulder season pricing"},
		{Text: "We must close by Friday"},
		{Text: "Next steps are on the wiki"},
		{Text: "Musty old deck"},
	}

	assert.Equal(t, []string{
		"Action item: Ben owns the SOW",
		"I will send the contract tomorrow and we need to follow-up on pricing",
		"TODO review redlines",
		"We must close by Friday",
		"Next steps are on the wiki",
	}, ExtractActionItems(segments))
}

func TestExtractActionItems_Empty(t *testing.T) {
	assert.Empty(t, ExtractActionItems(nil))
	assert.NotNil(t, ExtractActionItems(nil))
}

func TestMatchActionItem(t *testing.T) {
	id, ok := MatchActionItem("please FOLLOW UP with legal")
	assert.True(t, ok)
	assert.Equal(t, "follow-up", id)

	_, ok = MatchActionItem("nothing to see")
	assert.False(t, ok)
}

func TestExtractAttendees_AttendeeLine(t *testing.T) {
	got := Normalize("Attendees: Dave, Erin and Frank")

	assert.Empty(t, got.Speakers)
	assert.Equal(t, []string{"Dave", "Erin", "Frank"}, ExtractAttendees(got))
}

func TestExtractAttendees_SpeakersFirstThenLists(t *testing.T) {
	content := "Participants: Bob; Al; Carol Diaz.\nAlice: Welcome\nBob: hi\npresent: alice, Bob and Zed"
	got := Normalize(content)

	assert.Equal(t, []string{"Alice", "Bob", "Carol Diaz", "alice", "Zed"}, ExtractAttendees(got))
}

func TestExtractAttendees_VTTSpeakers(t *testing.T) {
	got := Normalize("WEBVTT\n\n00:00:00.000 --> 00:00:01.000\n<v Ann>hi</v>\n\n00:00:01.000 --> 00:00:02.000\n<v Ben>hello</v>")

	assert.Equal(t, []string{"Ann", "Ben"}, ExtractAttendees(got))
}

func TestExtractAttendees_TextWithoutSegments(t *testing.T) {
	got := &NormalizedTranscript{Text: "Intro\nAttendees: Gil and Hana"}

	assert.Equal(t, []string{"Gil", "Hana"}, ExtractAttendees(got))
	assert.Empty(t, ExtractAttendees(nil))
}

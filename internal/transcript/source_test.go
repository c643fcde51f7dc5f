package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSource(t *testing.T) {
	tests := []struct {
		content string
		want    Source
	}{
		{"Recorded in Microsoft Teams", SourceTeams},
		{"<v Alice>hi</v>", SourceTeams},
		{"join at https://us02web.ZOOM.us/j/123", SourceZoom},
		{"Zoom meeting notes", SourceZoom},
		{"https://meet.google.com/abc-defg-hij", SourceGoogleMeet},
		{"Google Meet recording", SourceGoogleMeet},
		{"zoom call, then teams follow-up", SourceTeams},
		{"google meet link shared over zoom", SourceZoom},
		{"Alice: hello", SourceUnknown},
		{"", SourceUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectSource(tt.content), tt.content)
	}
}

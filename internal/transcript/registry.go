package transcript

import "strings"

// speakerRegistry accumulates speakers keyed by raw label for a single parse call.
type speakerRegistry struct {
	index    map[string]int
	speakers []Speaker
}

func newSpeakerRegistry() *speakerRegistry {
	return &speakerRegistry{index: make(map[string]int)}
}

// attribute records one more segment for label, creating the speaker on first sight.
func (r *speakerRegistry) attribute(label, email string) {
	i, ok := r.index[label]
	if !ok {
		i = len(r.speakers)
		r.index[label] = i
		r.speakers = append(r.speakers, Speaker{ID: label, Name: label})
	}
	if r.speakers[i].Email == "" && email != "" {
		r.speakers[i].Email = email
	}
	r.speakers[i].SegmentCount++
}

func (r *speakerRegistry) list() []Speaker {
	out := make([]Speaker, len(r.speakers))
	copy(out, r.speakers)
	return out
}

// builder is the per-call accumulator every parser appends segments to.
// Segments are only appended; metadata is derived once in build.
type builder struct {
	format   Format
	source   Source
	segments []Segment
	speakers *speakerRegistry
}

func newBuilder(format Format, source Source) *builder {
	return &builder{
		format:   format,
		source:   source,
		segments: make([]Segment, 0),
		speakers: newSpeakerRegistry(),
	}
}

// add appends seg unless its text is empty, attributing it to its speaker.
func (b *builder) add(seg Segment, email string) {
	seg.Text = strings.TrimSpace(seg.Text)
	if seg.Text == "" {
		return
	}
	if seg.Speaker != "" {
		b.speakers.attribute(seg.Speaker, email)
	}
	b.segments = append(b.segments, seg)
}

func (b *builder) build() *NormalizedTranscript {
	texts := make([]string, len(b.segments))
	hasTimestamps := false
	for i, seg := range b.segments {
		texts[i] = seg.Text
		if seg.StartTime != nil {
			hasTimestamps = true
		}
	}

	var duration *float64
	if n := len(b.segments); n > 0 && b.segments[n-1].EndTime != nil {
		duration = Float(*b.segments[n-1].EndTime)
	}

	speakers := b.speakers.list()
	return &NormalizedTranscript{
		Text:     strings.Join(texts, " "),
		Segments: b.segments,
		Speakers: speakers,
		Metadata: Metadata{
			Format:        b.format,
			Source:        b.source,
			TotalDuration: duration,
			SpeakerCount:  len(speakers),
			HasTimestamps: hasTimestamps,
		},
	}
}

package library

import (
	"time"

	"github.com/grovetools/meetlogs/internal/transcript"
)

// Entry holds summary information about a transcript file on disk.
type Entry struct {
	Path       string            `json:"path"`
	Name       string            `json:"name"`
	Format     transcript.Format `json:"format"`
	Source     transcript.Source `json:"source"`
	Segments   int               `json:"segments"`
	Speakers   []string          `json:"speakers,omitempty"`
	Duration   *float64          `json:"duration,omitempty"`
	ModifiedAt time.Time         `json:"modifiedAt"`
}

// NewEntry summarizes a normalized transcript loaded from path.
func NewEntry(path string, modifiedAt time.Time, t *transcript.NormalizedTranscript) Entry {
	speakers := make([]string, 0, len(t.Speakers))
	for _, s := range t.Speakers {
		speakers = append(speakers, s.Name)
	}
	return Entry{
		Path:       path,
		Name:       baseName(path),
		Format:     t.Metadata.Format,
		Source:     t.Metadata.Source,
		Segments:   len(t.Segments),
		Speakers:   speakers,
		Duration:   t.Metadata.TotalDuration,
		ModifiedAt: modifiedAt,
	}
}

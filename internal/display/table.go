package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/grovetools/meetlogs/internal/formatters"
	"github.com/grovetools/meetlogs/internal/library"
)

// maxListedSpeakers caps the SPEAKERS column.
const maxListedSpeakers = 3

// PrintTranscriptsTable prints a list of transcripts in a formatted table.
func PrintTranscriptsTable(entries []library.Entry, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMAT\tSOURCE\tSEGMENTS\tSPEAKERS\tDURATION\tMODIFIED")
	for _, e := range entries {
		speakersStr := strings.Join(e.Speakers, ", ")
		if len(e.Speakers) > maxListedSpeakers {
			speakersStr = strings.Join(e.Speakers[:maxListedSpeakers], ", ")
			speakersStr += fmt.Sprintf(" (+%d more)", len(e.Speakers)-maxListedSpeakers)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			e.Name, e.Format, e.Source, e.Segments, speakersStr,
			formatters.FormatDuration(e.Duration),
			e.ModifiedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

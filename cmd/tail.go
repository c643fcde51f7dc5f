package cmd

import (
	"fmt"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"

	meetlogs_config "github.com/grovetools/meetlogs/config"
	"github.com/grovetools/meetlogs/internal/formatters"
)

var ulogTail = grovelogging.NewUnifiedLogger("meetlogs.cmd.tail")

func newTailCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "tail <file|->",
		Short: "Show the last segments of a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := meetlogs_config.Load()
			if count <= 0 {
				count = cfg.Transcript.MaxSegments
			}

			t, err := loadInput(args[0], cfg)
			if err != nil {
				return fmt.Errorf("failed to load transcript: %w", err)
			}

			start := 0
			if len(t.Segments) > count {
				start = len(t.Segments) - count
			}

			ulogTail.Info("Tail segments").
				Field("file", args[0]).
				Field("segment_count", len(t.Segments)-start).
				Field("total_segments", len(t.Segments)).
				Pretty(fmt.Sprintf("Showing last %d segments from %s:\n", len(t.Segments)-start, args[0])).
				PrettyOnly().
				Emit()

			for i := start; i < len(t.Segments); i++ {
				seg := t.Segments[i]
				offset := "--:--"
				if seg.StartTime != nil {
					offset = formatters.FormatOffset(*seg.StartTime)
				}
				speaker := seg.Speaker
				if speaker == "" {
					speaker = "(unattributed)"
				}
				ulogTail.Info("Segment").
					Field("index", i).
					Field("speaker", seg.Speaker).
					Field("start_time", seg.StartTime).
					Pretty(fmt.Sprintf("[%s] %s: %s", offset, speaker, seg.Text)).
					PrettyOnly().
					Emit()
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "lines", "n", 0, "Number of segments to show (default from config, 10)")

	return cmd
}

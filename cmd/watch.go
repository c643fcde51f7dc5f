package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"

	meetlogs_config "github.com/grovetools/meetlogs/config"
	"github.com/grovetools/meetlogs/internal/formatters"
	"github.com/grovetools/meetlogs/internal/ingest"
	"github.com/grovetools/meetlogs/internal/library"
	"github.com/grovetools/meetlogs/internal/transcript"
	"github.com/grovetools/meetlogs/internal/watch"
)

var ulogWatch = grovelogging.NewUnifiedLogger("meetlogs.cmd.watch")

func newWatchCmd() *cobra.Command {
	var interval time.Duration
	var once bool

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory for new or changed transcripts",
		Long:  "Polls a directory and reports each transcript as it appears or changes, with its speakers and action items.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			if info, err := os.Stat(root); err != nil || !info.IsDir() {
				return fmt.Errorf("not a directory: %s", root)
			}

			cfg := meetlogs_config.Load()
			if interval <= 0 {
				interval = time.Duration(cfg.Watch.IntervalSeconds) * time.Second
			}

			scanner := library.NewScanner(root, cfg.Ingest.Extensions, ingest.NewLoader(cfg.Ingest.MaxBytes))
			monitor := watch.NewMonitor(scanner, interval, reportTranscript)

			if once {
				monitor.Poll()
				return nil
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			monitor.Start()
			<-sigChan
			monitor.Stop()
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "Polling interval (default from config, 5s)")
	cmd.Flags().BoolVar(&once, "once", false, "Report current transcripts once and exit")

	return cmd
}

func reportTranscript(entry library.Entry, t *transcript.NormalizedTranscript) {
	items := transcript.ExtractActionItems(t.Segments)
	ulogWatch.Info("Transcript updated").
		Field("path", entry.Path).
		Field("format", entry.Format).
		Field("source", entry.Source).
		Field("segments", entry.Segments).
		Field("action_items", len(items)).
		Pretty(fmt.Sprintf("%s (%s, %s, %d segments, %s) speakers: %v, action items: %d",
			entry.Path, entry.Format, entry.Source, entry.Segments,
			formatters.FormatDuration(entry.Duration), entry.Speakers, len(items))).
		PrettyOnly().
		Emit()
}

package cmd

import (
	"encoding/json"
	"fmt"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"

	meetlogs_config "github.com/grovetools/meetlogs/config"
	"github.com/grovetools/meetlogs/internal/transcript"
)

var ulogDetect = grovelogging.NewUnifiedLogger("meetlogs.cmd.detect")

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "detect <file|->",
		Short:  "Report the detected format and source of a transcript",
		Long:   "Prints the parser that produced the normalized transcript and the inferred source platform as JSON.",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(args[0], meetlogs_config.Load())
			if err != nil {
				return err
			}
			t := transcript.Normalize(content)

			output := struct {
				Format   transcript.Format `json:"format"`
				Source   transcript.Source `json:"source"`
				Detected transcript.Format `json:"detected"`
			}{
				Format:   t.Metadata.Format,
				Source:   t.Metadata.Source,
				Detected: transcript.DetectFormat(content),
			}

			jsonData, err := json.Marshal(output)
			if err != nil {
				return fmt.Errorf("failed to marshal detection result to JSON: %w", err)
			}

			ulogDetect.Info("Format detected").
				Field("format", output.Format).
				Field("source", output.Source).
				Field("detected", output.Detected).
				Pretty(string(jsonData)).
				PrettyOnly().
				Emit()
			return nil
		},
	}
	return cmd
}

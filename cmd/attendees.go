package cmd

import (
	"encoding/json"
	"fmt"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"

	meetlogs_config "github.com/grovetools/meetlogs/config"
	"github.com/grovetools/meetlogs/internal/formatters"
	"github.com/grovetools/meetlogs/internal/transcript"
)

var ulogAttendees = grovelogging.NewUnifiedLogger("meetlogs.cmd.attendees")

func newAttendeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendees <file|->",
		Short: "List the attendees of a meeting",
		Long:  "List speakers followed by names found on Attendees:, Participants: or Present: lines.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")

			t, err := loadInput(args[0], meetlogs_config.Load())
			if err != nil {
				return fmt.Errorf("failed to load transcript: %w", err)
			}
			names := transcript.ExtractAttendees(t)

			pretty := formatters.FormatAttendees(names)
			if jsonOutput {
				data, err := json.MarshalIndent(names, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal attendees: %w", err)
				}
				pretty = string(data)
			}

			ulogAttendees.Info("Attendees").
				Field("file", args[0]).
				Field("attendee_count", len(names)).
				Pretty(pretty).
				PrettyOnly().
				Emit()
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

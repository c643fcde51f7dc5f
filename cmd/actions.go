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

var ulogActions = grovelogging.NewUnifiedLogger("meetlogs.cmd.actions")

func newActionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions <file|->",
		Short: "Extract action items from a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")

			t, err := loadInput(args[0], meetlogs_config.Load())
			if err != nil {
				return fmt.Errorf("failed to load transcript: %w", err)
			}
			items := transcript.ExtractActionItems(t.Segments)

			pretty := formatters.FormatActionItems(items)
			if jsonOutput {
				data, err := json.MarshalIndent(items, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal action items: %w", err)
				}
				pretty = string(data)
			}

			ulogActions.Info("Action items").
				Field("file", args[0]).
				Field("item_count", len(items)).
				Pretty(pretty).
				PrettyOnly().
				Emit()
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

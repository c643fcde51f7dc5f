package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	meetlogs_config "github.com/grovetools/meetlogs/config"
	"github.com/grovetools/meetlogs/internal/display"
	"github.com/grovetools/meetlogs/internal/ingest"
	"github.com/grovetools/meetlogs/internal/library"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool
	var speakerFilter string

	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List transcripts in a directory",
		Long:  "List transcript files under a directory (default: current directory), optionally filtered by speaker name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := meetlogs_config.Load()
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			scanner := library.NewScanner(root, cfg.Ingest.Extensions, ingest.NewLoader(cfg.Ingest.MaxBytes))
			entries, err := scanner.Scan()
			if err != nil {
				return fmt.Errorf("failed to scan for transcripts: %w", err)
			}

			// Filter by speaker if specified
			if speakerFilter != "" {
				var filtered []library.Entry
				for _, e := range entries {
					for _, s := range e.Speakers {
						if strings.Contains(strings.ToLower(s), strings.ToLower(speakerFilter)) {
							filtered = append(filtered, e)
							break
						}
					}
				}
				entries = filtered
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				if entries == nil {
					entries = []library.Entry{}
				}
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal transcripts to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if len(entries) == 0 {
				if speakerFilter != "" {
					fmt.Fprintf(out, "No transcripts found with speaker matching '%s'\n", speakerFilter)
				} else {
					fmt.Fprintln(out, "No transcripts found.")
				}
				return nil
			}

			display.PrintTranscriptsTable(entries, out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVarP(&speakerFilter, "speaker", "s", "", "Filter transcripts by speaker name (case-insensitive substring match)")

	return cmd
}

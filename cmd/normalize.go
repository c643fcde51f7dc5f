package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	meetlogs_config "github.com/grovetools/meetlogs/config"
	"github.com/grovetools/meetlogs/internal/display"
	"github.com/grovetools/meetlogs/internal/transcript"
)

func newNormalizeCmd() *cobra.Command {
	var output, as, source, detail string
	var noTimestamps bool

	cmd := &cobra.Command{
		Use:   "normalize <file|->",
		Short: "Normalize a meeting transcript",
		Long:  "Detect the format of a transcript (WebVTT, diarized text or JSON export) and print it in the normalized form. Use - to read from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := meetlogs_config.Load()

			content, err := readInput(args[0], cfg)
			if err != nil {
				return err
			}

			t, err := parseAs(content, as, transcript.Source(source))
			if err != nil {
				return fmt.Errorf("failed to parse transcript: %w", err)
			}

			out := cmd.OutOrStdout()
			switch output {
			case "json":
				data, err := json.MarshalIndent(t, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal transcript to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(t); err != nil {
					return fmt.Errorf("failed to marshal transcript to YAML: %w", err)
				}
				return enc.Close()
			case "pretty", "":
				detailLevel := cfg.Transcript.DetailLevel
				if detail != "" {
					detailLevel = detail
				}
				display.RenderTranscript(out, t, display.Options{
					DetailLevel:    detailLevel,
					ShowTimestamps: *cfg.Transcript.ShowTimestamps && !noTimestamps,
				})
			default:
				return fmt.Errorf("unknown output %q: expected pretty, json or yaml", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "pretty", "Output format (pretty, json, yaml)")
	cmd.Flags().StringVar(&as, "as", "", "Force a parser instead of detecting one (vtt, text, json)")
	cmd.Flags().StringVar(&source, "source", "", "Source platform for text transcripts (teams, zoom, google_meet)")
	cmd.Flags().StringVar(&detail, "detail", "", "Set detail level for pretty output (summary, full)")
	cmd.Flags().BoolVar(&noTimestamps, "no-timestamps", false, "Hide segment start offsets in pretty output")

	return cmd
}

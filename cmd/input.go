package cmd

import (
	"fmt"
	"os"

	meetlogs_config "github.com/grovetools/meetlogs/config"
	"github.com/grovetools/meetlogs/internal/ingest"
	"github.com/grovetools/meetlogs/internal/library"
	"github.com/grovetools/meetlogs/internal/transcript"
)

// stdinArg selects standard input as the transcript source.
const stdinArg = "-"

// readInput returns the raw content named by arg, which is "-", a file path,
// or a transcript name under the working directory.
func readInput(arg string, cfg meetlogs_config.Config) (string, error) {
	loader := ingest.NewLoader(cfg.Ingest.MaxBytes)
	if arg == stdinArg {
		return loader.ReadContent(os.Stdin)
	}

	path, err := library.Resolve(".", arg, cfg.Ingest.Extensions)
	if err != nil {
		return "", err
	}
	return loader.Content(path)
}

// loadInput reads and normalizes the transcript named by arg.
func loadInput(arg string, cfg meetlogs_config.Config) (*transcript.NormalizedTranscript, error) {
	content, err := readInput(arg, cfg)
	if err != nil {
		return nil, err
	}
	return transcript.Normalize(content), nil
}

// parseAs runs a single parser chosen by name. An empty name auto-detects.
func parseAs(content, format string, hint transcript.Source) (*transcript.NormalizedTranscript, error) {
	switch transcript.Format(format) {
	case "":
		t := transcript.Normalize(content)
		if hint != "" && t.Metadata.Format == transcript.FormatText {
			t = transcript.ParseText(content, hint)
		}
		return t, nil
	case transcript.FormatVTT:
		return transcript.ParseVTT(content), nil
	case transcript.FormatText:
		return transcript.ParseText(content, hint), nil
	case transcript.FormatJSON:
		return transcript.ParseJSON(content)
	default:
		return nil, fmt.Errorf("unknown format %q: expected vtt, text or json", format)
	}
}

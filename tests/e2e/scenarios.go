package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

const teamsExport = `WEBVTT

NOTE exported from Microsoft Teams

1
00:00:00.000 --> 00:00:04.000
<v Alice Jones>Good morning everyone.</v>

2
00:00:04.500 --> 00:00:09.000
<v Bob>I will send the deck after this call.</v>
`

const zoomNotes = `Meeting notes - Zoom
Attendees: Dave, Erin and Frank
[0:00:05] Dave: Welcome everyone
[0:01:10] Erin: We need to follow up with the customer
[0:02:00] Frank: Sounds good
`

const meetExport = `{"meeting_url":"https://meet.google.com/abc","segments":[
  {"speaker_name":"Gil","content":"Let us begin","startTime":"0","endTime":"3.5"},
  {"speaker_name":"Hana","content":"Action item: Hana drafts the plan","startTime":4,"endTime":9}
]}`

// setupTranscriptDir writes one transcript per supported format.
func setupTranscriptDir(ctx *harness.Context) error {
	dir := ctx.NewDir("meetings")
	if err := fs.CreateDir(dir); err != nil {
		return err
	}

	files := map[string]string{
		"standup.vtt":   teamsExport,
		"review.txt":    zoomNotes,
		"planning.json": meetExport,
	}
	for name, content := range files {
		if err := fs.WriteString(filepath.Join(dir, name), content); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	ctx.Set("meetings_dir", dir)
	return nil
}

// runMeetlogs runs the binary and returns its stdout, failing on a non-zero exit.
func runMeetlogs(ctx *harness.Context, args ...string) (string, error) {
	bin, err := FindProjectBinary()
	if err != nil {
		return "", err
	}
	cmd := command.New(bin, args...).Env("NO_COLOR=1")
	result := cmd.Run()
	ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
	if result.ExitCode != 0 {
		return "", fmt.Errorf("meetlogs %v failed: %s", args, result.Stderr)
	}
	return result.Stdout, nil
}

// MeetlogsNormalizeScenario tests 'meetlogs normalize' across formats.
func MeetlogsNormalizeScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "meetlogs-normalize-command",
		Steps: []harness.Step{
			harness.NewStep("Setup transcript directory", setupTranscriptDir),
			harness.NewStep("Normalize WebVTT to JSON", func(ctx *harness.Context) error {
				path := filepath.Join(ctx.GetString("meetings_dir"), "standup.vtt")
				stdout, err := runMeetlogs(ctx, "normalize", path, "--output", "json")
				if err != nil {
					return err
				}

				var out struct {
					Segments []struct {
						Speaker string `json:"speaker"`
					} `json:"segments"`
					Metadata struct {
						Format       string `json:"format"`
						Source       string `json:"source"`
						SpeakerCount int    `json:"speakerCount"`
					} `json:"metadata"`
				}
				if err := json.Unmarshal([]byte(stdout), &out); err != nil {
					return fmt.Errorf("failed to parse JSON output: %w", err)
				}
				if err := assert.Equal("vtt", out.Metadata.Format, "Should detect WebVTT"); err != nil {
					return err
				}
				if err := assert.Equal("teams", out.Metadata.Source, "Should detect Teams"); err != nil {
					return err
				}
				if err := assert.Equal(2, out.Metadata.SpeakerCount, "Should find two speakers"); err != nil {
					return err
				}
				return assert.Equal("Alice Jones", out.Segments[0].Speaker, "Should read voice tag speaker")
			}),
			harness.NewStep("Normalize diarized text pretty", func(ctx *harness.Context) error {
				path := filepath.Join(ctx.GetString("meetings_dir"), "review.txt")
				stdout, err := runMeetlogs(ctx, "normalize", path)
				if err != nil {
					return err
				}
				if err := assert.Contains(stdout, "format: text", "Should print header"); err != nil {
					return err
				}
				if err := assert.Contains(stdout, "source: zoom", "Should detect Zoom"); err != nil {
					return err
				}
				return assert.Contains(stdout, "[1:10]", "Should show offsets")
			}),
			harness.NewStep("Detect structured export", func(ctx *harness.Context) error {
				path := filepath.Join(ctx.GetString("meetings_dir"), "planning.json")
				stdout, err := runMeetlogs(ctx, "detect", path)
				if err != nil {
					return err
				}
				if err := assert.Contains(stdout, `"format":"json"`, "Should detect JSON"); err != nil {
					return err
				}
				return assert.Contains(stdout, `"source":"google_meet"`, "Should detect Google Meet")
			}),
		},
	}
}

// MeetlogsListScenario tests the 'meetlogs list' command
func MeetlogsListScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "meetlogs-list-command",
		Steps: []harness.Step{
			harness.NewStep("Setup transcript directory", setupTranscriptDir),
			harness.NewStep("Run 'meetlogs list'", func(ctx *harness.Context) error {
				stdout, err := runMeetlogs(ctx, "list", ctx.GetString("meetings_dir"))
				if err != nil {
					return err
				}
				if err := assert.Contains(stdout, "NAME", "Should print table header"); err != nil {
					return err
				}
				if err := assert.Contains(stdout, "standup", "Should list standup"); err != nil {
					return err
				}
				return assert.Contains(stdout, "planning", "Should list planning")
			}),
			harness.NewStep("Run 'meetlogs list --json'", func(ctx *harness.Context) error {
				stdout, err := runMeetlogs(ctx, "list", ctx.GetString("meetings_dir"), "--json")
				if err != nil {
					return err
				}

				var entries []map[string]interface{}
				if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
					return fmt.Errorf("failed to parse JSON output: %w", err)
				}
				if err := assert.Equal(3, len(entries), "Should list every transcript"); err != nil {
					return err
				}
				for _, e := range entries {
					for _, field := range []string{"path", "format", "source", "modifiedAt"} {
						if _, ok := e[field]; !ok {
							return fmt.Errorf("missing %s field in JSON output", field)
						}
					}
				}
				return nil
			}),
		},
	}
}

// MeetlogsExtractScenario tests action item and attendee extraction.
func MeetlogsExtractScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "meetlogs-extract-commands",
		Steps: []harness.Step{
			harness.NewStep("Setup transcript directory", setupTranscriptDir),
			harness.NewStep("Run 'meetlogs actions'", func(ctx *harness.Context) error {
				path := filepath.Join(ctx.GetString("meetings_dir"), "review.txt")
				stdout, err := runMeetlogs(ctx, "actions", path, "--json")
				if err != nil {
					return err
				}
				if err := assert.Contains(stdout, "We need to follow up with the customer", "Should extract action item"); err != nil {
					return err
				}
				return assert.NotContains(stdout, "Sounds good", "Should skip plain segments")
			}),
			harness.NewStep("Run 'meetlogs attendees'", func(ctx *harness.Context) error {
				path := filepath.Join(ctx.GetString("meetings_dir"), "review.txt")
				stdout, err := runMeetlogs(ctx, "attendees", path, "--json")
				if err != nil {
					return err
				}

				var names []string
				if err := json.Unmarshal([]byte(stdout), &names); err != nil {
					return fmt.Errorf("failed to parse JSON output: %w", err)
				}
				return assert.Equal("Dave,Erin,Frank", strings.Join(names, ","), "Should list speakers and attendees once")
			}),
		},
	}
}

// MeetlogsTailScenario tests the 'meetlogs tail' command
func MeetlogsTailScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "meetlogs-tail-command",
		Steps: []harness.Step{
			harness.NewStep("Setup transcript directory", setupTranscriptDir),
			harness.NewStep("Run 'meetlogs tail -n 1'", func(ctx *harness.Context) error {
				path := filepath.Join(ctx.GetString("meetings_dir"), "standup.vtt")
				stdout, err := runMeetlogs(ctx, "tail", path, "-n", "1")
				if err != nil {
					return err
				}
				if err := assert.Contains(stdout, "Showing last 1 segments", "Should print summary"); err != nil {
					return err
				}
				if err := assert.Contains(stdout, "Bob: I will send the deck", "Should show last segment"); err != nil {
					return err
				}
				return assert.NotContains(stdout, "Good morning", "Should skip earlier segments")
			}),
		},
	}
}

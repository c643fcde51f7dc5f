package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/meetlogs/internal/library"
	"github.com/grovetools/meetlogs/internal/transcript"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNormalizeCmd_JSON(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "standup.vtt", "WEBVTT\n\n00:00:00.000 --> 00:00:05.000\n<v Alice>Hello team</v>\n")

	out, err := runCmd(t, "normalize", path, "--output", "json")
	require.NoError(t, err)

	var got transcript.NormalizedTranscript
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, transcript.FormatVTT, got.Metadata.Format)
	require.Len(t, got.Segments, 1)
	assert.Equal(t, "Alice", got.Segments[0].Speaker)
	assert.Equal(t, 5.0, *got.Segments[0].EndTime)
}

func TestNormalizeCmd_YAML(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "notes.txt", "Bob: We need to follow up")

	out, err := runCmd(t, "normalize", path, "-o", "yaml")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "We need to follow up", got["text"])
}

func TestNormalizeCmd_ForcedJSONParserReportsMalformedInput(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "bad.json", `{"transcript":"oops"}`)

	_, err := runCmd(t, "normalize", path, "--as", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, transcript.ErrMalformedInput)

	_, err = runCmd(t, "normalize", path, "--output", "xml")
	assert.ErrorContains(t, err, "unknown output")
}

func TestParseAs(t *testing.T) {
	content := "Ann: hi"

	got, err := parseAs(content, "", transcript.SourceTeams)
	require.NoError(t, err)
	assert.Equal(t, transcript.SourceTeams, got.Metadata.Source)

	got, err = parseAs(content, "vtt", "")
	require.NoError(t, err)
	assert.Equal(t, transcript.FormatVTT, got.Metadata.Format)
	assert.Empty(t, got.Segments)

	_, err = parseAs(content, "srt", "")
	assert.ErrorContains(t, err, "unknown format")
}

func TestListCmd_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.txt", "Ann: hi\nBen: hello")
	writeFixture(t, dir, "b.vtt", "WEBVTT\n\n00:00:00.000 --> 00:00:02.000\n<v Cy>yo</v>")

	out, err := runCmd(t, "list", dir, "--json", "--speaker", "ben")
	require.NoError(t, err)

	var entries []library.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, []string{"Ann", "Ben"}, entries[0].Speakers)
}

func TestSchemaCmd(t *testing.T) {
	out, err := runCmd(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "\"segments\"")
	assert.Contains(t, out, "\"metadata\"")
}

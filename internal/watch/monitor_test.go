package watch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/meetlogs/internal/library"
	"github.com/grovetools/meetlogs/internal/transcript"
)

func write(t *testing.T, path, content string, modTime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
}

func TestMonitor_PollReportsNewAndChangedFiles(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	path := filepath.Join(dir, "sync.txt")
	write(t, path, "Ann: first draft", base)

	var got []string
	m := NewMonitor(library.NewScanner(dir, nil, nil), time.Hour, func(e library.Entry, tr *transcript.NormalizedTranscript) {
		got = append(got, tr.Text)
	})

	assert.Equal(t, 1, m.Poll())
	assert.Equal(t, 0, m.Poll())

	write(t, path, "Ann: second draft", base.Add(time.Minute))
	write(t, filepath.Join(dir, "other.vtt"), "WEBVTT\n\n00:00:00.000 --> 00:00:01.000\nhello", base)

	assert.Equal(t, 2, m.Poll())
	assert.ElementsMatch(t, []string{"first draft", "second draft", "hello"}, got)
}

func TestMonitor_MissingRoot(t *testing.T) {
	m := NewMonitor(library.NewScanner(filepath.Join(t.TempDir(), "gone"), nil, nil), 0, nil)

	assert.Equal(t, DefaultInterval, m.checkInterval)
	assert.Equal(t, 0, m.Poll())
}

func TestMonitor_StartStop(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.txt"), "Ann: hi", time.Now())

	var mu sync.Mutex
	calls := 0
	m := NewMonitor(library.NewScanner(dir, nil, nil), 10*time.Millisecond, func(library.Entry, *transcript.NormalizedTranscript) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	m.Start()
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, time.Second, 5*time.Millisecond)
	m.Stop()
	m.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

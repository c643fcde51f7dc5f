// Package library discovers transcript files in a directory tree.
package library

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/grovetools/core/logging"

	"github.com/grovetools/meetlogs/internal/ingest"
)

// DefaultExtensions are the file extensions considered transcripts.
var DefaultExtensions = []string{".vtt", ".txt", ".json", ".md"}

var log = logging.NewLogger("meetlogs.library")

// Scanner is responsible for finding and normalizing transcript files.
type Scanner struct {
	Root       string
	Extensions []string
	Loader     *ingest.Loader
}

// NewScanner creates a scanner rooted at root. Nil extensions select
// DefaultExtensions and a nil loader selects a default one.
func NewScanner(root string, extensions []string, loader *ingest.Loader) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	if loader == nil {
		loader = ingest.NewLoader(0)
	}
	return &Scanner{Root: root, Extensions: extensions, Loader: loader}
}

// Scan walks Root and returns one entry per transcript, newest first.
// Files that cannot be read are skipped.
func (s *Scanner) Scan() ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.Root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.Matches(path) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		t, err := s.Loader.LoadFile(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Debug("Skipping unreadable transcript")
			return nil
		}
		entries = append(entries, NewEntry(path, info.ModTime(), t))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ModifiedAt.Equal(entries[j].ModifiedAt) {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].ModifiedAt.After(entries[j].ModifiedAt)
	})
	return entries, nil
}

// Matches reports whether path has one of the scanner's extensions.
func (s *Scanner) Matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

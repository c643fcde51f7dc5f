package library

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve finds a transcript file from a specifier which can be a direct file
// path, a path relative to root, or a base name with or without extension.
// Direct paths are checked first.
func Resolve(root, spec string, extensions []string) (string, error) {
	// Strategy 1: spec is a file path
	if info, err := os.Stat(spec); err == nil && !info.IsDir() {
		return filepath.Abs(spec)
	}

	// Strategy 2: spec is relative to root
	if root != "" {
		candidate := filepath.Join(root, spec)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return filepath.Abs(candidate)
		}
	}

	// Strategy 3: spec is a transcript name
	scanner := NewScanner(root, extensions, nil)
	var match string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !scanner.Matches(path) {
			return nil
		}
		if filepath.Base(path) == spec || baseName(path) == spec {
			match = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to search %s: %w", root, err)
	}
	if match != "" {
		return filepath.Abs(match)
	}

	return "", fmt.Errorf("could not find transcript matching spec: %s", spec)
}

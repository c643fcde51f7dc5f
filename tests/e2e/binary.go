package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindProjectBinary locates the meetlogs binary. MEETLOGS_BINARY takes
// precedence, then bin/meetlogs in the nearest directory containing go.mod.
func FindProjectBinary() (string, error) {
	if bin := os.Getenv("MEETLOGS_BINARY"); bin != "" {
		return bin, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			bin := filepath.Join(dir, "bin", "meetlogs")
			if _, err := os.Stat(bin); err != nil {
				return "", fmt.Errorf("meetlogs binary not found at %s (run 'go build -o bin/meetlogs .')", bin)
			}
			return bin, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root from working directory")
		}
		dir = parent
	}
}

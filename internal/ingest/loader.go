// Package ingest reads transcript files from disk or streams and hands their
// content to the normalizer.
package ingest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/meetlogs/internal/transcript"
)

// DefaultMaxBytes is the largest transcript a Loader accepts unless configured otherwise.
const DefaultMaxBytes int64 = 20 << 20

// ErrTooLarge is returned when content exceeds the loader's MaxBytes.
var ErrTooLarge = errors.New("transcript exceeds size limit")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var log = logging.NewLogger("meetlogs.ingest")

// Loader reads transcript content with a size cap.
type Loader struct {
	MaxBytes int64
}

// NewLoader creates a loader. A non-positive maxBytes selects DefaultMaxBytes.
func NewLoader(maxBytes int64) *Loader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Loader{MaxBytes: maxBytes}
}

// LoadFile reads and normalizes the transcript at path.
func (l *Loader) LoadFile(path string) (*transcript.NormalizedTranscript, error) {
	content, err := l.Content(path)
	if err != nil {
		return nil, err
	}
	return transcript.Normalize(content), nil
}

// LoadReader reads and normalizes a transcript from r.
func (l *Loader) LoadReader(r io.Reader) (*transcript.NormalizedTranscript, error) {
	content, err := l.ReadContent(r)
	if err != nil {
		return nil, err
	}
	return transcript.Normalize(content), nil
}

// Content returns the raw content of the file at path.
func (l *Loader) Content(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := l.ReadContent(file)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return content, nil
}

// ReadContent reads all of r, strips a leading UTF-8 byte order mark and
// enforces MaxBytes.
func (l *Loader) ReadContent(r io.Reader) (string, error) {
	limit := l.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	// Read one byte past the limit so oversized input is detected without
	// buffering all of it.
	data, err := io.ReadAll(io.LimitReader(bufio.NewReaderSize(r, 64*1024), limit+1))
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	if int64(len(data)) > limit {
		log.WithFields(logrus.Fields{
			"limit": limit,
			"read":  len(data),
		}).Warn("Refusing oversized transcript")
		return "", fmt.Errorf("%w (%d bytes)", ErrTooLarge, limit)
	}

	return string(bytes.TrimPrefix(data, utf8BOM)), nil
}

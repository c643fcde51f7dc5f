// Package watch polls a directory for new or changed transcripts.
package watch

import (
	"os"
	"sync"
	"time"

	"github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/meetlogs/internal/library"
	"github.com/grovetools/meetlogs/internal/transcript"
)

// DefaultInterval is the polling interval used when none is configured.
const DefaultInterval = 5 * time.Second

// Handler receives each new or changed transcript.
type Handler func(entry library.Entry, t *transcript.NormalizedTranscript)

var log = logging.NewLogger("meetlogs.watch")

// Monitor handles periodic directory polling and normalization
type Monitor struct {
	scanner       *library.Scanner
	checkInterval time.Duration
	handler       Handler
	modTimes      map[string]time.Time // path -> last seen modification time
	modTimesMutex sync.Mutex
	stopChan      chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
}

// NewMonitor creates a new monitor over the scanner's root.
func NewMonitor(scanner *library.Scanner, checkInterval time.Duration, handler Handler) *Monitor {
	if checkInterval <= 0 {
		checkInterval = DefaultInterval
	}
	return &Monitor{
		scanner:       scanner,
		checkInterval: checkInterval,
		handler:       handler,
		modTimes:      make(map[string]time.Time),
		stopChan:      make(chan struct{}),
	}
}

// Start begins the monitoring process
func (m *Monitor) Start() {
	log.WithFields(logrus.Fields{
		"root":     m.scanner.Root,
		"interval": m.checkInterval,
	}).Info("Starting transcript monitor")

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		// Initial check immediately
		m.Poll()

		ticker := time.NewTicker(m.checkInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.Poll()
			case <-m.stopChan:
				log.Info("Stopping transcript monitor")
				return
			}
		}
	}()
}

// Stop gracefully stops the monitor. It is safe to call more than once.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
	m.wg.Wait()
}

// Poll performs one synchronous pass over the directory and returns the
// number of transcripts passed to the handler.
func (m *Monitor) Poll() int {
	root := m.scanner.Root
	if _, err := os.Stat(root); err != nil {
		log.WithError(err).WithField("root", root).Warn("Watch root unavailable")
		return 0
	}

	entries, err := m.scanner.Scan()
	if err != nil {
		log.WithError(err).Warn("Failed to scan for transcripts")
		return 0
	}

	changed := 0
	for _, entry := range entries {
		if !m.markSeen(entry.Path, entry.ModifiedAt) {
			continue
		}
		t, err := m.scanner.Loader.LoadFile(entry.Path)
		if err != nil {
			log.WithError(err).WithField("path", entry.Path).Warn("Failed to load transcript")
			continue
		}
		changed++
		if m.handler != nil {
			m.handler(entry, t)
		}
	}
	return changed
}

// markSeen records modTime for path and reports whether it differs from the
// previously seen value.
func (m *Monitor) markSeen(path string, modTime time.Time) bool {
	m.modTimesMutex.Lock()
	defer m.modTimesMutex.Unlock()

	if prev, ok := m.modTimes[path]; ok && prev.Equal(modTime) {
		return false
	}
	m.modTimes[path] = modTime
	return true
}

package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger is the on-disk journal. Every event becomes one CBOR data item
// appended to the file, so runs of the tool add to the same journal and a
// Reader can consume it while it grows.
type FileLogger struct {
	mu      sync.Mutex
	path    string
	f       *os.File // nil after Close
	enc     *cbor.Encoder
	dropped int
}

// NewFileLogger opens the journal at path, creating it with mode 0644.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("journal %s: %w", path, err)
	}
	return &FileLogger{path: path, f: f, enc: NewEncoder(f)}, nil
}

// Path returns the journal file name.
func (l *FileLogger) Path() string {
	return l.path
}

// Log appends event. An event that cannot be written, including any event
// logged after Close, is counted by Dropped instead.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil || l.enc.Encode(event) != nil {
		l.dropped++
	}
}

// Dropped returns the number of events that never reached the file.
func (l *FileLogger) Dropped() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

// Close closes the journal file. Later calls return nil.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

var _ Logger = (*FileLogger)(nil)

package persistence

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mash-protocol/countdown/pkg/countdown"
)

// DefaultSuffix is appended to a timer name to form its file name.
const DefaultSuffix = ".timer"

// FileStore keeps one file per countdown in a directory.
type FileStore struct {
	mu     sync.Mutex
	dir    string
	suffix string
}

// NewFileStore creates a store rooted at dir. An empty dir means the working
// directory.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "."
	}
	return &FileStore{dir: dir, suffix: DefaultSuffix}
}

// Dir returns the store directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file path backing the countdown called name.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name+s.suffix)
}

// Save writes cd to <dir>/<name>.timer, creating the directory if needed.
func (s *FileStore) Save(cd countdown.Countdown) error {
	if err := countdown.ValidateName(cd.Name); err != nil {
		return &countdown.SaveError{Name: cd.Name, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return &countdown.IOError{Op: "save", Name: cd.Name, Err: err}
	}

	data := []byte(EncodeTimestamp(cd.EndTime))
	if err := os.WriteFile(s.Path(cd.Name), data, 0644); err != nil {
		return &countdown.IOError{Op: "save", Name: cd.Name, Err: err}
	}
	return nil
}

// Load reads the countdown called name.
func (s *FileStore) Load(name string) (countdown.Countdown, error) {
	if err := countdown.ValidateName(name); err != nil {
		return countdown.Countdown{}, &countdown.NotFoundError{Name: name, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return countdown.Countdown{}, &countdown.NotFoundError{Name: name, Err: err}
	}
	if err != nil {
		return countdown.Countdown{}, &countdown.IOError{Op: "load", Name: name, Err: err}
	}

	end, err := DecodeTimestamp(string(data))
	if err != nil {
		return countdown.Countdown{}, &countdown.IOError{Op: "load", Name: name, Err: err}
	}

	return countdown.Countdown{Name: name, EndTime: end}, nil
}

// Delete removes the file for the countdown called name.
func (s *FileStore) Delete(name string) error {
	if err := countdown.ValidateName(name); err != nil {
		return &countdown.NotFoundError{Name: name, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return &countdown.NotFoundError{Name: name, Err: err}
	}
	if err != nil {
		return &countdown.IOError{Op: "delete", Name: name, Err: err}
	}
	return nil
}

// List returns the bare names of all countdown files, sorted. Only names
// accepted by countdown.ValidateName are returned. A missing directory holds
// no countdowns.
func (s *FileStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, &countdown.IOError{Op: "list", Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(e.Name(), s.suffix)
		// Names Load would reject (x\y.timer, ..timer) are not countdowns.
		if !ok || countdown.ValidateName(name) != nil {
			continue
		}
		names = append(names, name)
	}

	// ReadDir sorts by file name, which is not the same order as sorting
	// bare names ("a b.timer" vs "a.timer").
	sort.Strings(names)
	return names, nil
}

var _ countdown.Store = (*FileStore)(nil)

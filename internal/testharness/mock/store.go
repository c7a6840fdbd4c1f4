// Package mock provides in-memory test doubles for countdown components.
package mock

import (
	"sort"
	"sync"

	"github.com/mash-protocol/countdown/pkg/countdown"
)

// Store operation names accepted by FailOn.
const (
	OpSave   = "save"
	OpLoad   = "load"
	OpDelete = "delete"
	OpList   = "list"
)

type failureKey struct {
	op   string
	name string
}

// MemoryStore is a map-backed countdown.Store.
// It is safe for concurrent use.
type MemoryStore struct {
	mu         sync.RWMutex
	countdowns map[string]countdown.Countdown
	failures   map[failureKey]error

	// Calls records each operation as "op" or "op:name", in order.
	Calls []string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		countdowns: make(map[string]countdown.Countdown),
		failures:   make(map[failureKey]error),
	}
}

// FailOn makes op return err. An empty name matches every name.
func (s *MemoryStore) FailOn(op, name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[failureKey{op: op, name: name}] = err
}

// Save stores cd, replacing any countdown with the same name.
func (s *MemoryStore) Save(cd countdown.Countdown) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(OpSave, cd.Name)
	if err := s.failure(OpSave, cd.Name); err != nil {
		return err
	}
	if err := countdown.ValidateName(cd.Name); err != nil {
		return &countdown.SaveError{Name: cd.Name, Err: err}
	}

	s.countdowns[cd.Name] = cd
	return nil
}

// Load returns the countdown called name.
func (s *MemoryStore) Load(name string) (countdown.Countdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(OpLoad, name)
	if err := s.failure(OpLoad, name); err != nil {
		return countdown.Countdown{}, err
	}

	cd, ok := s.countdowns[name]
	if !ok {
		return countdown.Countdown{}, &countdown.NotFoundError{Name: name}
	}
	return cd, nil
}

// Delete removes the countdown called name.
func (s *MemoryStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(OpDelete, name)
	if err := s.failure(OpDelete, name); err != nil {
		return err
	}

	if _, ok := s.countdowns[name]; !ok {
		return &countdown.NotFoundError{Name: name}
	}
	delete(s.countdowns, name)
	return nil
}

// List returns every stored name, sorted.
func (s *MemoryStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(OpList, "")
	if err := s.failure(OpList, ""); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(s.countdowns))
	for name := range s.countdowns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Len returns the number of stored countdowns.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.countdowns)
}

func (s *MemoryStore) record(op, name string) {
	if name == "" {
		s.Calls = append(s.Calls, op)
		return
	}
	s.Calls = append(s.Calls, op+":"+name)
}

func (s *MemoryStore) failure(op, name string) error {
	if err, ok := s.failures[failureKey{op: op, name: name}]; ok {
		return err
	}
	return s.failures[failureKey{op: op}]
}

var _ countdown.Store = (*MemoryStore)(nil)

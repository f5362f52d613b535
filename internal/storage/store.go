// Package storage provides the opaque key-value byte store that application
// state is persisted into between runs.
package storage

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"
)

// ErrWriteFailed is returned by a MemoryStore armed with FailWrites
var ErrWriteFailed = errors.New("storage write failed")

// Store is a key-value byte store. A missing key reports ok == false.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// PreferencesStore keeps records in the host application's preferences
type PreferencesStore struct {
	prefs fyne.Preferences
}

func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

func (ps *PreferencesStore) Get(key string) ([]byte, bool) {
	value := ps.prefs.String(key)
	if value == "" {
		return nil, false
	}
	return []byte(value), true
}

func (ps *PreferencesStore) Set(key string, value []byte) error {
	ps.prefs.SetString(key, string(value))
	return nil
}

// MemoryStore is an in-process store for headless runs
type MemoryStore struct {
	mu         sync.RWMutex
	records    map[string][]byte
	failWrites bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (ms *MemoryStore) Get(key string) ([]byte, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	value, ok := ms.records[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true
}

func (ms *MemoryStore) Set(key string, value []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.failWrites {
		return ErrWriteFailed
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	ms.records[key] = stored
	return nil
}

// FailWrites makes every subsequent Set return ErrWriteFailed
func (ms *MemoryStore) FailWrites(fail bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.failWrites = fail
}

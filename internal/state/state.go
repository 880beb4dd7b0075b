package state

import (
	"sync"

	"github.com/rook-computer/streamclock/internal/settings"
)

// Snapshot is a copy of the store at one point in time.
type Snapshot struct {
	Settings settings.Settings
	Revision uint64
}

// Store holds the active clock configuration. Settings are never edited field by
// field; Replace swaps the whole record.
type Store struct {
	mu       sync.RWMutex
	settings settings.Settings
	revision uint64
}

func NewStore() *Store {
	return &Store{settings: settings.Defaults()}
}

// NewStoreWith seeds the store with s in canonical form.
func NewStoreWith(s settings.Settings) *Store {
	return &Store{settings: s.Canonical()}
}

func (store *Store) Snapshot() Snapshot {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return Snapshot{Settings: store.settings, Revision: store.revision}
}

// Settings returns the current record.
func (store *Store) Settings() settings.Settings {
	return store.Snapshot().Settings
}

// Replace installs s and returns the new revision.
func (store *Store) Replace(s settings.Settings) uint64 {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.settings = s.Canonical()
	store.revision++
	return store.revision
}

func (store *Store) Reset() {
	store.Replace(settings.Defaults())
}

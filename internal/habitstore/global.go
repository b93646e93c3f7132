package habitstore

import (
	"fmt"
	"sync"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// Global store instance for the CLI shell. The analytic core never touches
// this; it receives the store as an explicit dependency.
var (
	globalStore contract.HabitStore
	initOnce    sync.Once
	closeOnce   sync.Once
)

// InitStore initializes the global habit store. Safe to call from multiple
// goroutines; the store is opened exactly once.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error
	initOnce.Do(func() {
		store, err := NewStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize habit store: %w", err)
			return
		}
		globalStore = store
	})
	return initErr
}

// GetStore returns the global habit store, or nil before InitStore.
func GetStore() contract.HabitStore {
	return globalStore
}

// CloseStore should be called on application shutdown.
func CloseStore() {
	closeOnce.Do(func() {
		if globalStore != nil {
			if err := globalStore.Close(); err != nil {
				contract.LogWarn("Failed to close habit store", err)
			}
		}
	})
}

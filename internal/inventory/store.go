// Package inventory loads the parsed inventory data set from disk and holds
// it as an immutable snapshot behind a read-write lock. Request handlers read
// whole snapshots; reloading swaps the current snapshot in one step.
package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/poyrazK/dnsaudit/internal/core/domain"
	"github.com/poyrazK/dnsaudit/internal/infrastructure/metrics"
)

// Store holds the currently loaded inventory snapshot.
type Store struct {
	path string

	mu   sync.RWMutex
	snap *domain.InventorySnapshot
}

// NewStore creates a store reading from the given JSON file. The store is
// empty until the first Load.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		snap: &domain.InventorySnapshot{
			ID:       uuid.New().String(),
			LoadedAt: time.Now(),
			Data:     domain.Inventory{BusinessUnits: map[string]domain.BusinessUnit{}},
		},
	}
}

// Load reads and parses the inventory file, then swaps it in as the current
// snapshot. On failure the previous snapshot stays in place.
func (s *Store) Load() (*domain.InventorySnapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		metrics.InventoryReloads.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("reading inventory file: %w", err)
	}

	var data domain.Inventory
	if err := json.Unmarshal(raw, &data); err != nil {
		metrics.InventoryReloads.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("parsing inventory file: %w", err)
	}
	if data.BusinessUnits == nil {
		data.BusinessUnits = map[string]domain.BusinessUnit{}
	}

	snap := &domain.InventorySnapshot{
		ID:       uuid.New().String(),
		LoadedAt: time.Now(),
		Data:     data,
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	metrics.InventoryReloads.WithLabelValues("ok").Inc()
	metrics.InventorySystems.Set(float64(countSystems(data)))
	return snap, nil
}

// Snapshot returns the current snapshot. Callers must not mutate it.
func (s *Store) Snapshot() *domain.InventorySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func countSystems(data domain.Inventory) int {
	total := 0
	for _, unit := range data.BusinessUnits {
		total += len(unit.Systems)
	}
	return total
}

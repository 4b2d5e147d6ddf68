package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/poyrazK/dnsaudit/internal/core/domain"
)

// CertFileStore holds the combined certificate validation entries loaded
// from a JSON file, with the same swap-on-reload discipline as Store.
type CertFileStore struct {
	path string

	mu      sync.RWMutex
	entries []domain.CertEntry
}

// NewCertFileStore creates an empty store reading from the given file.
func NewCertFileStore(path string) *CertFileStore {
	return &CertFileStore{path: path}
}

// Reload reads and parses the certificate file, replacing the current entries.
func (s *CertFileStore) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("reading certificate file: %w", err)
	}

	var entries []domain.CertEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parsing certificate file: %w", err)
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return nil
}

// Entries returns the current entries. Callers must not mutate them.
func (s *CertFileStore) Entries() []domain.CertEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

package ports

import (
	"context"
	"time"

	"github.com/poyrazK/dnsaudit/internal/core/domain"
)

// InventoryStore holds the currently loaded inventory snapshot and supports
// whole-snapshot replacement on reload.
type InventoryStore interface {
	Snapshot() *domain.InventorySnapshot
	Load() (*domain.InventorySnapshot, error)
}

// CertStore holds the raw certificate validation entries.
type CertStore interface {
	Entries() []domain.CertEntry
	Reload() error
}

// InventoryService exposes the inventory read model served by the API.
type InventoryService interface {
	Summary(ctx context.Context) (domain.Summary, error)
	BusinessUnits(ctx context.Context) (map[string]domain.BusinessUnitStats, error)
	BusinessUnit(ctx context.Context, name string) (domain.BusinessUnit, error)
	Systems(ctx context.Context) ([]domain.System, error)
	SystemsWithIssues(ctx context.Context) ([]domain.System, error)
	Reload(ctx context.Context) (*domain.InventorySnapshot, error)
}

// CertService exposes processed certificate expiry data.
type CertService interface {
	Certificates(ctx context.Context) ([]domain.CertStatus, error)
}

// Cache is a byte cache with per-entry TTL, used by the pull-based data
// client to bound how often dashboards re-fetch the API.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

package services

import (
	"context"
	"errors"
	"sort"

	"github.com/poyrazK/dnsaudit/internal/core/domain"
	"github.com/poyrazK/dnsaudit/internal/core/ports"
)

// ErrBusinessUnitNotFound is returned when a requested unit is not in the
// current snapshot.
var ErrBusinessUnitNotFound = errors.New("business unit not found")

type inventoryService struct {
	store ports.InventoryStore
}

// NewInventoryService creates the read-model service backed by a snapshot store.
func NewInventoryService(store ports.InventoryStore) ports.InventoryService {
	return &inventoryService{store: store}
}

func (s *inventoryService) Summary(ctx context.Context) (domain.Summary, error) {
	return s.store.Snapshot().Data.Summary, nil
}

func (s *inventoryService) BusinessUnits(ctx context.Context) (map[string]domain.BusinessUnitStats, error) {
	units := s.store.Snapshot().Data.BusinessUnits
	stats := make(map[string]domain.BusinessUnitStats, len(units))
	for name, unit := range units {
		stats[name] = domain.BusinessUnitStats{
			HostsWithPopulatedEntries:    unit.HostsWithPopulatedEntries,
			HostsWithInternetRoutableDNS: unit.HostsWithInternetRoutableDNS,
			TotalSystems:                 len(unit.Systems),
		}
	}
	return stats, nil
}

func (s *inventoryService) BusinessUnit(ctx context.Context, name string) (domain.BusinessUnit, error) {
	unit, ok := s.store.Snapshot().Data.BusinessUnits[name]
	if !ok {
		return domain.BusinessUnit{}, ErrBusinessUnitNotFound
	}
	return unit, nil
}

func (s *inventoryService) Systems(ctx context.Context) ([]domain.System, error) {
	return s.collect(func(domain.System) bool { return true }), nil
}

func (s *inventoryService) SystemsWithIssues(ctx context.Context) ([]domain.System, error) {
	return s.collect(domain.System.HasIssues), nil
}

func (s *inventoryService) Reload(ctx context.Context) (*domain.InventorySnapshot, error) {
	return s.store.Load()
}

// collect flattens the per-unit system lists into one slice, annotating each
// system with its unit. Units are walked in sorted order so the output is
// deterministic across calls.
func (s *inventoryService) collect(keep func(domain.System) bool) []domain.System {
	units := s.store.Snapshot().Data.BusinessUnits

	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Strings(names)

	var systems []domain.System
	for _, name := range names {
		for _, sys := range units[name].Systems {
			if !keep(sys) {
				continue
			}
			sys.BusinessUnit = name
			systems = append(systems, sys)
		}
	}
	return systems
}

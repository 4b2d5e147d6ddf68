package domain

import "time"

// Summary holds the estate-wide inventory statistics.
type Summary struct {
	TotalHostsWithPopulatedEntries        int     `json:"total_hosts_with_populated_entries"`
	HostsWithBigfix                       int     `json:"hosts_with_bigfix"`
	CombinedHostsEmptyDNS                 int     `json:"combined_hosts_empty_dns"`
	HostsWithPopulatedEntriesFromEmptyDNS int     `json:"hosts_with_populated_entries_from_empty_dns"`
	PercentageWithPopulatedEntries        float64 `json:"percentage_with_populated_entries"`
	HostsUsingInternetRoutableIPs         int     `json:"hosts_using_internet_routable_ips"`
}

// System is a single inventoried host.
type System struct {
	Hostname   string   `json:"hostname"`
	IP         string   `json:"ip"`
	DNSServers []string `json:"dns_servers"`
	Bigfix     bool     `json:"bigfix"`
	Issues     []string `json:"issues"`
	// BusinessUnit is populated when systems are listed across units.
	BusinessUnit string `json:"business_unit,omitempty"`
}

// HasIssues reports whether the system carries at least one flagged issue.
func (s System) HasIssues() bool {
	return len(s.Issues) > 0
}

// BusinessUnit groups the systems belonging to one organizational unit.
type BusinessUnit struct {
	HostsWithPopulatedEntries    int      `json:"hosts_with_populated_entries"`
	HostsWithInternetRoutableDNS int      `json:"hosts_with_internet_routable_dns"`
	Systems                      []System `json:"systems"`
}

// BusinessUnitStats is the per-unit roll-up exposed by the listing endpoint.
type BusinessUnitStats struct {
	HostsWithPopulatedEntries    int `json:"hosts_with_populated_entries"`
	HostsWithInternetRoutableDNS int `json:"hosts_with_internet_routable_dns"`
	TotalSystems                 int `json:"total_systems"`
}

// Inventory is one complete parsed inventory data set.
type Inventory struct {
	Summary       Summary                 `json:"summary"`
	BusinessUnits map[string]BusinessUnit `json:"business_units"`
}

// InventorySnapshot is one immutable load of the inventory file. Readers
// always see a whole snapshot; a reload swaps the pointer instead of mutating
// the data in place.
type InventorySnapshot struct {
	ID       string    `json:"id"`
	LoadedAt time.Time `json:"loaded_at"`
	Data     Inventory `json:"data"`
}

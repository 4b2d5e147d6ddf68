package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/poyrazK/dnsaudit/internal/adapters/datasource"
	"github.com/poyrazK/dnsaudit/internal/cache"
	"github.com/poyrazK/dnsaudit/internal/config"
	"github.com/poyrazK/dnsaudit/internal/core/domain"
	"github.com/poyrazK/dnsaudit/internal/core/ports"
)

func main() {
	_ = godotenv.Load()

	apiURL := flag.String("api", "http://localhost:8080", "inventory API base URL")
	view := flag.String("view", "summary", "view to render: summary, units, issues or certs")
	ttl := flag.Duration("ttl", 0, "how long fetched data stays cached (defaults to DNSAUDIT_CACHE_TTL)")
	redisAddr := flag.String("redis", "", "redis address for a shared cache (defaults to DNSAUDIT_REDIS_ADDR, in-memory when both are empty)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-api url] [-view name] [-ttl duration] [-redis addr]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Renders inventory API data as terminal tables.")
		flag.PrintDefaults()
	}
	flag.Parse()

	store, cacheTTL := newCache(config.Load(), *redisAddr, *ttl)
	client := datasource.NewClient(*apiURL, store, cacheTTL)
	ctx := context.Background()

	var err error
	switch *view {
	case "summary":
		err = renderSummary(ctx, client)
	case "units":
		err = renderUnits(ctx, client)
	case "issues":
		err = renderIssues(ctx, client)
	case "certs":
		err = renderCerts(ctx, client)
	default:
		fmt.Fprintf(os.Stderr, "dnswatch: unknown view %q\n", *view)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dnswatch: %v\n", err)
		os.Exit(1)
	}
}

// newCache resolves the cache flags against the environment configuration,
// flags winning when set. Redis credentials only come from the environment.
func newCache(cfg *config.Config, redisAddr string, ttl time.Duration) (ports.Cache, time.Duration) {
	if redisAddr == "" {
		redisAddr = cfg.Cache.RedisAddr
	}
	if ttl <= 0 {
		ttl = cfg.Cache.TTL
	}
	if redisAddr != "" {
		return cache.NewRedis(redisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB), ttl
	}
	return cache.NewMemory(), ttl
}

func renderSummary(ctx context.Context, client *datasource.Client) error {
	summary, err := client.Summary(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Hosts with populated entries\t%d\n", summary.TotalHostsWithPopulatedEntries)
	fmt.Fprintf(w, "Hosts with BigFix\t%d\n", summary.HostsWithBigfix)
	fmt.Fprintf(w, "Hosts with empty DNS\t%d\n", summary.CombinedHostsEmptyDNS)
	fmt.Fprintf(w, "Recovered from empty DNS\t%d\n", summary.HostsWithPopulatedEntriesFromEmptyDNS)
	fmt.Fprintf(w, "Populated percentage\t%.1f%%\n", summary.PercentageWithPopulatedEntries)
	fmt.Fprintf(w, "Internet-routable IPs\t%d\n", summary.HostsUsingInternetRoutableIPs)
	return w.Flush()
}

func renderUnits(ctx context.Context, client *datasource.Client) error {
	units, err := client.BusinessUnits(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BUSINESS UNIT\tSYSTEMS\tPOPULATED\tROUTABLE DNS")
	for _, name := range names {
		stats := units[name]
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n",
			name, stats.TotalSystems, stats.HostsWithPopulatedEntries, stats.HostsWithInternetRoutableDNS)
	}
	return w.Flush()
}

func renderIssues(ctx context.Context, client *datasource.Client) error {
	systems, err := client.SystemsWithIssues(ctx)
	if err != nil {
		return err
	}
	if len(systems) == 0 {
		fmt.Println("No systems with issues.")
		return nil
	}

	warn := color.New(color.FgYellow).SprintFunc()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "HOSTNAME\tBUSINESS UNIT\tIP\tISSUES")
	for _, sys := range systems {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			sys.Hostname, sys.BusinessUnit, sys.IP, warn(strings.Join(sys.Issues, "; ")))
	}
	return w.Flush()
}

func renderCerts(ctx context.Context, client *datasource.Client) error {
	certs, err := client.Certificates(ctx)
	if err != nil {
		return err
	}

	// Soonest expiry first; unparseable expirations sink to the bottom.
	sort.SliceStable(certs, func(i, j int) bool {
		return daysOrMax(certs[i]) < daysOrMax(certs[j])
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DOMAIN\tDIGICERT\tDAYS\tSECTIGO\tDAYS")
	for _, cert := range certs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			cert.Domain,
			colorSeverity(cert.DigicertStatus, cert.DigicertSeverity),
			colorSeverity(formatDays(cert.DigicertDays), cert.DigicertSeverity),
			colorSeverity(cert.SectigoStatus, cert.SectigoSeverity),
			colorSeverity(formatDays(cert.SectigoDays), cert.SectigoSeverity))
	}
	return w.Flush()
}

func daysOrMax(cert domain.CertStatus) int {
	min := int(^uint(0) >> 1)
	if cert.DigicertDays != nil {
		min = *cert.DigicertDays
	}
	if cert.SectigoDays != nil && *cert.SectigoDays < min {
		min = *cert.SectigoDays
	}
	return min
}

func formatDays(days *int) string {
	if days == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *days)
}

func colorSeverity(s string, severity domain.CertSeverity) string {
	switch severity {
	case domain.SeverityExpired, domain.SeverityCritical:
		return color.New(color.FgRed).Sprint(s)
	case domain.SeverityWarning:
		return color.New(color.FgYellow).Sprint(s)
	case domain.SeverityOK:
		return color.New(color.FgGreen).Sprint(s)
	default:
		return s
	}
}

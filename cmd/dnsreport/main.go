package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poyrazK/dnsaudit/internal/dns/report"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <records.csv>\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Generate a categorized DNS record report from a CSV export.")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	path, err := resolvePath(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "dnsreport: %v\n", err)
		os.Exit(1)
	}

	records, err := report.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dnsreport: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(report.BuildReport(records))
}

// resolvePath expands a leading ~ and resolves the path to an absolute one
// before the file is opened.
func resolvePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

package report

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/poyrazK/dnsaudit/internal/core/domain"
)

// Category pairs a report section title with its classifier.
type Category struct {
	Title  string
	Filter func([]domain.Record) []domain.Record
}

// Categories lists the report sections in their fixed output order.
func Categories() []Category {
	return []Category{
		{"CAA Issue Records (non-allowed)", FilterCAAExceptions},
		{"Email Records", FilterEmail},
		{"FTP Records", FilterFTP},
		{"NS Records", FilterNS},
		{"Relay Records", FilterRelay},
		{"Sendgrid Records", FilterSendgrid},
		{"Tor Records", FilterTor},
	}
}

// Section is one classified category ready for rendering.
type Section struct {
	Title   string
	Records []domain.Record
}

// Classify runs every category's classifier over the same input. The
// classifiers are independent and read-only, so their order does not matter;
// sections come back in report order.
func Classify(records []domain.Record) []Section {
	categories := Categories()
	sections := make([]Section, 0, len(categories))
	for _, cat := range categories {
		sections = append(sections, Section{Title: cat.Title, Records: cat.Filter(records)})
	}
	return sections
}

// BuildReport classifies the records and renders the complete report
// document: one section per category, blank-line separated, trimmed, with a
// single trailing newline.
func BuildReport(records []domain.Record) string {
	sections := Classify(records)
	parts := make([]string, 0, len(sections))
	for _, sec := range sections {
		parts = append(parts, FormatSection(sec.Title, sec.Records))
	}
	return strings.TrimSpace(strings.Join(parts, "\n")) + "\n"
}

// FormatSection renders one category as an aligned text table. Rows are
// sorted by lowered name then uppered type; the sort is stable, so ties keep
// their input order. Name, type and TTL columns are left-justified to the
// widest value in the section; rdata trails unpadded.
func FormatSection(title string, records []domain.Record) string {
	header := fmt.Sprintf("=== %s ===", title)
	if len(records) == 0 {
		return header + "\n(no matches)\n"
	}

	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		ni, nj := sorted[i].NameLower(), sorted[j].NameLower()
		if ni != nj {
			return ni < nj
		}
		return sorted[i].TypeUpper() < sorted[j].TypeUpper()
	})

	var nameWidth, typeWidth, ttlWidth int
	for _, rec := range sorted {
		if n := utf8.RuneCountInString(rec.Name); n > nameWidth {
			nameWidth = n
		}
		if n := utf8.RuneCountInString(rec.Type); n > typeWidth {
			typeWidth = n
		}
		if n := utf8.RuneCountInString(rec.TTL); n > ttlWidth {
			ttlWidth = n
		}
	}

	lines := make([]string, 0, len(sorted)+3)
	lines = append(lines, header)
	lines = append(lines, fmt.Sprintf("%s  %s  %s  RDATA", pad("Name", nameWidth), pad("Type", typeWidth), pad("TTL", ttlWidth)))
	for _, rec := range sorted {
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s", pad(rec.Name, nameWidth), pad(rec.Type, typeWidth), pad(rec.TTL, ttlWidth), rec.Rdata))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// pad left-justifies s to width counted in characters, not bytes, so
// multi-byte names line up. Values wider than the column pass through intact.
func pad(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

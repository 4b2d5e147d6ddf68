package report

import (
	"strings"

	"github.com/poyrazK/dnsaudit/internal/core/domain"
)

// caaAllowedIssuers are the certificate authorities we expect to hold issue
// grants; CAA properties naming them are not reported.
var caaAllowedIssuers = []string{"sectigo", "digicert", "entrust"}

// FilterCAAExceptions returns one synthetic record per CAA issue property
// granted to a CA outside the allow list. The rdata of an exported CAA row is
// a comma-separated property list; each offending property becomes its own
// record carrying the original name, type and TTL. "issuewild" properties are
// skipped, and a property naming an allowed CA is excluded even though it
// contains "issue" — the allow list wins. A single CAA record can therefore
// yield zero, one, or several output records.
func FilterCAAExceptions(records []domain.Record) []domain.Record {
	var matches []domain.Record
	for _, rec := range records {
		if !rec.IsType(domain.TypeCAA) {
			continue
		}
		for _, part := range strings.Split(rec.Rdata, ",") {
			token := strings.TrimSpace(part)
			lowered := strings.ToLower(token)
			if !strings.Contains(lowered, "issue") {
				continue
			}
			if strings.Contains(lowered, "issuewild") {
				continue
			}
			if containsAny(lowered, caaAllowedIssuers) {
				continue
			}
			matches = append(matches, domain.Record{
				Name:  rec.Name,
				Type:  rec.Type,
				TTL:   rec.TTL,
				Rdata: token,
			})
		}
	}
	return matches
}

// FilterEmail matches MX records plus any record whose name or rdata mentions
// mail or smtp.
func FilterEmail(records []domain.Record) []domain.Record {
	substrings := []string{"mail", "smtp"}
	var matches []domain.Record
	for _, rec := range records {
		switch {
		case rec.IsType(domain.TypeMX):
			matches = append(matches, rec)
		case containsAny(rec.NameLower(), substrings):
			matches = append(matches, rec)
		case containsAny(rec.RdataLower(), substrings):
			matches = append(matches, rec)
		}
	}
	return matches
}

// FilterFTP matches names mentioning ftp, excluding sftp and secureftp hosts.
func FilterFTP(records []domain.Record) []domain.Record {
	var matches []domain.Record
	for _, rec := range records {
		name := rec.NameLower()
		if !strings.Contains(name, "ftp") {
			continue
		}
		if strings.Contains(name, "sftp") || strings.Contains(name, "secureftp") {
			continue
		}
		matches = append(matches, rec)
	}
	return matches
}

// FilterNS matches name server records.
func FilterNS(records []domain.Record) []domain.Record {
	var matches []domain.Record
	for _, rec := range records {
		if rec.IsType(domain.TypeNS) {
			matches = append(matches, rec)
		}
	}
	return matches
}

// FilterRelay matches names mentioning relay.
func FilterRelay(records []domain.Record) []domain.Record {
	var matches []domain.Record
	for _, rec := range records {
		if strings.Contains(rec.NameLower(), "relay") {
			matches = append(matches, rec)
		}
	}
	return matches
}

// FilterSendgrid matches records whose name or rdata mentions sendgrid.
func FilterSendgrid(records []domain.Record) []domain.Record {
	var matches []domain.Record
	for _, rec := range records {
		if strings.Contains(rec.NameLower(), "sendgrid") || strings.Contains(rec.RdataLower(), "sendgrid") {
			matches = append(matches, rec)
		}
	}
	return matches
}

// FilterTor matches names mentioning tor.
func FilterTor(records []domain.Record) []domain.Record {
	var matches []domain.Record
	for _, rec := range records {
		if strings.Contains(rec.NameLower(), "tor") {
			matches = append(matches, rec)
		}
	}
	return matches
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

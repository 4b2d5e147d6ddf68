package report

import (
	"strings"
	"testing"

	"github.com/poyrazK/dnsaudit/internal/core/domain"
)

func rec(name, rtype, ttl, rdata string) domain.Record {
	return domain.Record{Name: name, Type: rtype, TTL: ttl, Rdata: rdata}
}

func TestFilterCAAExceptions(t *testing.T) {
	tests := []struct {
		name  string
		input []domain.Record
		want  []string // expected rdata values, in order
	}{
		{
			name:  "issuewild excluded, non-allowed CA kept",
			input: []domain.Record{rec("@", "CAA", "3600", `0 issue "letsencrypt.org", 0 issuewild ";"`)},
			want:  []string{`0 issue "letsencrypt.org"`},
		},
		{
			name:  "allow-listed CA wins over issue marker",
			input: []domain.Record{rec("@", "CAA", "3600", `0 issue "digicert.com"`)},
			want:  nil,
		},
		{
			name: "one record fragments into multiple tokens",
			input: []domain.Record{
				rec("@", "CAA", "3600", `0 issue "letsencrypt.org", 0 issue "globalsign.com", 0 issue "sectigo.com"`),
			},
			want: []string{`0 issue "letsencrypt.org"`, `0 issue "globalsign.com"`},
		},
		{
			name:  "non-CAA records ignored",
			input: []domain.Record{rec("www", "A", "300", `0 issue "letsencrypt.org"`)},
			want:  nil,
		},
		{
			name:  "type matched case-insensitively",
			input: []domain.Record{rec("@", "caa", "3600", `0 issue "buypass.com"`)},
			want:  []string{`0 issue "buypass.com"`},
		},
		{
			name:  "tokens without issue marker skipped",
			input: []domain.Record{rec("@", "CAA", "3600", `0 iodef "mailto:ops@example.com"`)},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCAAExceptions(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d matches, got %d: %+v", len(tt.want), len(got), got)
			}
			for i, rdata := range tt.want {
				if got[i].Rdata != rdata {
					t.Errorf("Match %d: expected rdata %q, got %q", i, rdata, got[i].Rdata)
				}
			}
		})
	}
}

func TestFilterCAAExceptions_SyntheticRecords(t *testing.T) {
	original := rec("@", "CAA", "3600", `0 issue "letsencrypt.org", 0 issue "globalsign.com"`)
	got := FilterCAAExceptions([]domain.Record{original})

	if len(got) != 2 {
		t.Fatalf("Expected 2 synthetic records, got %d", len(got))
	}
	for i, m := range got {
		if m.Name != original.Name || m.Type != original.Type || m.TTL != original.TTL {
			t.Errorf("Match %d: name/type/ttl not carried over: %+v", i, m)
		}
		if !strings.Contains(original.Rdata, m.Rdata) {
			t.Errorf("Match %d: rdata %q is not a token of the original %q", i, m.Rdata, original.Rdata)
		}
	}
}

func TestFilterEmail(t *testing.T) {
	records := []domain.Record{
		rec("mail.example.com", "MX", "3600", "10 mx1.example.com"),
		rec("smtp-out.example.com", "A", "300", "10.0.0.4"),
		rec("www.example.com", "CNAME", "300", "mailgun.example.net"),
		rec("www.example.com", "A", "300", "10.0.0.5"),
		rec("db.example.com", "mx", "300", "10 in.example.com"),
	}

	got := FilterEmail(records)
	if len(got) != 4 {
		t.Fatalf("Expected 4 matches, got %d: %+v", len(got), got)
	}
	// Input order preserved.
	wantNames := []string{"mail.example.com", "smtp-out.example.com", "www.example.com", "db.example.com"}
	for i, name := range wantNames {
		if got[i].Name != name {
			t.Errorf("Match %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestFilterFTP(t *testing.T) {
	records := []domain.Record{
		rec("ftp.example.com", "A", "300", "10.0.0.5"),
		rec("sftp.example.com", "A", "300", "10.0.0.6"),
		rec("secureftp.example.com", "A", "300", "10.0.0.7"),
		rec("FTP2.example.com", "A", "300", "10.0.0.8"),
	}

	got := FilterFTP(records)
	if len(got) != 2 {
		t.Fatalf("Expected 2 matches, got %d: %+v", len(got), got)
	}
	if got[0].Name != "ftp.example.com" || got[1].Name != "FTP2.example.com" {
		t.Errorf("Unexpected matches: %+v", got)
	}
}

func TestFilterNS(t *testing.T) {
	records := []domain.Record{
		rec("example.com", "NS", "86400", "ns1.example.com"),
		rec("example.com", "ns", "86400", "ns2.example.com"),
		rec("www.example.com", "A", "300", "10.0.0.5"),
	}

	got := FilterNS(records)
	if len(got) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(got))
	}
}

func TestFilterRelay(t *testing.T) {
	records := []domain.Record{
		rec("smtp-relay.example.com", "A", "300", "10.0.0.9"),
		rec("www.example.com", "A", "300", "relay.example.net"),
	}

	got := FilterRelay(records)
	if len(got) != 1 {
		t.Fatalf("Expected 1 match (name only), got %d", len(got))
	}
	if got[0].Name != "smtp-relay.example.com" {
		t.Errorf("Unexpected match: %+v", got[0])
	}
}

func TestFilterSendgrid(t *testing.T) {
	records := []domain.Record{
		rec("em123.example.com", "CNAME", "300", "u123.wl.sendgrid.net"),
		rec("sendgrid.example.com", "A", "300", "10.0.0.10"),
		rec("www.example.com", "A", "300", "10.0.0.5"),
	}

	got := FilterSendgrid(records)
	if len(got) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(got))
	}
}

func TestFilterTor_NaiveSubstring(t *testing.T) {
	// Substring matching is intentionally naive: "historian" contains "tor".
	records := []domain.Record{
		rec("tor-exit.example.com", "A", "300", "10.0.0.11"),
		rec("historian.example.com", "A", "300", "10.0.0.12"),
		rec("www.example.com", "A", "300", "10.0.0.5"),
	}

	got := FilterTor(records)
	if len(got) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(got))
	}
	if got[1].Name != "historian.example.com" {
		t.Errorf("Expected naive substring match on historian, got %+v", got)
	}
}

func TestClassify_MXRecordOnlyInEmail(t *testing.T) {
	records := []domain.Record{rec("mail.example.com", "MX", "3600", "10 mx1.example.com")}

	sections := Classify(records)
	for _, sec := range sections {
		switch sec.Title {
		case "Email Records":
			if len(sec.Records) != 1 {
				t.Errorf("Expected 1 email match, got %d", len(sec.Records))
			}
		default:
			if len(sec.Records) != 0 {
				t.Errorf("Category %q: expected no matches, got %+v", sec.Title, sec.Records)
			}
		}
	}
}

func TestClassifiers_InputUnchanged(t *testing.T) {
	records := []domain.Record{
		rec("mail.example.com", "MX", "3600", "10 mx1.example.com"),
		rec("@", "CAA", "3600", `0 issue "letsencrypt.org"`),
	}
	snapshot := make([]domain.Record, len(records))
	copy(snapshot, records)

	Classify(records)

	for i := range snapshot {
		if records[i] != snapshot[i] {
			t.Errorf("Record %d mutated by classification: %+v", i, records[i])
		}
	}
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/poyrazK/dnsaudit/internal/core/domain"
)

type mockCertStore struct {
	entries []domain.CertEntry
}

func (m *mockCertStore) Entries() []domain.CertEntry { return m.entries }
func (m *mockCertStore) Reload() error               { return nil }

func TestParseExpiration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // RFC 3339 date, empty when unparseable
	}{
		{"iso date", "2026-03-15", "2026-03-15"},
		{"iso timestamp with Z", "2026-03-15T10:30:00Z", "2026-03-15"},
		{"iso timestamp lowercase z", "2026-03-15T10:30:00z", "2026-03-15"},
		{"short form", "03-15-26", "2026-03-15"},
		{"short form century bump", "12-31-99", "2099-12-31"},
		{"empty", "", ""},
		{"garbage", "soon", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseExpiration(tt.input)
			if tt.want == "" {
				if ok {
					t.Fatalf("Expected parse failure, got %v", got)
				}
				return
			}
			if !ok {
				t.Fatalf("Expected successful parse of %q", tt.input)
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got.Format("2006-01-02"))
			}
		})
	}
}

func TestExpiryInfo_Severity(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		exp      string
		days     int
		severity domain.CertSeverity
	}{
		{"expired", "2025-12-01", -31, domain.SeverityExpired},
		{"critical", "2026-01-20", 19, domain.SeverityCritical},
		{"warning", "2026-02-15", 45, domain.SeverityWarning},
		{"ok", "2026-06-01", 151, domain.SeverityOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, severity := expiryInfo(tt.exp, now)
			if days == nil {
				t.Fatal("Expected a day count")
			}
			if *days != tt.days {
				t.Errorf("Expected %d days, got %d", tt.days, *days)
			}
			if severity != tt.severity {
				t.Errorf("Expected severity %s, got %s", tt.severity, severity)
			}
		})
	}
}

func TestExpiryInfo_Unparseable(t *testing.T) {
	days, severity := expiryInfo("pending", time.Now())
	if days != nil {
		t.Errorf("Expected no day count, got %d", *days)
	}
	if severity != domain.SeverityUnknown {
		t.Errorf("Expected unknown severity, got %s", severity)
	}
}

func TestCertificates(t *testing.T) {
	store := &mockCertStore{
		entries: []domain.CertEntry{
			{
				Domain:   "example.com",
				Digicert: domain.AuthorityState{Status: "validated", Expiration: "2026-03-15"},
				Sectigo:  domain.AuthorityState{Status: "pending"},
			},
		},
	}
	svc := &certService{
		store: store,
		now:   func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	}

	statuses, err := svc.Certificates(context.Background())
	if err != nil {
		t.Fatalf("Certificates failed: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("Expected 1 status, got %d", len(statuses))
	}

	st := statuses[0]
	if st.Domain != "example.com" || st.DigicertStatus != "validated" {
		t.Errorf("Unexpected status: %+v", st)
	}
	if st.DigicertDays == nil || *st.DigicertDays != 73 {
		t.Errorf("Expected 73 days for digicert, got %v", st.DigicertDays)
	}
	if st.DigicertSeverity != domain.SeverityOK {
		t.Errorf("Expected ok severity, got %s", st.DigicertSeverity)
	}
	if st.SectigoDays != nil || st.SectigoSeverity != domain.SeverityUnknown {
		t.Errorf("Expected unknown sectigo state, got %+v", st)
	}
}

package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/poyrazK/dnsaudit/internal/core/domain"
	"github.com/poyrazK/dnsaudit/internal/core/ports"
)

// expirationLayouts are tried in order: ISO 8601 timestamps first, then the
// short MM-DD-YY form used by older exports.
var expirationLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type certService struct {
	store ports.CertStore
	now   func() time.Time
}

// NewCertService creates the certificate expiry service backed by a cert store.
func NewCertService(store ports.CertStore) ports.CertService {
	return &certService{store: store, now: time.Now}
}

func (s *certService) Certificates(ctx context.Context) ([]domain.CertStatus, error) {
	entries := s.store.Entries()
	now := s.now()

	statuses := make([]domain.CertStatus, 0, len(entries))
	for _, entry := range entries {
		st := domain.CertStatus{
			Domain:         entry.Domain,
			DigicertStatus: entry.Digicert.Status,
			DigicertExpiry: entry.Digicert.Expiration,
			SectigoStatus:  entry.Sectigo.Status,
			SectigoExpiry:  entry.Sectigo.Expiration,
		}
		st.DigicertDays, st.DigicertSeverity = expiryInfo(entry.Digicert.Expiration, now)
		st.SectigoDays, st.SectigoSeverity = expiryInfo(entry.Sectigo.Expiration, now)
		statuses = append(statuses, st)
	}
	return statuses, nil
}

// ParseExpiration parses an expiration date in ISO 8601 or MM-DD-YY form.
// A trailing z/Z marker is stripped first. Two-digit years landing before
// 2000 are bumped a century forward.
func ParseExpiration(s string) (time.Time, bool) {
	s = strings.TrimRight(s, "zZ")
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range expirationLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse("01-02-06", s); err == nil {
		if t.Year() < 2000 {
			t = t.AddDate(100, 0, 0)
		}
		return t, true
	}
	return time.Time{}, false
}

// expiryInfo computes whole days until expiration and the severity bucket.
// Unparseable dates yield no day count and SeverityUnknown.
func expiryInfo(exp string, now time.Time) (*int, domain.CertSeverity) {
	t, ok := ParseExpiration(exp)
	if !ok {
		return nil, domain.SeverityUnknown
	}
	days := int(math.Floor(t.Sub(now).Hours() / 24))
	return &days, severityFor(days)
}

func severityFor(days int) domain.CertSeverity {
	switch {
	case days < 0:
		return domain.SeverityExpired
	case days <= 30:
		return domain.SeverityCritical
	case days <= 60:
		return domain.SeverityWarning
	default:
		return domain.SeverityOK
	}
}

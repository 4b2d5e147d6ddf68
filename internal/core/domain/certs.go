package domain

// CertSeverity buckets a certificate by how close it is to expiry.
type CertSeverity string

const (
	// SeverityExpired marks certificates already past their expiration date.
	SeverityExpired CertSeverity = "expired"
	// SeverityCritical marks certificates expiring within 30 days.
	SeverityCritical CertSeverity = "critical"
	// SeverityWarning marks certificates expiring within 60 days.
	SeverityWarning CertSeverity = "warning"
	// SeverityOK marks certificates with comfortable runway.
	SeverityOK CertSeverity = "ok"
	// SeverityUnknown marks certificates whose expiration could not be parsed.
	SeverityUnknown CertSeverity = "unknown"
)

// AuthorityState is the validation state of a domain at one certificate authority.
type AuthorityState struct {
	Status     string `json:"status"`
	Expiration string `json:"expiration,omitempty"`
}

// CertEntry is a single domain's raw DCV record as stored on disk.
type CertEntry struct {
	Domain   string         `json:"domain"`
	Digicert AuthorityState `json:"digicert"`
	Sectigo  AuthorityState `json:"sectigo"`
}

// CertStatus is the processed view of a CertEntry served by the API: raw
// expiration strings enriched with days-remaining and a severity bucket.
type CertStatus struct {
	Domain           string       `json:"domain"`
	DigicertStatus   string       `json:"digicert_status"`
	DigicertExpiry   string       `json:"digicert_expiry,omitempty"`
	DigicertDays     *int         `json:"digicert_days,omitempty"`
	DigicertSeverity CertSeverity `json:"digicert_severity"`
	SectigoStatus    string       `json:"sectigo_status"`
	SectigoExpiry    string       `json:"sectigo_expiry,omitempty"`
	SectigoDays      *int         `json:"sectigo_days,omitempty"`
	SectigoSeverity  CertSeverity `json:"sectigo_severity"`
}

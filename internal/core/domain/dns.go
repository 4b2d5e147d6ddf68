// Package domain contains the core entities shared by the dnsaudit tools.
package domain

import "strings"

// RecordType represents the type of a DNS record (e.g., A, AAAA, MX).
type RecordType string

const (
	// TypeA represents an IPv4 address record.
	TypeA RecordType = "A"
	// TypeAAAA represents an IPv6 address record.
	TypeAAAA RecordType = "AAAA"
	// TypeCNAME represents a canonical name record.
	TypeCNAME RecordType = "CNAME"
	// TypeMX represents a mail exchange record.
	TypeMX RecordType = "MX"
	// TypeTXT represents a text record.
	TypeTXT RecordType = "TXT"
	// TypeNS represents a name server record.
	TypeNS RecordType = "NS"
	// TypeSOA represents a start of authority record.
	TypeSOA RecordType = "SOA"
	// TypePTR represents a pointer record.
	TypePTR RecordType = "PTR"
	// TypeSRV represents a service locator record (RFC 2782).
	TypeSRV RecordType = "SRV"
	// TypeCAA represents a certification authority authorization record (RFC 8659).
	TypeCAA RecordType = "CAA"
)

// Record is a flattened DNS resource record as it appears in a CSV export.
// All four fields are display text: the TTL is deliberately kept as a string
// and never parsed. Records are value types and are never mutated after
// construction; a classifier that isolates part of the rdata builds a new
// Record instead.
type Record struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	TTL   string `json:"ttl"`
	Rdata string `json:"rdata"`
}

// NameLower returns the owner name lowered for case-insensitive matching.
func (r Record) NameLower() string {
	return strings.ToLower(r.Name)
}

// TypeUpper returns the record type mnemonic uppered for comparison.
func (r Record) TypeUpper() string {
	return strings.ToUpper(r.Type)
}

// RdataLower returns the record data lowered for case-insensitive matching.
func (r Record) RdataLower() string {
	return strings.ToLower(r.Rdata)
}

// IsType reports whether the record has the given type, ignoring case.
func (r Record) IsType(t RecordType) bool {
	return r.TypeUpper() == string(t)
}

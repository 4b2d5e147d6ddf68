// Package export pulls zone contents from an authoritative server over AXFR
// and writes them as CSV for offline auditing.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
)

// Header is the column order of the exported CSV. The first four columns are
// the audit input contract; zone and server record provenance.
var Header = []string{"name", "type", "ttl", "rdata", "zone", "server"}

// Row is one exported resource record.
type Row struct {
	Name   string
	Type   string
	TTL    string
	Rdata  string
	Zone   string
	Server string
}

// Exporter runs zone transfers per its configuration.
type Exporter struct {
	cfg *Config
	log *logrus.Logger
}

// NewExporter creates an Exporter for the given configuration.
func NewExporter(cfg *Config, log *logrus.Logger) *Exporter {
	return &Exporter{cfg: cfg, log: log}
}

// Run transfers every configured zone and writes the combined CSV. Zones that
// fail to transfer are logged and skipped. Returns the number of rows written.
func (e *Exporter) Run(ctx context.Context) (int, error) {
	runID := uuid.New().String()
	log := e.log.WithField("run_id", runID)

	var rows []Row
	for _, zone := range e.cfg.Zones {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		rrs, err := e.transferZone(zone)
		if err != nil {
			log.WithError(err).WithField("zone", zone).Error("zone transfer failed, skipping")
			continue
		}

		zoneRows := RowsFromRRs(zone, e.cfg.Server, rrs)
		log.WithFields(logrus.Fields{
			"zone":    zone,
			"records": len(zoneRows),
		}).Info("zone transferred")
		rows = append(rows, zoneRows...)
	}

	if err := WriteCSV(e.cfg.Output, rows); err != nil {
		return 0, err
	}

	log.WithFields(logrus.Fields{
		"output": e.cfg.Output,
		"total":  len(rows),
	}).Info("export complete")
	return len(rows), nil
}

// transferZone performs one AXFR and collects the resource records.
func (e *Exporter) transferZone(zone string) ([]dns.RR, error) {
	timeout := time.Duration(e.cfg.TimeoutSeconds) * time.Second
	transfer := &dns.Transfer{
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	msg := new(dns.Msg)
	msg.SetAxfr(dns.Fqdn(zone))

	if e.cfg.TSIG != nil {
		algo := e.cfg.TSIG.Algorithm
		if algo == "" {
			algo = dns.HmacSHA256
		}
		keyName := dns.Fqdn(e.cfg.TSIG.Name)
		msg.SetTsig(keyName, dns.Fqdn(algo), 300, time.Now().Unix())
		transfer.TsigSecret = map[string]string{keyName: e.cfg.TSIG.Secret}
	}

	envelopes, err := transfer.In(msg, e.cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("starting transfer of %s: %w", zone, err)
	}

	var rrs []dns.RR
	for env := range envelopes {
		if env.Error != nil {
			return nil, fmt.Errorf("transferring %s: %w", zone, env.Error)
		}
		rrs = append(rrs, env.RR...)
	}
	return rrs, nil
}

// RowsFromRRs converts transferred records to CSV rows. SOA records and the
// apex NS set are infrastructure of the zone itself, not audit input, so
// they are dropped.
func RowsFromRRs(zone, server string, rrs []dns.RR) []Row {
	apex := dns.Fqdn(zone)

	var rows []Row
	for _, rr := range rrs {
		h := rr.Header()
		if h.Rrtype == dns.TypeSOA {
			continue
		}
		if h.Rrtype == dns.TypeNS && h.Name == apex {
			continue
		}

		rows = append(rows, Row{
			Name:   strings.TrimSuffix(h.Name, "."),
			Type:   dns.TypeToString[h.Rrtype],
			TTL:    strconv.FormatUint(uint64(h.Ttl), 10),
			Rdata:  strings.TrimSpace(strings.TrimPrefix(rr.String(), h.String())),
			Zone:   zone,
			Server: server,
		})
	}
	return rows
}

// WriteCSV writes the header and rows to path.
func WriteCSV(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.Name, row.Type, row.TTL, row.Rdata, row.Zone, row.Server}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row for %s: %w", row.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

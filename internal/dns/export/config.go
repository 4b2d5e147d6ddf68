package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes an export run: which server to transfer which zones from,
// and where the CSV lands.
type Config struct {
	// Server is the authoritative nameserver to transfer from, host:port.
	Server string `yaml:"server"`
	// Zones are the zone names to transfer, without trailing dots.
	Zones []string `yaml:"zones"`
	// Output is the CSV file path. Defaults to dns_records.csv.
	Output string `yaml:"output"`
	// TimeoutSeconds bounds each zone transfer. Defaults to 10.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// TSIG signs the transfer requests when set.
	TSIG *TSIGConfig `yaml:"tsig"`
}

// TSIGConfig holds the transaction signature key for authenticated transfers.
type TSIGConfig struct {
	Name      string `yaml:"name"`
	Algorithm string `yaml:"algorithm"`
	Secret    string `yaml:"secret"`
}

// LoadConfig reads and parses an export configuration file. The TSIG secret
// can be kept out of the file and supplied via DNSAUDIT_TSIG_SECRET instead.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer file.Close()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Output == "" {
		cfg.Output = "dns_records.csv"
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = 10
	}
	if cfg.TSIG != nil {
		if env := os.Getenv("DNSAUDIT_TSIG_SECRET"); env != "" {
			cfg.TSIG.Secret = env
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration names a server and at least one zone.
func (c *Config) Validate() error {
	if c.Server == "" {
		return fmt.Errorf("server must be set")
	}
	if len(c.Zones) == 0 {
		return fmt.Errorf("at least one zone must be set")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds cannot be negative")
	}
	if c.TSIG != nil {
		if c.TSIG.Name == "" || c.TSIG.Secret == "" {
			return fmt.Errorf("tsig requires both name and secret")
		}
	}
	return nil
}

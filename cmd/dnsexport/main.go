package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/poyrazK/dnsaudit/internal/dns/export"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "export.yaml", "path to export configuration file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config file] [-v]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Transfers the configured zones over AXFR and writes them as CSV.")
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := export.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	exporter := export.NewExporter(cfg, log)
	count, err := exporter.Run(context.Background())
	if err != nil {
		log.WithError(err).Fatal("export failed")
	}
	if count == 0 {
		log.Error("no records exported, check server and zone configuration")
		os.Exit(1)
	}
}

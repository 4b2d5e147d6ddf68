package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/poyrazK/dnsaudit/internal/adapters/api"
	"github.com/poyrazK/dnsaudit/internal/config"
	"github.com/poyrazK/dnsaudit/internal/core/services"
	"github.com/poyrazK/dnsaudit/internal/inventory"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	store := inventory.NewStore(cfg.InventoryFile)
	if _, err := store.Load(); err != nil {
		log.WithError(err).WithField("file", cfg.InventoryFile).Fatal("failed to load inventory")
	}

	certStore := inventory.NewCertFileStore(cfg.CertsFile)
	if err := certStore.Reload(); err != nil {
		// Certificate data is optional; the endpoint serves an empty list
		log.WithError(err).WithField("file", cfg.CertsFile).Warn("certificate data unavailable")
	}

	invSvc := services.NewInventoryService(store)
	certSvc := services.NewCertService(certStore)

	apiHandler := api.NewAPIHandler(invSvc, certSvc, log)
	mux := http.NewServeMux()
	apiHandler.RegisterRoutes(mux)

	log.WithField("addr", cfg.ListenAddr).Info("inventory API listening")
	if err := http.ListenAndServe(cfg.ListenAddr, api.Instrument(mux, log)); err != nil {
		log.WithError(err).Fatal("HTTP server failed")
	}
}

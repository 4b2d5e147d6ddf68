// Package api exposes the inventory read model over HTTP JSON endpoints.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/poyrazK/dnsaudit/internal/core/ports"
	"github.com/poyrazK/dnsaudit/internal/core/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// APIHandler handles HTTP requests for the inventory and certificate data.
type APIHandler struct {
	inv   ports.InventoryService
	certs ports.CertService
	log   *logrus.Logger
}

// NewAPIHandler creates and returns a new APIHandler instance.
func NewAPIHandler(inv ports.InventoryService, certs ports.CertService, log *logrus.Logger) *APIHandler {
	return &APIHandler{inv: inv, certs: certs, log: log}
}

// RegisterRoutes registers the API routes with the provided ServeMux.
func (h *APIHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("GET /metrics", h.Metrics)

	mux.HandleFunc("GET /api/summary", h.GetSummary)
	mux.HandleFunc("GET /api/business-units", h.ListBusinessUnits)
	mux.HandleFunc("GET /api/business-units/{name}", h.GetBusinessUnit)
	mux.HandleFunc("GET /api/systems", h.ListSystems)
	mux.HandleFunc("GET /api/systems/issues", h.ListSystemsWithIssues)
	mux.HandleFunc("GET /api/certificates", h.ListCertificates)
	mux.HandleFunc("POST /api/load-data", h.LoadData)
}

// Metrics handles Prometheus metrics scraping requests.
func (h *APIHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// HealthCheck handles health check requests.
func (h *APIHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "UP",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// GetSummary serves the estate-wide inventory statistics.
func (h *APIHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.inv.Summary(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

// ListBusinessUnits serves the per-unit roll-up statistics.
func (h *APIHandler) ListBusinessUnits(w http.ResponseWriter, r *http.Request) {
	stats, err := h.inv.BusinessUnits(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// GetBusinessUnit serves the detailed view of a single unit.
func (h *APIHandler) GetBusinessUnit(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	unit, err := h.inv.BusinessUnit(r.Context(), name)
	if errors.Is(err, services.ErrBusinessUnitNotFound) {
		h.writeError(w, http.StatusNotFound, "Business unit not found")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, unit)
}

// ListSystems serves all systems across all business units.
func (h *APIHandler) ListSystems(w http.ResponseWriter, r *http.Request) {
	systems, err := h.inv.Systems(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, systems)
}

// ListSystemsWithIssues serves the systems carrying at least one issue.
func (h *APIHandler) ListSystemsWithIssues(w http.ResponseWriter, r *http.Request) {
	systems, err := h.inv.SystemsWithIssues(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, systems)
}

// ListCertificates serves the processed certificate expiry data.
func (h *APIHandler) ListCertificates(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.certs.Certificates(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, statuses)
}

// LoadData re-reads the inventory file and swaps in the new snapshot.
func (h *APIHandler) LoadData(w http.ResponseWriter, r *http.Request) {
	snap, err := h.inv.Reload(r.Context())
	if errors.Is(err, os.ErrNotExist) {
		h.writeError(w, http.StatusNotFound, "inventory file not found")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.WithField("snapshot_id", snap.ID).Info("inventory snapshot reloaded")
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message":     "Data loaded successfully",
		"snapshot_id": snap.ID,
	})
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.WithError(err).Error("failed to encode response")
	}
}

func (h *APIHandler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, map[string]string{"error": msg})
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests tracks API requests served, by method, path and status code
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dnsaudit_http_requests_total",
		Help: "Total number of inventory API requests served",
	}, []string{"method", "path", "code"})

	// HTTPDuration tracks request handling time
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dnsaudit_http_request_duration_seconds",
		Help:    "Histogram of inventory API request duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	// InventoryReloads tracks snapshot reload attempts
	InventoryReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dnsaudit_inventory_reloads_total",
		Help: "Total number of inventory snapshot reloads",
	}, []string{"result"})

	// InventorySystems tracks the number of systems in the current snapshot
	InventorySystems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dnsaudit_inventory_systems",
		Help: "Number of systems in the currently loaded inventory snapshot",
	})

	// CacheOperations tracks data-client cache hits and misses
	CacheOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dnsaudit_cache_operations_total",
		Help: "Total number of data-client cache hits and misses",
	}, []string{"backend", "result"})
)

// Package metrics serves Prometheus metrics on a dedicated listener and
// registers gauges that are sampled at scrape time.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer creates an HTTP server serving /metrics (Prometheus) and /healthz.
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}

// RegisterAuditQueue exposes the audit log backlog as a gauge. Registering
// twice on the same registerer is not an error.
func RegisterAuditQueue(reg prometheus.Registerer, pending func() int) error {
	err := reg.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "minio_lite_admin",
		Name:      "audit_queue_pending_entries",
		Help:      "Audit log entries waiting to be written",
	}, func() float64 {
		return float64(pending())
	}))

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		return nil
	}
	return err
}

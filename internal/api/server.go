package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/edvin/minio-lite-admin/internal/api/handler"
	mw "github.com/edvin/minio-lite-admin/internal/api/middleware"
	"github.com/edvin/minio-lite-admin/internal/config"
	"github.com/edvin/minio-lite-admin/internal/core"
)

type Server struct {
	router      chi.Router
	logger      zerolog.Logger
	services    *core.Services
	cfg         *config.Config
	auditLogger *mw.AuditLogger
}

func NewServer(logger zerolog.Logger, services *core.Services, cfg *config.Config) *Server {
	s := &Server{
		router:      chi.NewRouter(),
		logger:      logger,
		services:    services,
		cfg:         cfg,
		auditLogger: mw.NewAuditLogger(logger),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
}

func (s *Server) setupRoutes() {
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(s.auditLogger.Middleware)

		health := handler.NewHealth(s.cfg.Server.ServiceName)
		r.Get("/health", health.Get)

		serverInfo := handler.NewServerInfo(s.services.ServerInfo)
		r.Get("/server-info", serverInfo.Get)
		r.Get("/data-usage", serverInfo.DataUsage)

		accessKey := handler.NewAccessKey(s.services.AccessKey)
		r.Get("/access-keys", accessKey.List)
		r.Post("/access-keys", accessKey.Create)
		r.Put("/access-keys/{accessKey}", accessKey.Update)
		r.Delete("/access-keys/{accessKey}", accessKey.Delete)

		siteReplication := handler.NewSiteReplication(s.services.SiteReplication)
		r.Get("/site-replication", siteReplication.Get)

		bucket := handler.NewBucket(s.services.Bucket)
		r.Get("/buckets", bucket.List)
	})

	s.router.Handle("/*", spaHandler{staticDir: s.cfg.Server.StaticDir})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if _, err := s.services.ServerInfo.Get(ctx); err != nil {
		checks["minio_admin"] = err.Error()
		healthy = false
	} else {
		checks["minio_admin"] = "ok"
	}

	if err := s.services.Bucket.Ping(ctx); err != nil {
		checks["minio_s3"] = err.Error()
		healthy = false
	} else {
		checks["minio_s3"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(checks)
}

// AuditPending reports the audit entries not yet written.
func (s *Server) AuditPending() int {
	return s.auditLogger.Pending()
}

// Close flushes pending audit entries.
func (s *Server) Close() {
	s.auditLogger.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

package handler

import (
	"github.com/MKhiriev/auctions-api/internal/config"
	"github.com/MKhiriev/auctions-api/internal/handler/http"
	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/observability"
	"github.com/MKhiriev/auctions-api/internal/requestcontext"
	"github.com/MKhiriev/auctions-api/internal/service"
	"github.com/MKhiriev/auctions-api/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricsNamespace = "auctions"

type Handlers struct {
	HTTP   *http.Handler
	Health *observability.HealthHandler
}

// NewHandlers builds the transport handlers together with the metrics
// registry, the request context manager and the health checks they share.
// db is pinged by the readiness endpoint.
func NewHandlers(services *service.Services, db observability.HealthChecker, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(metricsNamespace, registry)

	requests := requestcontext.NewManager(
		utils.NewUUIDGenerator(),
		logger,
		requestcontext.WithActiveGauge(metrics.RequestsInFlight),
	)
	health := observability.NewHealthHandler(db)

	return &Handlers{
		HTTP:   http.NewHandler(services, requests, metrics, health, cfg, logger),
		Health: health,
	}, nil
}

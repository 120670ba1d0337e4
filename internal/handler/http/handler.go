package http

import (
	"time"

	"github.com/MKhiriev/auctions-api/internal/config"
	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/observability"
	"github.com/MKhiriev/auctions-api/internal/requestcontext"
	"github.com/MKhiriev/auctions-api/internal/service"
)

type Handler struct {
	services *service.Services
	requests *requestcontext.Manager
	metrics  *observability.Metrics
	health   *observability.HealthHandler

	testSteps      int
	testStepDelay  time.Duration
	requestTimeout time.Duration
	debug          bool

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	requests *requestcontext.Manager,
	metrics *observability.Metrics,
	health *observability.HealthHandler,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requests:       requests,
		metrics:        metrics,
		health:         health,
		testSteps:      cfg.App.TestSteps,
		testStepDelay:  cfg.App.TestStepDelay,
		requestTimeout: cfg.Server.RequestTimeout,
		debug:          cfg.App.Debug,
		logger:         logger,
	}
}

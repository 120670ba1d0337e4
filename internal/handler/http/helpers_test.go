package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/auctions-api/internal/config"
	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/observability"
	"github.com/MKhiriev/auctions-api/internal/requestcontext"
	"github.com/MKhiriev/auctions-api/internal/service"
	"github.com/MKhiriev/auctions-api/internal/store"
	"github.com/MKhiriev/auctions-api/internal/utils"
	"github.com/MKhiriev/auctions-api/models"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// ---- Stubs ----

type stubDummyService struct{}

func (s *stubDummyService) Serve(_ context.Context) string {
	return "dummy answer"
}

// stubCatalogService answers every call with err, or panics when panicMsg
// is set.
type stubCatalogService struct {
	err      error
	panicMsg string
}

func (s *stubCatalogService) fail() error {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.err
}

func (s *stubCatalogService) CreateListing(_ context.Context, _ models.CreateListingRequest) (models.Listing, error) {
	return models.Listing{}, s.fail()
}

func (s *stubCatalogService) GetListing(_ context.Context, _ uuid.UUID) (models.Listing, error) {
	return models.Listing{}, s.fail()
}

func (s *stubCatalogService) ListListings(_ context.Context) ([]models.Listing, error) {
	return nil, s.fail()
}

func (s *stubCatalogService) DeleteListing(_ context.Context, _ uuid.UUID) error {
	return s.fail()
}

// ---- Handler under test ----

type testEnv struct {
	handler  *Handler
	router   http.Handler
	requests *requestcontext.Manager
	health   *observability.HealthHandler
}

type envOption func(cfg *config.StructuredConfig, services *service.Services)

func withCatalog(svc service.CatalogService) envOption {
	return func(_ *config.StructuredConfig, services *service.Services) {
		services.CatalogService = svc
	}
}

func withTestSteps(steps int, delay time.Duration) envOption {
	return func(cfg *config.StructuredConfig, _ *service.Services) {
		cfg.App.TestSteps = steps
		cfg.App.TestStepDelay = delay
	}
}

func withRequestTimeout(d time.Duration) envOption {
	return func(cfg *config.StructuredConfig, _ *service.Services) {
		cfg.Server.RequestTimeout = d
	}
}

func withDebug() envOption {
	return func(cfg *config.StructuredConfig, _ *service.Services) {
		cfg.App.Debug = true
	}
}

func newTestEnv(t *testing.T, log *logger.Logger, opts ...envOption) *testEnv {
	t.Helper()

	cfg := *config.Defaults()
	cfg.App.TestSteps = 3
	cfg.App.TestStepDelay = 0

	storages := &store.Storages{ListingRepository: store.NewMemoryListingRepository(log)}
	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("1.2.3", "2026-10-19", "abc123"), log)
	require.NoError(t, err)
	services.DummyService = &stubDummyService{}

	for _, opt := range opts {
		opt(&cfg, services)
	}

	metrics := observability.NewMetrics("auctions", prometheus.NewRegistry())
	requests := requestcontext.NewManager(utils.NewUUIDGenerator(), log, requestcontext.WithActiveGauge(metrics.RequestsInFlight))
	health := observability.NewHealthHandler(storages)

	h := NewHandler(services, requests, metrics, health, cfg, log)

	return &testEnv{
		handler:  h,
		router:   h.Init(),
		requests: requests,
		health:   health,
	}
}

func (e *testEnv) do(method, target, body string, header ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}

var errUnmapped = errors.New("connection refused by 10.0.0.3:5432")

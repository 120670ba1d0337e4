package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/auctions-api/internal/domain"
	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/utils"
	"github.com/MKhiriev/auctions-api/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- GET / ----

func TestRoot(t *testing.T) {
	env := newTestEnv(t, logger.Nop())

	rec := env.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"info": "Online auctions API. See /docs for documentation"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRoot_ProcessTimeHeader(t *testing.T) {
	env := newTestEnv(t, logger.Nop())

	rec := env.do(http.MethodGet, "/", "")

	raw := rec.Header().Get("X-Process-Time")
	require.NotEmpty(t, raw)
	seconds, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, seconds, 0.0)
}

func TestCorrelationIDHeader(t *testing.T) {
	env := newTestEnv(t, logger.Nop())

	t.Run("generated when absent", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/", "")

		got := rec.Header().Get(utils.CorrelationIDHeader)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	})

	t.Run("propagated when present", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/", "", utils.CorrelationIDHeader, "abc-123")

		assert.Equal(t, "abc-123", rec.Header().Get(utils.CorrelationIDHeader))
	})
}

// ---- GET /test ----

func TestTestEndpoint(t *testing.T) {
	env := newTestEnv(t, logger.Nop())

	rec := env.do(http.MethodGet, "/test", "", utils.CorrelationIDHeader, "corr-42")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"service response": "dummy answer", "correlation_id": "corr-42"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Process-Time"))
}

func TestTestEndpoint_LogsSteps(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)}
	env := newTestEnv(t, log, withTestSteps(3, time.Millisecond))

	rec := env.do(http.MethodGet, "/test", "", utils.CorrelationIDHeader, "corr-log")
	require.Equal(t, http.StatusOK, rec.Code)

	out := buf.String()
	last := -1
	for _, msg := range []string{"test1", "test2", "test3", "test4"} {
		idx := strings.Index(out, fmt.Sprintf(`"message":%q`, msg))
		require.GreaterOrEqual(t, idx, 0, "missing %s", msg)
		assert.Greater(t, idx, last, "%s logged out of order", msg)
		last = idx
	}
	assert.Contains(t, out, `"correlation_id":"corr-log"`)
}

func TestTestEndpoint_ProcessTimeCoversWaits(t *testing.T) {
	env := newTestEnv(t, logger.Nop(), withTestSteps(2, 20*time.Millisecond))

	rec := env.do(http.MethodGet, "/test", "")

	seconds, err := strconv.ParseFloat(rec.Header().Get("X-Process-Time"), 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, seconds, 0.04)
}

func TestTestEndpoint_RequestTimeout(t *testing.T) {
	env := newTestEnv(t, logger.Nop(),
		withTestSteps(3, time.Second),
		withRequestTimeout(30*time.Millisecond),
	)

	start := time.Now()
	rec := env.do(http.MethodGet, "/test", "")

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Gateway Timeout", decodeMessage(t, rec))
	assert.Less(t, time.Since(start), time.Second)
	assert.NotEmpty(t, rec.Header().Get("X-Process-Time"))
	assert.Zero(t, env.requests.Active())
}

// ---- GET /docs ----

func TestDocs(t *testing.T) {
	env := newTestEnv(t, logger.Nop())

	rec := env.do(http.MethodGet, "/docs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var docs []models.RouteDoc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))

	assert.Contains(t, docs, models.RouteDoc{Method: http.MethodGet, Route: "/"})
	assert.Contains(t, docs, models.RouteDoc{Method: http.MethodGet, Route: "/test"})
	assert.Contains(t, docs, models.RouteDoc{Method: http.MethodPost, Route: "/catalog"})
	assert.Contains(t, docs, models.RouteDoc{Method: http.MethodDelete, Route: "/catalog/{listing_id}"})
	assert.Contains(t, docs, models.RouteDoc{Method: http.MethodGet, Route: "/iam/me"})
}

// ---- Catalog ----

func TestCatalog_RoundTrip(t *testing.T) {
	env := newTestEnv(t, logger.Nop())

	rec := env.do(http.MethodPost, "/catalog", `{"title":"Oak table","description":"Solid oak","ask_price":30000,"currency":"EUR"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Oak table", created.Title)
	assert.Equal(t, models.FakeUser().ID, created.SellerID)
	assert.Equal(t, models.ListingStatusDraft, created.Status)

	rec = env.do(http.MethodGet, "/catalog/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list models.ListingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Length)

	rec = env.do(http.MethodDelete, "/catalog/"+created.ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(http.MethodGet, "/catalog/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		fmt.Sprintf(`{"message": "Entity %s not found in ListingRepository"}`, created.ID),
		rec.Body.String())
}

func TestCatalog_Errors(t *testing.T) {
	missing := uuid.MustParse("0191f2a4-0000-7000-8000-0000000000ff")

	tests := []struct {
		name        string
		opts        []envOption
		method      string
		target      string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "unknown listing",
			method:      http.MethodGet,
			target:      "/catalog/" + missing.String(),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Entity " + missing.String() + " not found in ListingRepository",
		},
		{
			name:        "delete unknown listing",
			method:      http.MethodDelete,
			target:      "/catalog/" + missing.String(),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Entity " + missing.String() + " not found in ListingRepository",
		},
		{
			name:        "malformed listing id",
			method:      http.MethodGet,
			target:      "/catalog/not-a-uuid",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid listing_id: must be a valid UUID",
		},
		{
			name:        "malformed JSON",
			method:      http.MethodPost,
			target:      "/catalog",
			body:        `{"title":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body: malformed JSON",
		},
		{
			name:        "validation failure",
			method:      http.MethodPost,
			target:      "/catalog",
			body:        `{"title":"","ask_price":1,"currency":"EUR"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid listing: title is required",
		},
		{
			name:        "generic domain failure",
			opts:        []envOption{withCatalog(&stubCatalogService{err: domain.Generic("ListingRepository")})},
			method:      http.MethodGet,
			target:      "/catalog",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Oops! ListingRepository did something. There goes a rainbow...",
		},
		{
			name:        "unmapped error",
			opts:        []envOption{withCatalog(&stubCatalogService{err: errUnmapped})},
			method:      http.MethodGet,
			target:      "/catalog",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
		{
			name:        "panic in handler",
			opts:        []envOption{withCatalog(&stubCatalogService{panicMsg: "boom"})},
			method:      http.MethodGet,
			target:      "/catalog",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, logger.Nop(), tt.opts...)

			rec := env.do(tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			assert.NotEmpty(t, rec.Header().Get("X-Process-Time"))
			assert.NotEmpty(t, rec.Header().Get(utils.CorrelationIDHeader))
			assert.Zero(t, env.requests.Active(), "request scope must be released")
		})
	}
}

func TestCatalog_PanicInDebugMode(t *testing.T) {
	env := newTestEnv(t, logger.Nop(),
		withDebug(),
		withCatalog(&stubCatalogService{panicMsg: "boom"}),
	)

	rec := env.do(http.MethodGet, "/catalog", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error: boom", decodeMessage(t, rec))
	assert.Zero(t, env.requests.Active())
}

// ---- GET /iam/me ----

func TestIAMMe(t *testing.T) {
	env := newTestEnv(t, logger.Nop())

	rec := env.do(http.MethodGet, "/iam/me", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.CurrentUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, models.FakeUser(), user)
}

// ---- Ambient endpoints ----

func TestVersion(t *testing.T) {
	env := newTestEnv(t, logger.Nop())

	rec := env.do(http.MethodGet, "/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-10-19","commit":"abc123"}`, rec.Body.String())
}

func TestHealthAndReady(t *testing.T) {
	env := newTestEnv(t, logger.Nop())

	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, env.do(http.MethodGet, "/ready", "").Code)

	env.health.SetReady(true)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/ready", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, logger.Nop(), withCatalog(&stubCatalogService{err: domain.NotFound("1", "ListingRepository")}))

	env.do(http.MethodGet, "/", "")
	env.do(http.MethodGet, "/catalog", "")

	rec := env.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `auctions_http_requests_total{method="GET",path="/",status="200"} 1`)
	assert.Contains(t, body, `auctions_domain_failures_total{kind="not_found"} 1`)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	env := newTestEnv(t, logger.Nop())

	rec := env.do(http.MethodGet, "/no-such-route", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeMessage(t, rec))

	rec = env.do(http.MethodPut, "/", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method Not Allowed", decodeMessage(t, rec))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package requestcontext

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/utils"
	"github.com/MKhiriev/auctions-api/models"
)

// RequestContext is the ambient state of one in-flight request.
type RequestContext struct {
	CurrentUser   models.CurrentUser
	CorrelationID string
	StartTime     time.Time
}

// Elapsed returns the wall-clock time since the request started.
func (rc RequestContext) Elapsed(now time.Time) time.Duration {
	return now.Sub(rc.StartTime)
}

// IDGenerator produces correlation ids for requests that did not bring one.
type IDGenerator interface {
	Generate() string
}

// ActiveGauge observes the number of open request scopes.
type ActiveGauge interface {
	Inc()
	Dec()
}

// scope is stored in the request context. released flips exactly once, so
// EndRequest and late readers agree on whether the scope is still open.
type scope struct {
	rc       RequestContext
	released atomic.Bool
}

// Manager opens and closes request scopes.
type Manager struct {
	ids    IDGenerator
	now    func() time.Time
	gauge  ActiveGauge
	active atomic.Int64

	logger *logger.Logger
}

// Option customises a [Manager].
type Option func(*Manager)

// WithClock replaces time.Now as the source of request start times.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithActiveGauge reports open scopes to gauge.
func WithActiveGauge(gauge ActiveGauge) Option {
	return func(m *Manager) {
		m.gauge = gauge
	}
}

// NewManager builds a Manager that generates correlation ids with ids.
func NewManager(ids IDGenerator, logger *logger.Logger, opts ...Option) *Manager {
	m := &Manager{
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// BeginRequest opens a request scope for currentUser and returns the context
// that carries it. An empty correlationID is replaced by a generated one.
//
// It fails with [ErrAlreadyActive] if ctx already carries an open scope.
func (m *Manager) BeginRequest(ctx context.Context, currentUser models.CurrentUser, correlationID string) (context.Context, error) {
	if s, ok := scopeFrom(ctx); ok && !s.released.Load() {
		m.logger.Error().
			Str("correlation_id", s.rc.CorrelationID).
			Msg("request context begun twice")
		return ctx, ErrAlreadyActive
	}

	if correlationID == "" {
		correlationID = m.ids.Generate()
	}

	s := &scope{
		rc: RequestContext{
			CurrentUser:   currentUser,
			CorrelationID: correlationID,
			StartTime:     m.now(),
		},
	}

	m.active.Add(1)
	if m.gauge != nil {
		m.gauge.Inc()
	}

	return context.WithValue(ctx, utils.RequestScopeCtxKey, s), nil
}

// EndRequest releases the scope carried by ctx. It is a no-op when ctx
// carries no scope or the scope was already released, so it is safe to
// defer unconditionally.
func (m *Manager) EndRequest(ctx context.Context) {
	s, ok := scopeFrom(ctx)
	if !ok || !s.released.CompareAndSwap(false, true) {
		return
	}

	m.active.Add(-1)
	if m.gauge != nil {
		m.gauge.Dec()
	}
}

// Current returns the request context carried by ctx.
func (m *Manager) Current(ctx context.Context) (RequestContext, error) {
	return Current(ctx)
}

// Active returns the number of scopes currently open.
func (m *Manager) Active() int64 {
	return m.active.Load()
}

// Current returns the request context carried by ctx, or
// [ErrNoActiveContext] if ctx has no open scope.
func Current(ctx context.Context) (RequestContext, error) {
	s, ok := scopeFrom(ctx)
	if !ok || s.released.Load() {
		return RequestContext{}, ErrNoActiveContext
	}

	return s.rc, nil
}

// CorrelationID returns the correlation id of the open scope in ctx.
func CorrelationID(ctx context.Context) (string, error) {
	rc, err := Current(ctx)
	if err != nil {
		return "", err
	}

	return rc.CorrelationID, nil
}

// CurrentUser returns the user of the open scope in ctx.
func CurrentUser(ctx context.Context) (models.CurrentUser, error) {
	rc, err := Current(ctx)
	if err != nil {
		return models.CurrentUser{}, err
	}

	return rc.CurrentUser, nil
}

func scopeFrom(ctx context.Context) (*scope, bool) {
	s, ok := ctx.Value(utils.RequestScopeCtxKey).(*scope)
	return s, ok && s != nil
}

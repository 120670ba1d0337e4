package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/requestcontext"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log line per request once the handler has
// returned. The duration is measured from the request scope's start time,
// the same origin X-Process-Time is computed from. Requests that ended in a
// translated error carry its kind in the "failure" field.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if rc, err := requestcontext.Current(r.Context()); err == nil {
			start = rc.StartTime
		}

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		event := logger.FromRequest(r).Info()
		if lw.failureKind != "" {
			event = event.Str("failure", lw.failureKind)
		}
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			event = event.Str("route", rctx.RoutePattern())
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.statusOrOK()).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}

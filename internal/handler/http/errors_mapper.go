// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/auctions-api/internal/domain"
	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/utils"
	"github.com/MKhiriev/auctions-api/models"
)

const (
	internalServerErrorMessage = "Internal Server Error"
	gatewayTimeoutMessage      = "Gateway Timeout"

	// kindInternal labels errors outside the domain taxonomy in metrics
	kindInternal = "internal"
	kindTimeout  = "timeout"
)

var failureStatusMap = map[domain.Kind]int{
	domain.KindGeneric:  http.StatusInternalServerError,
	domain.KindNotFound: http.StatusNotFound,
	domain.KindInvalid:  http.StatusBadRequest,
}

// translateError maps err to the status code and body sent to the client.
// Only *domain.Failure values produce specific messages; anything else is
// reported as a bare 500 so internals never leak.
// A request that ran out of time is answered with 504.
func translateError(err error) (int, models.ErrorResponse) {
	f, ok := domain.AsFailure(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, models.ErrorResponse{Message: gatewayTimeoutMessage}
		}
		return http.StatusInternalServerError, models.ErrorResponse{Message: internalServerErrorMessage}
	}

	status, ok := failureStatusMap[f.Kind]
	if !ok {
		return http.StatusInternalServerError, models.ErrorResponse{Message: internalServerErrorMessage}
	}

	return status, models.ErrorResponse{Message: failureMessage(f)}
}

func failureMessage(f *domain.Failure) string {
	switch f.Kind {
	case domain.KindNotFound:
		return fmt.Sprintf("Entity %s not found in %s", f.EntityID, f.Repository)
	case domain.KindInvalid:
		return fmt.Sprintf("Invalid %s: %s", f.Name, f.Reason)
	default:
		return fmt.Sprintf("Oops! %s did something. There goes a rainbow...", f.Name)
	}
}

// failureKind returns the metrics label for err.
func failureKind(err error) string {
	f, ok := domain.AsFailure(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return kindTimeout
		}
		return kindInternal
	}
	if _, known := failureStatusMap[f.Kind]; !known {
		return kindInternal
	}
	return f.Kind.String()
}

// writeError translates err, records it and writes the JSON error body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := h.recordFailure(w, err)

	log := logger.FromRequest(r)
	switch kind {
	case kindInternal:
		log.Error().Err(err).Str("uri", r.RequestURI).Msg("unhandled error")
	case kindTimeout:
		log.Warn().Err(err).Str("uri", r.RequestURI).Msg("request timed out")
	case domain.KindGeneric.String():
		log.Error().Err(err).Str("kind", kind).Msg("domain failure")
	default:
		log.Debug().Err(err).Str("kind", kind).Msg("request rejected")
	}

	status, body := translateError(err)
	utils.WriteJSON(w, body, status)
}

// recordFailure counts err in metrics and tags the response writers of the
// middleware chain with its kind, so the access log can report it.
func (h *Handler) recordFailure(w http.ResponseWriter, err error) string {
	kind := failureKind(err)

	if h.metrics != nil {
		h.metrics.DomainFailures.WithLabelValues(kind).Inc()
	}
	markFailure(w, kind)

	return kind
}

// handlerFunc is an HTTP handler that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc, translating returned errors.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/auctions-api/internal/requestcontext"
	"github.com/MKhiriev/auctions-api/internal/utils"
	"github.com/MKhiriev/auctions-api/models"
	"github.com/rs/zerolog"
)

const processTimeHeader = "X-Process-Time"

// withRequestContext opens a request scope for the fake user before the
// request is handled and releases it when the handler returns or panics.
//
// The correlation id is taken from the X-Correlation-ID request header or
// generated, echoed back in the response and attached to the request-scoped
// logger. X-Process-Time (seconds, as a float) is set right before the
// response headers are sent.
func (h *Handler) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := h.requests.BeginRequest(r.Context(), models.FakeUser(), r.Header.Get(utils.CorrelationIDHeader))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		defer h.requests.EndRequest(ctx)

		rc, err := requestcontext.Current(ctx)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("correlation_id", rc.CorrelationID)
		})
		ctx = l.WithContext(ctx)

		w.Header().Set(utils.CorrelationIDHeader, rc.CorrelationID)

		pw := &responseWriter{
			ResponseWriter: w,
			beforeWriteHeader: func(header http.Header) {
				header.Set(processTimeHeader, formatProcessTime(rc.Elapsed(time.Now())))
			},
		}

		next.ServeHTTP(pw, r.WithContext(ctx))

		// handlers that write nothing still get the header
		if !pw.wroteHeader {
			pw.WriteHeader(http.StatusOK)
		}
	})
}

func formatProcessTime(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/utils"
)

// withRecovery turns a handler panic into the generic 500 response. The
// request scope is still released by withRequestContext's deferred cleanup.
//
// In debug mode the panic value is appended to the message. Nothing is
// written when the handler had already sent its status line.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			err := fmt.Errorf("panic: %v", rvr)
			h.recordFailure(w, err)

			written := headerWritten(w)
			logger.FromRequest(r).Error().
				Err(err).
				Bool("headers_sent", written).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			if written {
				return
			}

			status, body := translateError(err)
			if h.debug {
				body.Message = fmt.Sprintf("%s: %v", body.Message, rvr)
			}
			utils.WriteJSON(w, body, status)
		}()

		next.ServeHTTP(w, r)
	})
}

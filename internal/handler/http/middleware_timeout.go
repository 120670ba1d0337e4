package http

import (
	"context"
	"errors"
	"net/http"
)

// withTimeoutResponse runs inside chi's Timeout middleware. When the
// deadline passed and the handler sent nothing, it answers with the JSON
// 504 body; chi's own bare WriteHeader then becomes a no-op.
func (h *Handler) withTimeoutResponse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		err := r.Context().Err()
		if errors.Is(err, context.DeadlineExceeded) && !headerWritten(w) {
			h.writeError(w, r, err)
		}
	})
}

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/requestcontext"
	"github.com/MKhiriev/auctions-api/internal/utils"
	"github.com/MKhiriev/auctions-api/models"
	"github.com/go-chi/chi/v5"
)

const rootInfo = "Online auctions API. See /docs for documentation"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.InfoResponse{Info: rootInfo}, http.StatusOK)
}

// test is a diagnostic endpoint: it waits testSteps times for testStepDelay,
// logging test1..testN+1 at debug level in between, then answers with the
// dummy service response and the request's correlation id.
//
// A request that hits its deadline while waiting gets the 504 error body.
// If the client went away instead, nothing is written.
func (h *Handler) test(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	for step := 1; step <= h.testSteps; step++ {
		log.Debug().Msgf("test%d", step)
		if err := sleep(ctx, h.testStepDelay); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("test step %d: %w", step, err)
			}
			log.Warn().Err(err).Int("step", step).Msg("test request interrupted")
			return nil
		}
	}
	log.Debug().Msgf("test%d", h.testSteps+1)

	answer := h.services.DummyService.Serve(ctx)
	correlationID, err := requestcontext.CorrelationID(ctx)
	if err != nil {
		return err
	}

	utils.WriteJSON(w, models.TestResponse{
		ServiceResponse: answer,
		CorrelationID:   correlationID,
	}, http.StatusOK)
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// docs lists every route registered on routes, sorted by path then method.
func (h *Handler) docs(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs := make([]models.RouteDoc, 0, 16)

		err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if len(route) > 1 {
				route = strings.TrimSuffix(route, "/")
			}
			docs = append(docs, models.RouteDoc{Method: method, Route: route})
			return nil
		})
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		sort.Slice(docs, func(i, j int) bool {
			if docs[i].Route != docs[j].Route {
				return docs[i].Route < docs[j].Route
			}
			return docs[i].Method < docs[j].Method
		})

		utils.WriteJSON(w, docs, http.StatusOK)
	}
}

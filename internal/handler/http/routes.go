package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withRequestContext)
	router.Use(withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withRecovery)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
		router.Use(h.withTimeoutResponse)
	}

	// set before Route so sub-routers inherit them
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/", h.root)
	router.Get("/test", h.handle(h.test))
	router.Get("/docs", h.docs(router))
	router.Get("/version", h.getServerVersion)

	router.Get("/health", h.health.Health)
	router.Get("/ready", h.health.Ready)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.Route("/catalog", func(r chi.Router) {
		r.Get("/", h.handle(h.listListings))
		r.Post("/", h.handle(h.createListing))
		r.Get("/{listing_id}", h.handle(h.getListing))
		r.Delete("/{listing_id}", h.handle(h.deleteListing))
	})

	router.Route("/iam", func(r chi.Router) {
		r.Get("/me", h.handle(h.me))
	})

	return router
}

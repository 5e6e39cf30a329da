package httpapi

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Route("/products", func(r chi.Router) {
		r.Post("/", app.registerHandler)
		r.Get("/", app.listProductsHandler)
		r.Get("/{id}", app.getProductHandler)
		r.Get("/{id}/provenance", app.provenanceHandler)
		r.Post("/{id}/status", app.updateStatusByIDHandler)
		r.Post("/{id}/flag", app.flagHandler)
	})
	r.Post("/scan", app.scanHandler)
	r.Post("/updates", app.updateStatusHandler)
	r.Get("/assignments/{actor}", app.assignmentsHandler)
	r.Get("/ledger", app.ledgerHandler)

	r.Get("/healthz", app.healthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/debug/metrics", app.metricsJSONHandler)
	r.Method(http.MethodGet, "/debug/vars", expvar.Handler())
	r.Get("/openapi.yaml", app.openapiHandler)
	r.Get("/docs", app.docsHandler)

	return WithRequestID(WithLogging(r))
}

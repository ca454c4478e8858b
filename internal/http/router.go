package http

import (
	"net/http"

	"dataportal-stats/internal/aggregators"
	"dataportal-stats/internal/shared/loggers"
	"dataportal-stats/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService aggregators.ReportService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	reportHandler := NewReportHandler(reportService)

	router.Get("/reports/downloads", errorHandlingAdapter(reportHandler))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

package http

import (
	"net/http"

	"dataportal-stats/internal/aggregators"
	"dataportal-stats/internal/renderers"
	"dataportal-stats/internal/shared/loggers"
)

type reportHandler struct {
	reportService aggregators.ReportService
}

func NewReportHandler(reportService aggregators.ReportService) AppHttpHandler {
	return &reportHandler{reportService: reportService}
}

// Handle processes GET /reports/downloads?year=&quarter= requests.
// Each request is an independent report run.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	params, err := aggregators.ParseFilterParams(query.Get(queryYear), query.Get(queryQuarter))
	if err != nil {
		return err
	}

	logger := loggers.Ctx(r.Context()).With().Str(loggers.FieldRunID, requestID(r)).Logger()
	ctx := logger.WithContext(r.Context())

	buckets, err := h.reportService.Generate(ctx, params)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, renderers.NewReportView(params, buckets))
	return nil
}

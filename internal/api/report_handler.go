package api

import (
	"fmt"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/practice-tracker/internal/api/shared"
	"github.com/phrazzld/practice-tracker/internal/platform/logger"
	"github.com/phrazzld/practice-tracker/internal/redact"
	"github.com/phrazzld/practice-tracker/internal/service/report"
)

// ReportHandler serves the chart data and the export download.
type ReportHandler struct {
	reports report.Service
	logger  *slog.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports report.Service, logger *slog.Logger) *ReportHandler {
	if logger == nil {
		panic("logger cannot be nil for ReportHandler")
	}

	return &ReportHandler{
		reports: reports,
		logger:  logger.With(slog.String("component", "report_handler")),
	}
}

// DifficultyStats handles GET /stats/difficulty requests
func (h *ReportHandler) DifficultyStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reports.CountsByDifficulty(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load difficulty stats")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, report.DifficultyChart(counts))
}

// ReviewTrend handles GET /stats/review-trend requests
func (h *ReportHandler) ReviewTrend(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reports.CountsByLastReviewed(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load review trend")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, report.TrendChart(counts))
}

// Export handles GET /export requests. The format query parameter selects
// csv (default) or xlsx. Rows are streamed: a failure before the first byte
// reaches the client becomes an error response, a later one can only be
// logged.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = report.FormatCSV
	}
	if !report.IsSupportedFormat(format) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unsupported export format")
		return
	}

	w.Header().Set("Content-Type", report.ContentType(format))
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s.%s"`, report.ExportFileBase, format))

	ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
	if err := report.Write(r.Context(), h.reports, format, ww); err != nil {
		if ww.BytesWritten() == 0 {
			w.Header().Del("Content-Disposition")
			w.Header().Del("Content-Type")
			HandleAPIError(w, r, err, "Failed to export problems")
			return
		}
		log.Error("export failed after streaming started",
			slog.String("format", format),
			slog.Int("bytes_written", ww.BytesWritten()),
			slog.String("error", redact.Error(err)))
		return
	}

	log.Debug("export sent", slog.String("format", format))
}

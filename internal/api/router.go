package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/practice-tracker/internal/api/middleware"
)

// NewRouter creates the application router with all routes and middleware.
func NewRouter(problems *ProblemHandler, reports *ReportHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewTraceMiddleware(logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/problems", func(r chi.Router) {
			r.Get("/", problems.ListProblems)
			r.Post("/", problems.CreateProblem)
			r.Get("/due", problems.ListDue)
			r.Get("/{id}", problems.GetProblem)
			r.Put("/{id}", problems.EditProblem)
			r.Delete("/{id}", problems.DeleteProblem)
			r.Post("/{id}/review", problems.ReviewProblem)
		})

		r.Get("/stats/difficulty", reports.DifficultyStats)
		r.Get("/stats/review-trend", reports.ReviewTrend)
		r.Get("/export", reports.Export)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})

	return r
}

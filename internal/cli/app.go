package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/practice-tracker/internal/api"
	"github.com/phrazzld/practice-tracker/internal/config"
	"github.com/phrazzld/practice-tracker/internal/domain/srs"
	"github.com/phrazzld/practice-tracker/internal/platform/database"
	"github.com/phrazzld/practice-tracker/internal/platform/sqlstore"
	"github.com/phrazzld/practice-tracker/internal/service"
	"github.com/phrazzld/practice-tracker/internal/service/report"
	"github.com/phrazzld/practice-tracker/internal/service/review"
	"github.com/phrazzld/practice-tracker/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	problemStore store.ProblemStore
	statsStore   store.StatsStore

	srsService     srs.Service
	problemService service.ProblemService
	reviewService  review.Service
	reportService  report.Service
}

// newApplication opens the database, applies pending migrations when
// auto_migrate is set and wires the services. now is the service clock.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	now func() time.Time,
) (*application, error) {
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := app.init(ctx, now); err != nil {
		app.cleanup()
		return nil, err
	}

	logger.Debug("application initialized")
	return app, nil
}

func (app *application) init(ctx context.Context, now func() time.Time) error {
	if app.config.Database.AutoMigrate {
		migrator, err := database.NewMigrator(app.db, app.logger)
		if err != nil {
			return err
		}
		if err := migrator.Up(ctx); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	params, err := srs.NewParams(app.config.Schedule.Intervals)
	if err != nil {
		return fmt.Errorf("invalid review schedule: %w", err)
	}
	app.srsService, err = srs.NewServiceWithParams(params)
	if err != nil {
		return fmt.Errorf("failed to create SRS service: %w", err)
	}

	problemStore := sqlstore.NewProblemStore(app.db, app.logger)
	app.problemStore = problemStore
	app.statsStore = sqlstore.NewStatsStore(app.db, app.logger)

	app.problemService, err = service.NewProblemService(problemStore, now, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create problem service: %w", err)
	}

	app.reviewService = review.NewService(
		review.NewProblemRepositoryAdapter(app.problemStore, app.db),
		app.srsService,
		now,
		app.logger,
	)
	app.reportService = report.NewService(app.problemStore, app.statsStore, now, app.logger)

	return nil
}

// router builds the HTTP handler serving the API.
func (app *application) router() http.Handler {
	return api.NewRouter(
		api.NewProblemHandler(app.problemService, app.reviewService, app.logger),
		api.NewReportHandler(app.reportService, app.logger),
		app.logger,
	)
}

// cleanup releases the database handle.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
}

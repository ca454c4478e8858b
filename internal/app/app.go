package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"dataportal-stats/internal/aggregators"
	"dataportal-stats/internal/gbif"
	internalhttp "dataportal-stats/internal/http"
	"dataportal-stats/internal/models"
	"dataportal-stats/internal/renderers"
	"dataportal-stats/internal/shared/configs"
	"dataportal-stats/internal/shared/filestorages"
	"dataportal-stats/internal/shared/loggers"
	"dataportal-stats/internal/shared/metrics"
	"dataportal-stats/internal/shared/ulid"
	"dataportal-stats/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config        *configs.Config
	appLogger     loggers.Logger
	reportService aggregators.ReportService
	server        *http.Server
}

// New creates and initializes a new App instance. Logs go to logOutput so
// that stdout stays reserved for the report table.
func New(config *configs.Config, logOutput io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "dataportal-stats").
		Logger()

	// Initialize file storage holding the archive and the GBIF cache
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	loc := config.Report.Location()
	archiveStore := stores.NewArchiveStore(fileStorage, config.Archive.Key, loc)
	liveLogStore := stores.NewLiveLogStore(config.LiveLog.DBPath, config.LiveLog.BusyTimeoutMs)

	// GBIF stays a nil interface when disabled
	var gbifSource gbif.Source
	if config.GBIF.Enabled {
		httpClient := &http.Client{Timeout: config.GBIF.Timeout}
		client := gbif.NewClient(httpClient, config.GBIF.BaseURL, config.GBIF.PageSize, loc)
		cacheStore := stores.NewGBIFCacheStore(fileStorage)
		gbifSource = gbif.NewCachedSource(client, cacheStore, config.GBIF.DatasetKey, config.GBIF.CacheTTL)
	}

	classifier := aggregators.NewCategoryClassifier(config.Report.CollectionResources)
	reportService := aggregators.NewReportService(
		classifier,
		archiveStore,
		liveLogStore,
		gbifSource,
		models.DefaultQuarterCalendar,
		loc,
	)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		reportService: reportService,
		server:        server,
	}, nil
}

// RunReport generates one report and writes it to w as a table.
func (app *App) RunReport(ctx context.Context, params models.FilterParams, w io.Writer, colorize bool) error {
	logger := app.appLogger.With().
		Str(loggers.FieldComponent, "cli").
		Str(loggers.FieldRunID, ulid.NewID()).
		Logger()
	ctx = logger.WithContext(ctx)

	buckets, err := app.reportService.Generate(ctx, params)
	if err != nil {
		return err
	}

	renderers.NewTableRenderer(colorize).Render(w, buckets)

	if path := app.config.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteToTextfile(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("failed to write metrics textfile")
		}
	}
	return nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting dataportal-stats server on port %d (log_level=%s, live_log=%s, gbif_enabled=%t)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.LiveLog.DBPath,
			app.config.GBIF.Enabled)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}

package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
	"github.com/gokatarajesh/trivia-api/internal/server"
)

// Application aggregates shared infrastructure (DB, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	sqlDB *sql.DB
	http  *http.Server
}

// New bootstraps logger, Postgres, repositories, services and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	mode, err := quiz.ParseMode(cfg.Quiz.Selection)
	if err != nil {
		return nil, err
	}

	gdb, err := db.Open(ctx, cfg.Postgres, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle: %w", err)
	}

	if cfg.Postgres.AutoMigrate {
		if err := db.Migrate(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info().Msg("database migrations applied")
	}

	registry := metrics.NewRegistry()
	appMetrics := metrics.New(registry)

	questionRepo := repository.NewQuestionRepository(gdb)
	categoryRepo := repository.NewCategoryRepository(gdb)

	categorySvc := category.NewService(categoryRepo)
	questionSvc := question.NewService(questionRepo, categorySvc, logger)
	quizSvc := quiz.NewService(questionRepo, categorySvc, quiz.NewSelector(mode, nil), appMetrics, logger)

	router := server.NewRouter(server.Options{
		Logger:   logger,
		CORS:     cfg.CORS,
		Metrics:  appMetrics,
		Gatherer: registry,
		DB:       sqlDB,
	}, server.Handlers{
		Categories: category.NewHTTPHandler(categorySvc, logger),
		Questions:  question.NewHTTPHandler(questionSvc, categorySvc, logger),
		Quiz:       quiz.NewHTTPHandler(quizSvc, logger),
	})
	logger.Info().Str("quiz_selection", string(mode)).Msg("handlers initialized")

	return &Application{
		cfg:    cfg,
		logger: logger,
		sqlDB:  sqlDB,
		http:   server.NewHTTPServer(cfg, router),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}
	if err := a.sqlDB.Close(); err != nil {
		a.logger.Error().Err(err).Msg("postgres shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return runErr
}

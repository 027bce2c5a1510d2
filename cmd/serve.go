package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/tournament-brackets/brackets"
	"github.com/Dosada05/tournament-brackets/config"
	"github.com/Dosada05/tournament-brackets/db"
	"github.com/Dosada05/tournament-brackets/events"
	"github.com/Dosada05/tournament-brackets/handlers"
	"github.com/Dosada05/tournament-brackets/metrics"
	"github.com/Dosada05/tournament-brackets/repositories"
	api "github.com/Dosada05/tournament-brackets/routes"
	"github.com/Dosada05/tournament-brackets/services"
	"github.com/Dosada05/tournament-brackets/storage"
	"github.com/go-chi/chi/v5"
	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 15 * time.Second

func newLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "apply pending migrations before serving",
			},
		},
		Action: func(cCtx *cli.Context) error {
			return serve(cCtx.Context, cCtx.Bool("migrate"))
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply pending database migrations and exit",
		Action: func(cCtx *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger := newLogger(cfg.LogLevel)

			dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer dbConn.Close()

			applied, err := db.Migrate(cCtx.Context, dbConn)
			if err != nil {
				return err
			}
			logger.Info("migrations applied", slog.Any("files", applied))
			return nil
		},
	}
}

func serve(ctx context.Context, migrate bool) error {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(cfg.LogLevel)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.Bool("auth_enabled", cfg.AuthEnabled()),
		slog.Bool("storage_enabled", cfg.StorageEnabled()),
	)

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if migrate {
		applied, err := db.Migrate(ctx, dbConn)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Any("files", applied))
	}

	var uploader storage.FileUploader
	if cfg.StorageEnabled() {
		uploader, err = storage.NewR2Uploader(ctx, storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize R2 uploader: %w", err)
		}
		logger.Info("R2 uploader initialized", slog.String("bucket", cfg.R2BucketName))
	}

	publisher, err := events.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubjectPrefix, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	wsHub := brackets.NewHub(logger)
	go wsHub.Run(hubCtx)
	logger.Info("WebSocket Hub started")

	m := metrics.New()

	// Инициализация репозиториев
	tx := repositories.NewPostgresTransactor(dbConn)
	stageRepo := repositories.NewPostgresStageRepository(dbConn)
	structureRepo := repositories.NewPostgresStructureRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	participantRepo := repositories.NewPostgresParticipantRepository(dbConn)

	// Инициализация сервисов
	standingsService := services.NewStandingsService(tx, stageRepo, structureRepo, matchRepo, participantRepo, m, logger)
	stageService := services.NewStageService(tx, stageRepo, structureRepo, matchRepo, participantRepo)
	matchService := services.NewMatchService(matchRepo, standingsService, wsHub, publisher, logger)
	participantService := services.NewParticipantService(participantRepo)
	eventService := services.NewEventService(stageRepo, standingsService)
	exportService := services.NewExportService(standingsService, uploader)

	router := chi.NewRouter()
	api.SetupRoutes(router, cfg, api.Handlers{
		Stage:       handlers.NewStageHandler(stageService),
		Match:       handlers.NewMatchHandler(matchService),
		Participant: handlers.NewParticipantHandler(participantService),
		Standings:   handlers.NewStandingsHandler(standingsService, exportService, eventService),
		WebSocket:   handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins),
		Health:      handlers.NewHealthHandler(dbConn),
	}, m, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		// Закрываем websocket-клиентов до остановки сервера: Shutdown не ждёт hijacked соединения
		stopHub()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return err
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
	return nil
}

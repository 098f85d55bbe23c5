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

	"github.com/Dosada05/tennis-finals/brackets"
	"github.com/Dosada05/tennis-finals/config"
	"github.com/Dosada05/tennis-finals/db"
	"github.com/Dosada05/tennis-finals/handlers"
	"github.com/Dosada05/tennis-finals/repositories"
	api "github.com/Dosada05/tennis-finals/routes"
	"github.com/Dosada05/tennis-finals/services"
	"github.com/Dosada05/tennis-finals/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

// @title Tennis Finals API
// @version 1.0
// @description Round-robin groups, playoffs and results for a one-day tennis tournament.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	schedule, err := config.LoadSchedule(cfg.ScheduleConfigPath)
	if err != nil {
		logger.Error("failed to load schedule configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("schedule loaded",
		slog.Int("group_size", schedule.GroupSize),
		slog.String("scoring", string(schedule.Scoring)),
		slog.Bool("third_place", schedule.Playoffs.ThirdPlace),
	)

	// Хранилище: PostgreSQL, если задан DATABASE_URL, иначе память процесса
	var (
		tournamentRepo repositories.TournamentRepository
		playerRepo     repositories.PlayerRepository
	)
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			} else {
				logger.Info("database connection closed")
			}
		}()
		migrateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = db.Migrate(migrateCtx, dbConn)
		cancel()
		if err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("database connection established")

		tournamentRepo = repositories.NewPostgresTournamentRepository(dbConn)
		playerRepo = repositories.NewPostgresPlayerRepository(dbConn)
	} else {
		logger.Warn("DATABASE_URL is not set, state is kept in memory only")
		tournamentRepo = repositories.NewMemoryTournamentRepository()
		playerRepo = repositories.NewMemoryPlayerRepository()
	}

	// Архив завершённых турниров (Cloudflare R2), необязателен
	var archive storage.FileUploader
	r2Config := storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	}
	if r2Config.Enabled() {
		archive, err = storage.NewCloudflareR2Uploader(context.Background(), r2Config)
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2BucketName))
	}

	// Инициализация WebSocket Hub
	wsHub := brackets.NewHub(logger)
	go wsHub.Run()
	defer wsHub.Stop()
	logger.Info("WebSocket Hub started")

	// Инициализация сервисов
	authService, err := services.NewAuthService(cfg.AdminPasswordHash, cfg.AdminPassword, cfg.JWTSecretKey)
	if err != nil {
		logger.Error("failed to initialize auth service", slog.Any("error", err))
		os.Exit(1)
	}
	playerService := services.NewPlayerService(playerRepo, logger)
	var notifier services.Notifier = wsHub
	tournamentService := services.NewTournamentService(
		tournamentRepo,
		playerService,
		schedule,
		notifier,
		archive,
		logger,
	)
	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), 10*time.Second)
	err = tournamentService.Restore(restoreCtx)
	cancelRestore()
	if err != nil {
		logger.Error("failed to restore tournament", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Services initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Tournament: handlers.NewTournamentHandler(tournamentService),
		Match:      handlers.NewMatchHandler(tournamentService),
		Player:     handlers.NewPlayerHandler(playerService),
		WebSocket:  handlers.NewWebSocketHandler(wsHub, cfg.AllowedOrigins, logger),
	}, authService, cfg.AllowedOrigins, logger)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cafe-employee-api/internal/config"
	"github.com/cafe-employee-api/internal/database"
	"github.com/cafe-employee-api/internal/handler"
	"github.com/cafe-employee-api/internal/repository"
	"github.com/cafe-employee-api/internal/service"
	"github.com/cafe-employee-api/internal/storage"
	"github.com/cafe-employee-api/internal/validation"
)

const uploadPrefix = "/uploads"

func main() {
	// Загрузка конфигурации
	cfg := config.Load()

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Подключение к БД
	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := database.Migrate(db, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	files, err := storage.NewLocal(cfg.Storage.UploadDir, uploadPrefix)
	if err != nil {
		logger.Error("failed to init upload storage", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	cafeRepo := repository.NewCafeRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	// Инициализация сервисов
	v := validation.New()
	cafeService := service.NewCafeService(cafeRepo, files, v, logger)
	empService := service.NewEmployeeService(empRepo, v)

	// Настройка роутера
	router := handler.NewRouter(
		handler.NewCafeHandler(cafeService, logger),
		handler.NewEmployeeHandler(empService, logger),
		logger,
		handler.RouterConfig{
			UploadDir:      files.Dir(),
			UploadPrefix:   uploadPrefix,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		},
	)

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}

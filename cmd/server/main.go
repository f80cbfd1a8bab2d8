package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/avd/splitbook/internal/adapter/http"
	"github.com/avd/splitbook/internal/adapter/http/handler"
	"github.com/avd/splitbook/internal/adapter/http/middleware"
	postgresRepo "github.com/avd/splitbook/internal/adapter/repository/postgres"
	redisRepo "github.com/avd/splitbook/internal/adapter/repository/redis"
	"github.com/avd/splitbook/internal/domain"
	"github.com/avd/splitbook/internal/infrastructure/config"
	"github.com/avd/splitbook/internal/infrastructure/eventpublisher"
	"github.com/avd/splitbook/internal/infrastructure/logger"
	"github.com/avd/splitbook/internal/infrastructure/metrics"
	"github.com/avd/splitbook/internal/infrastructure/postgres"
	"github.com/avd/splitbook/internal/infrastructure/redis"
	"github.com/avd/splitbook/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	appMetrics := metrics.New()

	formatter := domain.AmountFormatter{
		DecimalSep:   cfg.DecimalSep,
		ThousandsSep: cfg.ThousandsSep,
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	retrier := postgresRepo.NewRetrier()
	idGen := postgresRepo.NewULIDGenerator()
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	sessionLock := redisRepo.NewSessionLock(redisClient)

	sink := eventpublisher.NewLogSink(nil)

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen)
	transactionUC := usecase.NewTransactionUseCase(
		txManager, transactionRepo, accountRepo, idGen,
		sink, appMetrics, formatter, cfg.DefaultCurrency,
	)
	sessionUC := usecase.NewSessionUseCase(
		txManager, transactionRepo, accountRepo, idGen,
		sessionLock, sink, retrier, appMetrics,
		formatter, cfg.DefaultCurrency, cfg.SessionTTL,
	)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	transactionHandler := handler.NewTransactionHandler(transactionUC, formatter)
	sessionHandler := handler.NewSessionHandler(sessionUC, formatter)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:     accountHandler,
		TransactionHandler: transactionHandler,
		SessionHandler:     sessionHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		RequestLogger:      middleware.NewLoggingMiddleware(log.Logger),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

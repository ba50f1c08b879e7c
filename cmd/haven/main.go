package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/geolocation"
	v1 "github.com/almamutuguti/Haven-Backend-sub000/internal/handler/http/v1"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/metrics"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/notification"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/repository"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/scheduler"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/service"
	"github.com/almamutuguti/Haven-Backend-sub000/pkg/logger"
	"github.com/almamutuguti/Haven-Backend-sub000/pkg/postgres"
	redisclient "github.com/almamutuguti/Haven-Backend-sub000/pkg/redis"
)

// @title Haven Emergency Response API
// @version 1.0
// @description Emergency-response coordination backend: alerts, hospital matching and hospital handoffs.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Outbound channels and the first-aider notification queue.
	sender := notification.NewChannelSender(cfg, log)
	publisher := notification.NewRedisPublisher(redisClient)
	worker := notification.NewWorker(redisClient, sender, log, cfg)
	worker.Start(ctx)

	mapsClient := geolocation.NewMapsClient(cfg, log)

	// Repositories.
	hospitalRepo := repository.NewHospitalRepository(dbpool, redisClient, cfg.DiscoveryCacheTTL)
	alertRepo := repository.NewAlertRepository(dbpool)
	commRepo := repository.NewCommunicationRepository(dbpool)

	// Services, in dependency order.
	alertService := service.NewAlertService(alertRepo, log)
	discoveryService := service.NewDiscoveryService(hospitalRepo, log, cfg)
	matchingService := service.NewMatchingService(discoveryService, hospitalRepo, log)
	commService := service.NewCommunicationService(commRepo, alertRepo, hospitalRepo, sender, publisher, log, cfg)
	verificationService := service.NewVerificationService(alertRepo, alertService, sender, log)
	orchestrator := service.NewEmergencyOrchestrator(alertService, discoveryService, commService, mapsClient, log)
	retryService := service.NewRetryService(commRepo, commService, log, cfg)

	// Background retry and timeout scans.
	sched, err := scheduler.New(retryService, log, cfg)
	if err != nil {
		log.Fatalf("Failed to build scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	handler := v1.NewHandler(
		alertService,
		verificationService,
		orchestrator,
		discoveryService,
		matchingService,
		commService,
		log,
		cfg,
	)

	router := gin.Default()
	router.Use(metrics.GinMiddleware())

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

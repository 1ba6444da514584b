package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	activityHttp "dashboard-metrics-service/internal/activity/adapters/http/fiber"
	activityRepoPg "dashboard-metrics-service/internal/activity/adapters/postgres"
	activityUsecase "dashboard-metrics-service/internal/activity/core/usecase"

	metricsHttp "dashboard-metrics-service/internal/metrics/adapters/http/fiber"
	metricsRepoPg "dashboard-metrics-service/internal/metrics/adapters/postgres"
	metricsUsecase "dashboard-metrics-service/internal/metrics/core/usecase"

	"dashboard-metrics-service/internal/config"
	"dashboard-metrics-service/internal/logging"
	"dashboard-metrics-service/internal/storage/postgres"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "dashboard-metrics-service/docs"
)

// @title Dashboard Metrics Service API
// @version 1.0
// @description Dashboard KPIs, time series and the activity feed for the mission-control board.
// @host localhost:8080
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// DB connection
	openCtx, cancelOpen := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := postgres.Open(openCtx, cfg.PostgresDSN, postgres.PoolConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	cancelOpen()
	if err != nil {
		logger.Fatal("postgres unavailable", zap.Error(err))
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(db, logger); err != nil {
			logger.Fatal("migration failed", zap.Error(err))
		}
	}

	// Adapter-level DB wrappers
	activityDB := activityRepoPg.NewSQLDB(db)
	metricsDB := metricsRepoPg.NewSQLDB(db, cfg.QueryTimeout)

	// Repositories
	activityRepository := activityRepoPg.NewActivityRepository(activityDB)
	metricsRepository := metricsRepoPg.NewMetricsRepository(metricsDB)

	// Usecases
	recordActivityUC := activityUsecase.NewRecordActivityUseCase(activityRepository, nil)
	listActivityUC := activityUsecase.NewListActivityUseCase(activityRepository)
	dashboardUC := metricsUsecase.NewGetDashboardMetricsUseCase(metricsRepository, nil)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logging.RequestLogger(logger))

	api := app.Group("/api/v1")

	// activity endpoints
	activityHandler := activityHttp.NewActivityHandler(recordActivityUC, listActivityUC, logger)
	api.Post("/activity", activityHandler.CreateActivity)
	api.Post("/activity/bulk", activityHandler.BulkCreateActivity)
	api.Get("/activity", activityHandler.ListActivity)
	api.Get("/activity/task-comments", activityHandler.ListTaskComments)

	// metrics endpoints
	metricsHandler := metricsHttp.NewMetricsHandler(dashboardUC, logger)
	api.Get("/metrics/dashboard", metricsHandler.GetDashboardMetrics)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.Error("fiber stopped", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", cfg.HTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", zap.Error(err))
	}

	logger.Info("server exiting")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kidneycare/backend/internal/config"
	"github.com/kidneycare/backend/internal/delivery/http"
	"github.com/kidneycare/backend/internal/model"
	"github.com/kidneycare/backend/internal/repository/file"
	"github.com/kidneycare/backend/internal/repository/postgres"
	"github.com/kidneycare/backend/internal/service"
	applog "github.com/kidneycare/backend/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg, err := config.Load(getEnv("CONFIG_FILE", "config.yaml"))
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := applog.New(applog.Options{
		Level:      cfg.Log.Level,
		Production: cfg.IsProduction(),
		File:       cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	// Classifier is loaded once, before the listener starts
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, closeStore, err := openArtifactStore(ctx, cfg)
	if err != nil {
		zlog.Fatal("Could not open artifact store", zap.Error(err))
	}
	classifier, err := model.Load(ctx, store)
	closeStore()
	if err != nil {
		zlog.Fatal("Could not load classifier", zap.Error(err))
	}
	zlog.Info("Classifier loaded",
		zap.String("source", store.Describe()),
		zap.String("kind", classifier.Kind()),
		zap.Int("features", classifier.NumFeatures()),
	)

	// Dependency Injection: Services
	invoker, err := service.NewInvoker(classifier, cfg.Prediction.CacheSize)
	if err != nil {
		zlog.Fatal("Could not create invoker", zap.Error(err))
	}
	reports, err := service.NewReportRenderer(cfg.Report.Language)
	if err != nil {
		zlog.Fatal("Could not create report renderer", zap.Error(err))
	}
	assessments := service.NewAssessmentService(invoker, zlog)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "CKD Prediction API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: http.NewErrorHandler(zlog),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	handler := http.NewHandler(assessments, reports, http.ClassifierInfo{
		Kind:     classifier.Kind(),
		Features: classifier.NumFeatures(),
		Source:   store.Describe(),
	})
	http.SetupRoutes(app, handler)

	// Graceful shutdown
	go func() {
		zlog.Info("Server starting", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zlog.Warn("Server forced to shutdown", zap.Error(err))
	}
	zlog.Info("Server exited gracefully")
}

// openArtifactStore returns the configured store and a func releasing its resources
func openArtifactStore(ctx context.Context, cfg *config.Config) (service.ArtifactStore, func(), error) {
	if cfg.Artifact.Source != config.SourcePostgres {
		return file.NewStore(cfg.Artifact.Path), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewArtifactStore(pool, cfg.Artifact.Name), pool.Close, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

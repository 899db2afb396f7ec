package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"patientsapi/internal/config"
	"patientsapi/internal/database"
	"patientsapi/internal/database/migration"
	handlers "patientsapi/internal/http/handler"
	"patientsapi/internal/http/middleware"
	"patientsapi/internal/otel"
	"patientsapi/internal/repository"
	"patientsapi/internal/repository/memory"
	"patientsapi/internal/repository/postgres"
	"patientsapi/internal/seed"
	"patientsapi/internal/service"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Initialize OTLP tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	// Select the backing store: PostgreSQL when configured, otherwise the
	// in-memory store. The store instance is constructed here and injected;
	// nothing downstream reaches for a process-global database.
	var patientRepo repository.PatientRepository
	var db *sql.DB
	if cfg.Database.Host != "" {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		patientRepo = postgres.NewPatientPostgres(db)
	} else {
		patientRepo = memory.NewPatientMemory()
	}

	// Seed sample data at startup (bootstrap concern, not runtime behavior)
	if cfg.Seed.Enabled {
		count, err := seed.Run(ctx, patientRepo, cfg.Seed.Count)
		if err != nil {
			log.Fatalf("failed to seed patients (persisted %d): %v", count, err)
		}
	}

	patientSvc := service.NewPatientService(patientRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// Distributed tracing spans per request
	app.Use(otelfiber.Middleware())

	// Prometheus request metrics with a scrape endpoint
	reg := prometheus.NewRegistry()
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, patientSvc)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

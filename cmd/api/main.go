package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"backendservice/docs"
	"backendservice/internal/config"
	"backendservice/internal/database"
	"backendservice/internal/database/migration"
	handlers "backendservice/internal/http/handler"
	"backendservice/internal/http/middleware"
	"backendservice/internal/logging"
	"backendservice/internal/otel"
	"backendservice/internal/repository"
	"backendservice/internal/repository/memory"
	"backendservice/internal/repository/postgres"
	"backendservice/internal/resolver"
	"backendservice/internal/service"
	"backendservice/internal/storage"
)

// @title Backend Service API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()
	loc := cfg.Location()
	log := logging.New(os.Stdout, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		fatal(log, "tracing_init_failed", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, contentRepo, transferRepo := openStores(ctx, cfg, log)
	if db != nil {
		defer db.Close()
	}

	// Export stays disabled unless MinIO is configured; a nil Storage interface signals that.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			fatal(log, "object_storage_init_failed", err)
		}
	}

	contentSvc := service.NewContentService(objStore, contentRepo, service.ContentOptions{
		PublicBaseURL:  cfg.PublicBaseURL,
		MaxRandomBytes: cfg.RandomContentMaxBytes,
		ExportExpiry:   cfg.ExportURLExpiry(),
		Logger:         log,
	})
	transferSvc := service.NewTransferService(resolver.NewHTTPResolver(cfg.ResolverTimeout()), transferRepo, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if db != nil {
		reg.MustRegister(collectors.NewDBStatsCollector(db, cfg.Database.Name))
	}
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		fatal(log, "metrics_init_failed", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(loc))
	app.Use(otelfiber.Middleware())
	app.Use(metrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	var pinger handlers.Pinger
	if db != nil {
		pinger = db
	}
	handlers.RegisterRoutes(app, pinger, contentSvc, transferSvc)

	go func() {
		<-ctx.Done()
		log.Info("server_shutdown", "component", "http")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := ":" + cfg.Port
	log.Info("server_start",
		"component", "http",
		"addr", addr,
		"store_backend", cfg.StoreBackend,
		"export_enabled", objStore != nil,
	)
	if err := app.Listen(addr); err != nil {
		fatal(log, "server_start_failed", err)
	}
}

// openStores returns the repositories for cfg.StoreBackend; db is nil for the memory backend.
func openStores(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) (*sql.DB, repository.ContentRepository, repository.TransferRepository) {
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		return nil, memory.NewContentMemory(), memory.NewTransferMemory()
	case config.StoreBackendPostgres:
	default:
		log.Error("unknown_store_backend", "store_backend", cfg.StoreBackend)
		os.Exit(1)
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		fatal(log, "database_connect_failed", err)
	}
	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		_ = db.Close()
		fatal(log, "database_migration_failed", err)
	}
	return db, postgres.NewContentPostgres(db), postgres.NewTransferPostgres(db)
}

func fatal(log *slog.Logger, event string, err error) {
	log.Error(event, "error", err.Error())
	os.Exit(1)
}

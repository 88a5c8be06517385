package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/campus-showcase/showcase-api/api/swagger"
	"github.com/campus-showcase/showcase-api/internal/events"
	"github.com/campus-showcase/showcase-api/internal/handler"
	"github.com/campus-showcase/showcase-api/internal/middleware"
	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/repository"
	"github.com/campus-showcase/showcase-api/internal/service"
	"github.com/campus-showcase/showcase-api/pkg/cache"
	"github.com/campus-showcase/showcase-api/pkg/config"
	"github.com/campus-showcase/showcase-api/pkg/database"
	"github.com/campus-showcase/showcase-api/pkg/export"
	"github.com/campus-showcase/showcase-api/pkg/jobs"
	"github.com/campus-showcase/showcase-api/pkg/logger"
	corsmiddleware "github.com/campus-showcase/showcase-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campus-showcase/showcase-api/pkg/middleware/requestid"
	"github.com/campus-showcase/showcase-api/pkg/storage"
)

// @title Activity Showcase API
// @version 1.0.0
// @description Admin and public API for campus activities, winners, gallery, participants and student performance
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()
	checks := map[string]handler.ReadinessCheck{}

	stores, closeStores, err := openStores(ctx, cfg, logr, checks)
	if err != nil {
		return err
	}
	defer closeStores()

	bus := events.NewBus(logr.Named("events"))
	defer bus.Close()
	stores = stores.Decorate(metrics, bus)

	var cacheRepo *repository.CacheRepository
	if cfg.Performance.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable; performance cache disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
			defer cacheRepo.Close() //nolint:errcheck
			checks["redis"] = cacheRepo.Ping
		}
	}
	var cacheBackend service.CacheRepository
	if cacheRepo != nil {
		cacheBackend = cacheRepo
	}
	cacheSvc := service.NewCacheService(cacheBackend, metrics, cfg.Performance.CacheTTL, logr, cacheRepo != nil)

	queue := jobs.NewQueue("changes", jobs.QueueConfig{
		Workers:    cfg.Notify.Workers,
		MaxRetries: 2,
		RetryDelay: 500 * time.Millisecond,
		Logger:     logr.Named("jobs"),
	})
	changes := service.NewChangeService(bus, queue, cacheSvc, metrics, logr)
	unsubscribe, err := changes.Start()
	if err != nil {
		return err
	}
	defer unsubscribe()
	queue.Start(ctx)
	defer queue.Stop()

	uploadStore, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		return fmt.Errorf("open uploads dir: %w", err)
	}

	validate := models.NewValidator()
	performance := service.NewPerformanceService(service.PerformanceCollections{
		Students:     stores.Students,
		Participants: stores.Participants,
		Activities:   stores.Activities,
	}, cacheSvc, cfg.Performance.CacheTTL, metrics, logr)

	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
		AdminEmail:        cfg.Admin.Email,
		AdminPasswordHash: cfg.Admin.PasswordHash,
	})

	handlers := handler.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Winners:      handler.NewWinnerHandler(service.NewWinnerService(stores.Winners, validate, metrics, logr)),
		Activities:   handler.NewActivityHandler(service.NewActivityService(stores.Activities, validate, metrics, logr)),
		Gallery:      handler.NewGalleryHandler(service.NewGalleryService(stores.Gallery, validate, metrics, logr)),
		Participants: handler.NewParticipantHandler(service.NewParticipantService(stores.Participants, validate, metrics, logr)),
		Students:     handler.NewStudentHandler(service.NewStudentService(stores.Students, validate, metrics, logr), cfg.Import.MaxBytes),
		Performance: handler.NewPerformanceHandler(performance,
			service.NewExportService(performance, export.NewCSVExporter(), export.NewPDFExporter(), logr)),
		Uploads: handler.NewUploadHandler(service.NewUploadService(uploadStore, service.UploadConfig{
			PublicBase:   cfg.Uploads.PublicBase,
			MaxSizeBytes: cfg.Uploads.MaxFileSizeBytes,
			AllowedMIMEs: cfg.Uploads.AllowedMIMEs,
		}, logr), cfg.Uploads.MaxFileSizeBytes),
		Changes: handler.NewChangeHandler(changes),
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready", "/metrics"))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.StoreTimeout(cfg.Store.Timeout))

	ops := handler.NewMetricsHandler(metrics, checks, logr)
	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	r.GET("/metrics", ops.Prometheus)
	if strings.HasPrefix(cfg.Uploads.PublicBase, "/") {
		r.Static(cfg.Uploads.PublicBase, uploadStore.BaseDir())
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handlers, middleware.JWT(authSvc), middleware.Audit(logr.Named("audit")))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("store_backend", cfg.Store.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStores opens the configured collection backend and registers its
// readiness check.
func openStores(ctx context.Context, cfg *config.Config, logr *zap.Logger, checks map[string]handler.ReadinessCheck) (*repository.Stores, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := repository.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		checks["postgres"] = pinger(db)
		return repository.NewSQLStores(db), func() { _ = db.Close() }, nil
	default:
		dataDir, err := storage.NewLocalStorage(cfg.Store.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open data dir: %w", err)
		}
		stores, err := repository.OpenLocalStores(dataDir, cfg.Store.SeedOnEmpty, logr.Named("store"))
		if err != nil {
			return nil, nil, err
		}
		checks["local_store"] = func(context.Context) error {
			_, err := os.Stat(dataDir.BaseDir())
			return err
		}
		return stores, func() {}, nil
	}
}

func pinger(db *sqlx.DB) handler.ReadinessCheck {
	return func(ctx context.Context) error {
		return db.PingContext(ctx)
	}
}

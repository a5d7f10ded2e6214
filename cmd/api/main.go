package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/fas_dashboard/internal/cache"
	"github.com/GTDGit/fas_dashboard/internal/config"
	"github.com/GTDGit/fas_dashboard/internal/database"
	"github.com/GTDGit/fas_dashboard/internal/handler"
	"github.com/GTDGit/fas_dashboard/internal/middleware"
	"github.com/GTDGit/fas_dashboard/internal/repository"
	"github.com/GTDGit/fas_dashboard/internal/service"
	"github.com/GTDGit/fas_dashboard/internal/sse"
	"github.com/GTDGit/fas_dashboard/internal/store"
	"github.com/GTDGit/fas_dashboard/internal/worker"
)

// main is the application entrypoint for the FAS dashboard API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Str("store", cfg.StoreDriver).Msg("starting fas dashboard api")

	// 3. Open the record store
	backend, closeStore, err := openStore(cfg)
	if err != nil {
		log.Error().Err(err).Msg("record store initialization failed")
		fmt.Fprintf(os.Stderr, "record store initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	// 4. Initialize repositories
	productRepo := repository.NewProductRepository(backend)
	scenarioRepo := repository.NewScenarioRepository(backend)

	// 5. Initialize SSE hub
	hub := sse.NewHub()
	notifier := sse.NewHubNotifier(hub)

	// 6. Initialize services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var uploader service.ObjectUploader
	if cfg.Export.Bucket != "" {
		s3Svc, err := service.NewS3Service(ctx, &cfg.Export)
		if err != nil {
			log.Warn().Err(err).Msg("S3 initialization failed - export archiving will be disabled")
		} else {
			uploader = s3Svc
			log.Info().Str("bucket", cfg.Export.Bucket).Msg("export archiving enabled")
		}
	}

	productSvc := service.NewProductService(productRepo, scenarioRepo, notifier)
	scenarioSvc := service.NewScenarioService(scenarioRepo, productRepo, notifier)
	statsSvc := service.NewStatsService(productRepo, scenarioRepo)
	exportSvc := service.NewExportService(productRepo, uploader)

	// 7. Initialize handlers
	jwtMw := middleware.NewJWTMiddleware(cfg.JWTSecret)
	handlers := &handler.Handlers{
		Health:   handler.NewHealthHandler(cfg.StoreDriver, backend),
		Product:  handler.NewProductHandler(productSvc),
		Scenario: handler.NewScenarioHandler(scenarioSvc),
		Export:   handler.NewExportHandler(exportSvc),
		Stats:    handler.NewStatsHandler(statsSvc),
		SSE:      handler.NewSSEHandler(hub, cfg.JWTSecret, jwtMw.Limiter()),
	}

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSHosts))
	router.Use(middleware.LoggingMiddleware())
	handler.SetupRoutes(router, handlers, jwtMw)

	// 9. Start workers
	if uploader != nil && cfg.Export.ArchiveInterval > 0 {
		go worker.NewArchiveWorker(exportSvc, cfg.Export.ArchiveInterval).Start(ctx)
	}

	// 10. Start HTTP server. WriteTimeout defaults to 0 so SSE streams stay open.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	cancel()

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// openStore builds the record store backend selected by STORE_DRIVER.
func openStore(cfg *config.Config) (store.Backend, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverRedis:
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis connection failed: %w", err)
		}
		log.Info().Msg("redis connected successfully")
		return store.NewRedisBackend(redisClient), func() { _ = redisClient.Close() }, nil

	case config.StoreDriverPostgres:
		db, err := database.Connect(&cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection failed: %w", err)
		}
		if err := database.Migrate(db.DB); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migration failed: %w", err)
		}
		log.Info().Msg("migrations completed successfully")
		return store.NewPostgresBackend(db), func() { _ = db.Close() }, nil

	default:
		log.Warn().Msg("using in-memory record store, data is lost on restart")
		return store.NewMemoryBackend(), func() {}, nil
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

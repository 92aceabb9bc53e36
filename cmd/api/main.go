package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/handler"
	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/repository"
	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-sanitizer/internal/domain/valueobject"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/archive"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/cache"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/catalog"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/geo"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/metadata"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/observability"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/server"
	s3storage "github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/storage"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/geocode"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/sanitize"
	"github.com/marcos-nsantos/photo-sanitizer/internal/usecase/verify"
)

// @title			Photo Sanitizer API
// @version		1.0
// @description	Strips, uniquifies and re-tags photos for business listings.
// @BasePath		/api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	devices, err := cat.ListDevices(ctx)
	if err != nil {
		logger.Fatal("failed to list devices", zap.Error(err))
	}

	// Optional infrastructure. Interfaces stay untyped nil when disabled.
	var (
		geocodeCache repository.GeocodeCache
		geocoder     repository.AddressGeocoder
		archives     storage.ArchiveStorage
		rateLimiter  *middleware.RateLimiter
	)

	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()

		geocodeCache = cache.NewGeocodeCache(redisClient, cfg.Redis.CacheTTL)
		if cfg.RateLimit.Enabled {
			rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
		}
	}

	if cfg.Geocoder.Enabled {
		geocoder = geo.NewNominatimClient(cfg.Geocoder, valueobject.ColombiaBounds)
	}

	if cfg.S3.Enabled {
		s3Storage, err := s3storage.NewS3Storage(cfg.S3)
		if err != nil {
			logger.Fatal("failed to create s3 storage", zap.Error(err))
		}
		archives = s3Storage
	}

	imageProcessor := s3storage.NewImageProcessor(devices, logger)
	archiver := archive.NewZipArchiver()

	// Use cases
	geocodeSvc := geocode.NewService(cat, geocoder, geocodeCache, cfg.Geocoder.MaxCityDistance*1000, logger)
	sanitizeSvc := sanitize.NewService(geocodeSvc, cat, imageProcessor, archiver, archives, sanitize.Options{
		MaxFiles:         cfg.Sanitize.MaxFiles,
		Workers:          cfg.Sanitize.Workers,
		DefaultIntensity: cfg.Sanitize.DefaultIntensity,
		JitterRadius:     cfg.Sanitize.JitterRadius,
		MaxJitterRadius:  cfg.Sanitize.MaxJitterRadius,
		WindowDays:       cfg.Sanitize.WindowDays,
		FirstHour:        cfg.Sanitize.FirstHour,
		LastHour:         cfg.Sanitize.LastHour,
		Seed:             cfg.Sanitize.Seed,
		ArchivePrefix:    cfg.S3.KeyPrefix,
		URLExpiry:        cfg.S3.URLExpiry,
	}, logger)
	verifySvc := verify.NewService(metadata.NewReader())

	// Handlers
	sanitizeHandler := handler.NewSanitizeHandler(sanitizeSvc, cfg.Sanitize.MaxUploadSize, cfg.Sanitize.ErrorHeaderLimit)
	geocodeHandler := handler.NewGeocodeHandler(geocodeSvc)
	catalogHandler := handler.NewCatalogHandler(cat)
	verifyHandler := handler.NewVerifyHandler(verifySvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		SanitizeHandler: sanitizeHandler,
		GeocodeHandler:  geocodeHandler,
		CatalogHandler:  catalogHandler,
		VerifyHandler:   verifyHandler,
		RateLimiter:     rateLimiter,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Logger:          logger,
		Environment:     cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	logger.Info("photo sanitizer configured",
		zap.Int("devices", len(devices)),
		zap.Bool("geocoder", geocoder != nil),
		zap.Bool("geocode_cache", geocodeCache != nil),
		zap.Bool("archive_upload", archives != nil),
		zap.Bool("rate_limit", rateLimiter != nil),
		zap.Int("workers", cfg.Sanitize.Workers),
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
	}

	logger.Info("server stopped")
}

package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-sanitizer/internal/adapter/handler"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/middleware"
)

type Router struct {
	engine          *gin.Engine
	sanitizeHandler *handler.SanitizeHandler
	geocodeHandler  *handler.GeocodeHandler
	catalogHandler  *handler.CatalogHandler
	verifyHandler   *handler.VerifyHandler
	rateLimiter     *middleware.RateLimiter
	allowedOrigins  []string
	logger          *zap.Logger
}

type RouterConfig struct {
	SanitizeHandler *handler.SanitizeHandler
	GeocodeHandler  *handler.GeocodeHandler
	CatalogHandler  *handler.CatalogHandler
	VerifyHandler   *handler.VerifyHandler
	// RateLimiter is optional; nil leaves the processing routes unthrottled.
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:          engine,
		sanitizeHandler: cfg.SanitizeHandler,
		geocodeHandler:  cfg.GeocodeHandler,
		catalogHandler:  cfg.CatalogHandler,
		verifyHandler:   cfg.VerifyHandler,
		rateLimiter:     cfg.RateLimiter,
		allowedOrigins:  cfg.AllowedOrigins,
		logger:          cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	{
		api.GET("/cities", r.catalogHandler.Cities)
		api.GET("/devices", r.catalogHandler.Devices)

		processing := api.Group("")
		if r.rateLimiter != nil {
			processing.Use(r.rateLimiter.Limit())
		}
		{
			processing.POST("/geocode", r.geocodeHandler.Geocode)
			processing.POST("/sanitize", r.sanitizeHandler.Sanitize)
			processing.POST("/verify", r.verifyHandler.Verify)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

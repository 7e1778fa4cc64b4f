package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/munchbox/shipment-service/internal/metrics"
	"github.com/munchbox/shipment-service/internal/middleware"
	"github.com/munchbox/shipment-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RequestTimeout    time.Duration
	RateLimit         int
	RateWindow        time.Duration
	APIKeys           map[string]bool
	EnableAuth        bool
	JWTSecretKey      string
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	CatalogCacheTTL   time.Duration
	LoggingService    service.LoggingService
	BoxCatalogService service.BoxCatalogService
	Calculator        service.ShipmentCalculator
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
		EnableAuth: false,
	}
}

// NewRouter creates and configures the Gin router for the shipment service.
func NewRouter(routes *ShipmentRoutes, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	if cfg.EnableAuth && cfg.JWTSecretKey != "" {
		// Estimate stays public for anonymous carts
		api.POST("/shipments/estimate", routes.handler.EstimateShipment)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(cfg.JWTSecretKey))
		if cfg.RateLimit > 0 {
			limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
			protected.Use(limiter.SubjectRateLimit())
		}
		routes.RegisterProtectedRoutes(protected, &cfg)
	} else {
		routes.RegisterPublicRoutes(api)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "accept", "Cache-Control", "X-Requested-With", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	if cfg.RequestTimeout > 0 {
		router.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	// Expose the logging service to handlers for audit logging
	router.Use(func(c *gin.Context) {
		c.Set("logging_service", cfg.LoggingService)
		c.Next()
	})

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.EnableIdempotency {
		idempotencyCfg := middleware.DefaultIdempotencyConfig()
		api.Use(middleware.Idempotency(idempotencyCfg))
	}

	// API key authentication (when JWT auth is not configured)
	if cfg.EnableAuth && cfg.JWTSecretKey == "" && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
}

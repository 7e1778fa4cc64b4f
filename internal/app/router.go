// Package app provides router configuration.
package app

import (
	"context"

	"github.com/munchbox/shipment-service/config"
	"github.com/munchbox/shipment-service/internal/http"
	"github.com/munchbox/shipment-service/internal/repository"
	"github.com/munchbox/shipment-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Routes        *http.ShipmentRoutes
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var boxCatalogService service.BoxCatalogService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.BoxCatalogRepo != nil {
			boxCatalogService = service.NewBoxCatalogService(dbComponents.BoxCatalogRepo)
		}
	}

	var handlerOpts []http.HandlerOption
	if cfg.Calculator.CatalogCacheTTL > 0 {
		handlerOpts = append(handlerOpts, http.WithCatalogCacheTTL(cfg.Calculator.CatalogCacheTTL))
	}

	routes := http.NewShipmentRoutes(serviceComponents.Calculator, boxCatalogService, handlerOpts...)
	healthHandler := http.NewHealthHandler()

	// Register database and circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
		}
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_box_catalog", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RequestTimeout:    cfg.Server.RequestTimeout,
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		JWTSecretKey:      cfg.Auth.JWTSecretKey,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		CatalogCacheTTL:   cfg.Calculator.CatalogCacheTTL,
		LoggingService:    loggingService,
		BoxCatalogService: boxCatalogService,
		Calculator:        serviceComponents.Calculator,
	}

	return &RouterComponents{
		Routes:        routes,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// mongoChecker adapts the MongoDB connection to the health checker interface.
type mongoChecker struct {
	db *repository.MongoDB
}

func (m mongoChecker) Check() error {
	return m.db.HealthCheck(context.Background())
}

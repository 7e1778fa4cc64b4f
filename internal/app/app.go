// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/munchbox/shipment-service/config"
	"github.com/munchbox/shipment-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize business services
	serviceComponents := InitializeServices(cfg.Calculator)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize router components (routes, health handler and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.Routes, routerComponents.HealthHandler, routerComponents.Config)
}

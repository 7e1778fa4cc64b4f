// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/munchbox/shipment-service/config"
	"github.com/munchbox/shipment-service/internal/circuitbreaker"
	"github.com/munchbox/shipment-service/internal/domain/model"
	"github.com/munchbox/shipment-service/internal/repository"
	"github.com/munchbox/shipment-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	BoxCatalogRepo        repository.BoxCatalogRepositoryInterface
	LoggingService        service.LoggingService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	catalogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-box-catalog",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	catalogRepo := repository.NewBoxCatalogRepository(db)
	catalogRepoWithCB := repository.NewBoxCatalogRepositoryWithCircuitBreaker(catalogRepo, catalogCB)

	// Seed the default box catalog if none is active
	if err := initializeDefaultBoxCatalog(catalogRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default box catalog")
	}

	return &DatabaseComponents{
		DB:                    db,
		BoxCatalogRepo:        catalogRepoWithCB,
		LoggingService:        loggingService,
		CatalogCircuitBreaker: catalogCB,
		LogsCircuitBreaker:    logsCB,
	}
}

// initializeDefaultBoxCatalog creates the default box catalog configuration if none exists.
func initializeDefaultBoxCatalog(repo repository.BoxCatalogRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		catalog := model.DefaultBoxCatalog()
		if _, err := repo.Create(ctx, catalog, "system"); err != nil {
			return err
		}
		log.Info().Int("boxes", len(catalog)).Msg("Created default box catalog")
	}

	return nil
}

// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/munchbox/shipment-service/internal/circuitbreaker"
	"github.com/munchbox/shipment-service/internal/domain/model"
)

// BoxCatalogRepositoryWithCircuitBreaker wraps BoxCatalogRepository with circuit breaker protection.
type BoxCatalogRepositoryWithCircuitBreaker struct {
	repo           *BoxCatalogRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBoxCatalogRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewBoxCatalogRepositoryWithCircuitBreaker(repo *BoxCatalogRepository, cb *circuitbreaker.CircuitBreaker) *BoxCatalogRepositoryWithCircuitBreaker {
	return &BoxCatalogRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active box catalog configuration with circuit breaker protection.
func (r *BoxCatalogRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*BoxCatalogConfig, error) {
	var result *BoxCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - return nil so callers fall back to the default catalog
		return nil, nil
	}
	return result, err
}

// Create creates a new box catalog configuration with circuit breaker protection.
func (r *BoxCatalogRepositoryWithCircuitBreaker) Create(ctx context.Context, catalog model.BoxCatalog, createdBy string) (*BoxCatalogConfig, error) {
	var result *BoxCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, catalog, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates an existing box catalog configuration with circuit breaker protection.
func (r *BoxCatalogRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, catalog model.BoxCatalog, updatedBy string) (*BoxCatalogConfig, error) {
	var result *BoxCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, catalog, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns all box catalog configurations with circuit breaker protection.
func (r *BoxCatalogRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]BoxCatalogConfig, error) {
	var result []BoxCatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *BoxCatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

//go:build integration

// Package testutil provides testcontainers setup for integration tests.
package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB creates and starts a MongoDB testcontainer and returns its
// connection URI. Prefer the shared container via SetupTestMainWithMongoDB
// for whole-package test runs; starting a container takes tens of seconds.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoDBContainer{
		Container: mongoContainer,
		URI:       uri,
	}, nil
}

// Cleanup terminates the MongoDB container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container != nil {
		if err := m.Container.Terminate(ctx); err != nil {
			return fmt.Errorf("failed to terminate container: %w", err)
		}
	}
	return nil
}

//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munchbox/shipment-service/internal/circuitbreaker"
	"github.com/munchbox/shipment-service/internal/domain/model"
)

func TestBoxCatalogRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewBoxCatalogRepository(db)

	t.Run("get active when none exists", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("create catalog", func(t *testing.T) {
		catalog := model.DefaultBoxCatalog()
		config, err := repo.Create(ctx, catalog, "test-user")
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, catalog, config.Boxes)
		assert.True(t, config.Active)
		assert.Equal(t, 1, config.Version)
		assert.Equal(t, "test-user", config.CreatedBy)
		assert.False(t, config.ID.IsZero())
	})

	t.Run("get active after create", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.True(t, active.Active)
		require.Len(t, active.Boxes, 3)
		assert.Equal(t, "box-s", active.Boxes[0].ID)
		// math.MaxInt round-trips through BSON int64
		assert.Equal(t, model.UnboundedCeiling, active.Boxes[2].MaxWeightGrams)
	})

	t.Run("create new active deactivates old", func(t *testing.T) {
		oldActive, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, oldActive)

		custom := model.BoxCatalog{
			{
				ID:                  "box-xl",
				Name:                "Extra Large Box",
				MaxWeightGrams:      model.UnboundedCeiling,
				MaxPackets:          model.UnboundedCeiling,
				Dimensions:          model.Dimensions{LengthCm: 60, BreadthCm: 40, HeightCm: 40},
				OverheadWeightGrams: 80,
			},
		}
		newConfig, err := repo.Create(ctx, custom, "test-user-2")
		require.NoError(t, err)
		require.NotNil(t, newConfig)

		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "box-xl", active.Boxes[0].ID)
		assert.NotEqual(t, oldActive.ID, active.ID)
	})

	t.Run("update catalog in place", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)

		updated := model.DefaultBoxCatalog()
		updated[0].OverheadWeightGrams = 35
		config, err := repo.Update(ctx, active.ID, updated, "test-updater")
		require.NoError(t, err)
		assert.Equal(t, 35, config.Boxes[0].OverheadWeightGrams)
		assert.Equal(t, active.Version+1, config.Version)
		assert.Equal(t, "test-updater", config.UpdatedBy)
	})

	t.Run("list all configs", func(t *testing.T) {
		configs, err := repo.List(ctx, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(configs), 2)
	})

	t.Run("list with limit", func(t *testing.T) {
		configs, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, len(configs))
	})
}

func TestBoxCatalogRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewBoxCatalogRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewBoxCatalogRepositoryWithCircuitBreaker(repo, cb)

	t.Run("circuit breaker allows successful operations", func(t *testing.T) {
		config, err := wrappedRepo.Create(ctx, model.DefaultBoxCatalog(), "test")
		require.NoError(t, err)
		assert.NotNil(t, config)

		active, err := wrappedRepo.GetActive(ctx)
		require.NoError(t, err)
		assert.NotNil(t, active)
	})

	t.Run("circuit breaker stays closed", func(t *testing.T) {
		stats := cb.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)
	})
}

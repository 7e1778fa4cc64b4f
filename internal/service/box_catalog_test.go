package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/munchbox/shipment-service/internal/domain/model"
	"github.com/munchbox/shipment-service/internal/mocks"
	"github.com/munchbox/shipment-service/internal/repository"
)

func TestValidateCatalog(t *testing.T) {
	base := model.DefaultBoxCatalog()

	tests := []struct {
		name    string
		catalog model.BoxCatalog
		wantErr string
	}{
		{
			name:    "default catalog is valid",
			catalog: base,
		},
		{
			name:    "single unbounded box is valid",
			catalog: model.BoxCatalog{base[2]},
		},
		{
			name:    "empty catalog",
			catalog: model.BoxCatalog{},
			wantErr: "at least one box category",
		},
		{
			name: "missing id",
			catalog: model.BoxCatalog{
				{Name: "No ID", MaxWeightGrams: model.UnboundedCeiling, MaxPackets: model.UnboundedCeiling, OverheadWeightGrams: 30},
			},
			wantErr: "has no id",
		},
		{
			name: "zero ceilings",
			catalog: model.BoxCatalog{
				{ID: "box-s", MaxWeightGrams: 0, MaxPackets: 2, OverheadWeightGrams: 30},
			},
			wantErr: "non-positive ceilings",
		},
		{
			name: "negative overhead",
			catalog: model.BoxCatalog{
				{ID: "box-s", MaxWeightGrams: model.UnboundedCeiling, MaxPackets: model.UnboundedCeiling, OverheadWeightGrams: -1},
			},
			wantErr: "negative overhead weight",
		},
		{
			name:    "descending weight ceilings",
			catalog: model.BoxCatalog{base[1], base[0], base[2]},
			wantErr: "weight ceiling must exceed",
		},
		{
			name: "descending packet ceilings",
			catalog: model.BoxCatalog{
				{ID: "box-s", MaxWeightGrams: 500, MaxPackets: 4, OverheadWeightGrams: 30},
				{ID: "box-m", MaxWeightGrams: 1000, MaxPackets: 2, OverheadWeightGrams: 40},
				base[2],
			},
			wantErr: "packet ceiling must exceed",
		},
		{
			name:    "bounded last box",
			catalog: model.BoxCatalog{base[0], base[1]},
			wantErr: "unbounded weight ceiling",
		},
		{
			name: "bounded packet ceiling on last box",
			catalog: model.BoxCatalog{
				base[0],
				{ID: "box-l", Name: "Large Box", MaxWeightGrams: model.UnboundedCeiling, MaxPackets: 8, OverheadWeightGrams: 50},
			},
			wantErr: "unbounded packet ceiling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCatalog(tt.catalog)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBoxCatalogService_GetActive(t *testing.T) {
	ctx := context.Background()

	t.Run("returns active config", func(t *testing.T) {
		mockRepo := new(mocks.MockBoxCatalogRepositoryInterface)
		expected := &repository.BoxCatalogConfig{Boxes: model.DefaultBoxCatalog(), Active: true, Version: 1}
		mockRepo.On("GetActive", ctx).Return(expected, nil)

		svc := NewBoxCatalogService(mockRepo)
		got, err := svc.GetActive(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		mockRepo := new(mocks.MockBoxCatalogRepositoryInterface)
		mockRepo.On("GetActive", ctx).Return(nil, errors.New("connection refused"))

		svc := NewBoxCatalogService(mockRepo)
		got, err := svc.GetActive(ctx)

		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("nil repository", func(t *testing.T) {
		svc := NewBoxCatalogService(nil)
		_, err := svc.GetActive(ctx)
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}

func TestBoxCatalogService_Create(t *testing.T) {
	ctx := context.Background()
	catalog := model.DefaultBoxCatalog()

	t.Run("persists valid catalog", func(t *testing.T) {
		mockRepo := new(mocks.MockBoxCatalogRepositoryInterface)
		expected := &repository.BoxCatalogConfig{Boxes: catalog, Active: true, Version: 2}
		mockRepo.On("Create", ctx, catalog, "ops@munchbox.io").Return(expected, nil)

		svc := NewBoxCatalogService(mockRepo)
		got, err := svc.Create(ctx, catalog, "ops@munchbox.io")

		require.NoError(t, err)
		assert.Equal(t, expected, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects invalid catalog without touching repository", func(t *testing.T) {
		mockRepo := new(mocks.MockBoxCatalogRepositoryInterface)

		svc := NewBoxCatalogService(mockRepo)
		_, err := svc.Create(ctx, model.BoxCatalog{}, "ops@munchbox.io")

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("nil repository", func(t *testing.T) {
		svc := NewBoxCatalogService(nil)
		_, err := svc.Create(ctx, catalog, "system")
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}

func TestBoxCatalogService_Update(t *testing.T) {
	ctx := context.Background()
	catalog := model.DefaultBoxCatalog()
	id := primitive.NewObjectID()

	t.Run("persists valid catalog", func(t *testing.T) {
		mockRepo := new(mocks.MockBoxCatalogRepositoryInterface)
		expected := &repository.BoxCatalogConfig{ID: id, Boxes: catalog, Active: true, Version: 3}
		mockRepo.On("Update", ctx, id, catalog, "ops@munchbox.io").Return(expected, nil)

		svc := NewBoxCatalogService(mockRepo)
		got, err := svc.Update(ctx, id, catalog, "ops@munchbox.io")

		require.NoError(t, err)
		assert.Equal(t, expected, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects invalid catalog", func(t *testing.T) {
		mockRepo := new(mocks.MockBoxCatalogRepositoryInterface)

		svc := NewBoxCatalogService(mockRepo)
		_, err := svc.Update(ctx, id, model.BoxCatalog{catalog[0]}, "ops@munchbox.io")

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBoxCatalogService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns versions", func(t *testing.T) {
		mockRepo := new(mocks.MockBoxCatalogRepositoryInterface)
		expected := []repository.BoxCatalogConfig{
			{Version: 3, Active: true},
			{Version: 2},
		}
		mockRepo.On("List", ctx, 2).Return(expected, nil)

		svc := NewBoxCatalogService(mockRepo)
		got, err := svc.List(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("nil repository", func(t *testing.T) {
		svc := NewBoxCatalogService(nil)
		_, err := svc.List(ctx, 10)
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}

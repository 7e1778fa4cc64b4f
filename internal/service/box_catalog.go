package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/munchbox/shipment-service/internal/domain/model"
	"github.com/munchbox/shipment-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the catalog repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// BoxCatalogService provides access to the versioned box catalog configuration.
type BoxCatalogService interface {
	GetActive(ctx context.Context) (*repository.BoxCatalogConfig, error)
	Create(ctx context.Context, catalog model.BoxCatalog, createdBy string) (*repository.BoxCatalogConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, catalog model.BoxCatalog, updatedBy string) (*repository.BoxCatalogConfig, error)
	List(ctx context.Context, limit int) ([]repository.BoxCatalogConfig, error)
}

// BoxCatalogServiceImpl implements BoxCatalogService.
type BoxCatalogServiceImpl struct {
	catalogRepo repository.BoxCatalogRepositoryInterface
}

// NewBoxCatalogService creates a new box catalog service.
func NewBoxCatalogService(catalogRepo repository.BoxCatalogRepositoryInterface) BoxCatalogService {
	return &BoxCatalogServiceImpl{catalogRepo: catalogRepo}
}

func (s *BoxCatalogServiceImpl) GetActive(ctx context.Context) (*repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.GetActive(ctx)
}

func (s *BoxCatalogServiceImpl) Create(ctx context.Context, catalog model.BoxCatalog, createdBy string) (*repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}
	return s.catalogRepo.Create(ctx, catalog, createdBy)
}

func (s *BoxCatalogServiceImpl) Update(ctx context.Context, id primitive.ObjectID, catalog model.BoxCatalog, updatedBy string) (*repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}
	return s.catalogRepo.Update(ctx, id, catalog, updatedBy)
}

func (s *BoxCatalogServiceImpl) List(ctx context.Context, limit int) ([]repository.BoxCatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.List(ctx, limit)
}

// ValidateCatalog checks the structural invariants a box catalog must hold:
// at least one category, strictly ascending weight and packet ceilings, and
// an unbounded last entry so every shipment resolves to some box.
func ValidateCatalog(catalog model.BoxCatalog) error {
	if len(catalog) == 0 {
		return errors.New("catalog must contain at least one box category")
	}

	for i, box := range catalog {
		if box.ID == "" {
			return fmt.Errorf("box at index %d has no id", i)
		}
		if box.MaxWeightGrams <= 0 || box.MaxPackets <= 0 {
			return fmt.Errorf("box %q has non-positive ceilings", box.ID)
		}
		if box.OverheadWeightGrams < 0 {
			return fmt.Errorf("box %q has negative overhead weight", box.ID)
		}
		if i > 0 {
			prev := catalog[i-1]
			if box.MaxWeightGrams <= prev.MaxWeightGrams {
				return fmt.Errorf("box %q weight ceiling must exceed %q", box.ID, prev.ID)
			}
			if box.MaxPackets <= prev.MaxPackets {
				return fmt.Errorf("box %q packet ceiling must exceed %q", box.ID, prev.ID)
			}
		}
	}

	last := catalog[len(catalog)-1]
	if last.MaxWeightGrams != model.UnboundedCeiling {
		return fmt.Errorf("last box %q must have an unbounded weight ceiling", last.ID)
	}
	if last.MaxPackets != model.UnboundedCeiling {
		return fmt.Errorf("last box %q must have an unbounded packet ceiling", last.ID)
	}

	return nil
}

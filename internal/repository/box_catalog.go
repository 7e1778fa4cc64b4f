package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/munchbox/shipment-service/internal/domain/model"
)

// BoxCatalogConfig is a versioned box catalog document. Exactly one
// configuration is active at a time; replaced configurations stay around as
// history so past shipment decisions remain explainable.
type BoxCatalogConfig struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Boxes     model.BoxCatalog   `bson:"boxes" json:"boxes"`
	Active    bool               `bson:"active" json:"active"`
	Version   int                `bson:"version" json:"version"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string             `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// BoxCatalogRepository provides persistence for box catalog configurations.
type BoxCatalogRepository struct {
	collection *mongo.Collection
}

// NewBoxCatalogRepository creates a new box catalog repository.
func NewBoxCatalogRepository(db *MongoDB) *BoxCatalogRepository {
	return &BoxCatalogRepository{collection: db.BoxCatalogs}
}

// GetActive returns the active box catalog configuration, or nil when none exists.
func (r *BoxCatalogRepository) GetActive(ctx context.Context) (*BoxCatalogConfig, error) {
	var config BoxCatalogConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create deactivates the current configuration and inserts the given catalog
// as the new active version.
func (r *BoxCatalogRepository) Create(ctx context.Context, catalog model.BoxCatalog, createdBy string) (*BoxCatalogConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := BoxCatalogConfig{
		ID:        primitive.NewObjectID(),
		Boxes:     catalog,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
	}

	if _, err := r.collection.InsertOne(ctx, config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Update replaces the boxes of an existing configuration in place, bumping
// its version.
func (r *BoxCatalogRepository) Update(ctx context.Context, id primitive.ObjectID, catalog model.BoxCatalog, updatedBy string) (*BoxCatalogConfig, error) {
	var current BoxCatalogConfig
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current); err != nil {
		return nil, err
	}

	set := bson.M{
		"boxes":      catalog,
		"updated_at": time.Now(),
		"version":    current.Version + 1,
	}
	if updatedBy != "" {
		set["updated_by"] = updatedBy
	}

	var config BoxCatalogConfig
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns catalog configurations newest first, optionally limited.
func (r *BoxCatalogRepository) List(ctx context.Context, limit int) ([]BoxCatalogConfig, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []BoxCatalogConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}

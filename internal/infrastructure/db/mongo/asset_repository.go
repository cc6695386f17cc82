package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/assetvault/inventory-system/internal/core/domain"
)

const assetsCollection = "assets"

type AssetRepository struct {
	coll *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{coll: db.Collection(assetsCollection)}
}

type assetDoc struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	CategoryID    string    `bson:"category_id"`
	DepartmentID  string    `bson:"department_id"`
	DatePurchased time.Time `bson:"date_purchased"`
	Cost          *float64  `bson:"cost,omitempty"`
	CreatedBy     string    `bson:"created_by"`
	CreatedAt     time.Time `bson:"created_at"`
}

func (r *AssetRepository) Insert(ctx context.Context, asset *domain.Asset) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := assetDoc{
		ID:            asset.ID,
		Name:          asset.Name,
		CategoryID:    asset.CategoryID,
		DepartmentID:  asset.DepartmentID,
		DatePurchased: asset.DatePurchased,
		Cost:          asset.Cost,
		CreatedBy:     asset.CreatedBy,
		CreatedAt:     asset.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// List returns assets ordered by created_at descending. A non-empty filter
// scopes the query to rows created by that user.
func (r *AssetRepository) List(ctx context.Context, filter domain.RowFilter) ([]domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if !filter.Unrestricted() {
		query["created_by"] = filter.CreatedBy
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer cursor.Close(ctx)

	var assets []domain.Asset
	for cursor.Next(ctx) {
		var doc assetDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode asset: %w", err)
		}
		assets = append(assets, domain.Asset{
			ID:            doc.ID,
			Name:          doc.Name,
			CategoryID:    doc.CategoryID,
			DepartmentID:  doc.DepartmentID,
			DatePurchased: doc.DatePurchased,
			Cost:          doc.Cost,
			CreatedBy:     doc.CreatedBy,
			CreatedAt:     doc.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// EnsureIndexes creates the creator index used by ownership-scoped reads.
func (r *AssetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

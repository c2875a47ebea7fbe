package store

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/catalog"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const productCollectionName = "products"

// MongoSource reads the storefront's products collection.
type MongoSource struct {
	collection *mongo.Collection
}

var _ catalog.Source = (*MongoSource)(nil)

func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{collection: db.Collection(productCollectionName)}
}

// categoryFilter matches category names case-insensitively, treating runs
// of spaces, dashes and underscores as one separator.
func categoryFilter(category string) bson.M {
	want := catalog.NormalizeCategory(category)
	if want == "" {
		return bson.M{}
	}
	words := strings.Fields(want)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	pattern := `^\s*` + strings.Join(words, `[\s_-]+`) + `\s*$`
	return bson.M{"category": primitive.Regex{Pattern: pattern, Options: "i"}}
}

func (s *MongoSource) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})

	cursor, err := s.collection.Find(ctx, categoryFilter(category), findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoProduct
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for i := range docs {
		products = append(products, docs[i].toDomain())
	}
	return products, nil
}

// Import inserts products, optionally clearing the collection first.
func (s *MongoSource) Import(ctx context.Context, products []models.Product, truncate bool) error {
	if truncate {
		result, err := s.collection.DeleteMany(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("failed to clear products: %w", err)
		}
		log.Printf("Deleted %d products", result.DeletedCount)
	}
	if len(products) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, fromDomain(p))
	}
	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}
	log.Printf("Inserted %d products", len(result.InsertedIDs))
	return nil
}

func (s *MongoSource) Ping(ctx context.Context) error {
	return s.collection.Database().Client().Ping(ctx, readpref.Primary())
}

func (s *MongoSource) Close() error {
	return s.collection.Database().Client().Disconnect(context.Background())
}

package store

import (
	"context"
	"fmt"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/catalog"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/config"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
)

// Backend is a product source the service can also health-check, seed and close.
type Backend interface {
	catalog.Source
	Import(ctx context.Context, products []models.Product, truncate bool) error
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Backend = (*MemorySource)(nil)
	_ Backend = (*PostgresSource)(nil)
	_ Backend = (*MongoSource)(nil)
)

// NewBackend constructs a Backend by kind: "postgres", "mongo" or "memory".
// For memory, path names a JSON catalog file; it is ignored otherwise.
func NewBackend(kind, path string) (Backend, error) {
	switch kind {
	case "postgres", "postgresql", "pg":
		config.InitDB()
		return NewPostgresSource(config.CatalogGorm, config.CatalogDB), nil
	case "mongo", "mongodb":
		config.ConnectMongo()
		return NewMongoSource(config.MongoDB), nil
	case "memory", "mem":
		if path == "" {
			return NewMemorySource(nil), nil
		}
		products, err := LoadProductsFile(path)
		if err != nil {
			return nil, err
		}
		return NewMemorySource(products), nil
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}

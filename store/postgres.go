package store

import (
	"context"
	"fmt"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/catalog"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

// normalisedCategory mirrors catalog.NormalizeCategory in SQL.
const normalisedCategory = `LOWER(TRIM(REGEXP_REPLACE(p.category, '[-_[:space:]]+', ' ', 'g')))`

// PostgresSource reads products from the products table; product_info and
// images are JSONB columns.
type PostgresSource struct {
	db   *gorm.DB
	pool *pgxpool.Pool
}

var _ catalog.Source = (*PostgresSource)(nil)

// NewPostgresSource wraps an open GORM handle; pool is used for health checks
// and may be nil.
func NewPostgresSource(db *gorm.DB, pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db, pool: pool}
}

func (s *PostgresSource) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	conditions := "TRUE"
	args := []interface{}{}
	if want := catalog.NormalizeCategory(category); want != "" {
		conditions = normalisedCategory + " = ?"
		args = append(args, want)
	}

	query := fmt.Sprintf(`
		SELECT
			p.id::text AS id,
			p.name,
			p.category,
			COALESCE(p.sub_category, '') AS sub_category,
			COALESCE(p.price, 0)::float8 AS price,
			p.final_price::float8 AS final_price,
			COALESCE(p.discount, 0)::float8 AS discount,
			COALESCE(p.images, '[]'::jsonb) AS images,
			COALESCE(p.product_info, '{}'::jsonb) AS product_info,
			p.created_at
		FROM products p
		WHERE %s
		ORDER BY p.created_at DESC, p.id ASC
	`, conditions)

	products := make([]models.Product, 0)
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

// Import creates the products table if needed and inserts products in batches.
// Ids that are not UUIDs (e.g. Mongo ObjectIDs from an export) are regenerated.
func (s *PostgresSource) Import(ctx context.Context, products []models.Product, truncate bool) error {
	rows := make([]models.Product, len(products))
	copy(rows, products)
	for i := range rows {
		if _, err := uuid.Parse(rows[i].ID); err != nil {
			rows[i].ID = ""
		}
	}

	db := s.db.WithContext(ctx)
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("failed to migrate products table: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if truncate {
			if err := tx.Exec("TRUNCATE TABLE products").Error; err != nil {
				return fmt.Errorf("failed to truncate products: %w", err)
			}
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&rows, 200).Error; err != nil {
			return fmt.Errorf("failed to insert products: %w", err)
		}
		return nil
	})
}

func (s *PostgresSource) Ping(ctx context.Context) error {
	if s.pool != nil {
		return s.pool.Ping(ctx)
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *PostgresSource) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

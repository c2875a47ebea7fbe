package services

import (
	"context"
	"errors"
	"log"
	"time"

	catalog_cache "github.com/digitalbuddiesspune/stylishtouches-sub000/cache"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/catalog"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/middleware"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
)

// CatalogService answers storefront catalog queries through the snapshot cache
type CatalogService struct {
	engine       *catalog.Engine
	pageDefaults catalog.PageDefaults
	queryTimeout time.Duration
}

// CatalogOptions tunes pagination and store timeouts
type CatalogOptions struct {
	DefaultPageSize int
	MaxPageSize     int
	QueryTimeout    time.Duration
}

var catalogService *CatalogService

// InitCatalogService initializes the catalog service over source
func InitCatalogService(source catalog.Source, opts CatalogOptions) error {
	if source == nil {
		return errors.New("catalog source cannot be nil")
	}
	catalogService = NewCatalogService(source, opts)
	return nil
}

// GetCatalogService returns the initialized catalog service
func GetCatalogService() *CatalogService {
	return catalogService
}

// NewCatalogService creates a catalog service reading through the snapshot cache
func NewCatalogService(source catalog.Source, opts CatalogOptions) *CatalogService {
	defaults := catalog.DefaultPageDefaults
	if opts.DefaultPageSize > 0 {
		defaults.Limit = opts.DefaultPageSize
	}
	if opts.MaxPageSize > 0 {
		defaults.MaxLimit = opts.MaxPageSize
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 10 * time.Second
	}

	return &CatalogService{
		engine:       catalog.NewEngine(&cachedSource{next: source}),
		pageDefaults: defaults,
		queryTimeout: opts.QueryTimeout,
	}
}

// PageDefaults returns the pagination defaults used to parse requests
func (s *CatalogService) PageDefaults() catalog.PageDefaults {
	return s.pageDefaults
}

// QueryTimeout returns the per-request store timeout
func (s *CatalogService) QueryTimeout() time.Duration {
	return s.queryTimeout
}

// Products returns one page of products for the selection
func (s *CatalogService) Products(ctx context.Context, sel catalog.Selection) (catalog.PageResult, error) {
	page, err := s.engine.Products(ctx, sel)
	middleware.RecordCatalogQuery("products", err == nil)
	return page, err
}

// Facets returns the facet counts in response form
func (s *CatalogService) Facets(ctx context.Context, sel catalog.Selection) (*models.FacetsResponse, error) {
	result, err := s.engine.Facets(ctx, sel)
	middleware.RecordCatalogQuery("facets", err == nil)
	if err != nil {
		return nil, err
	}
	return BuildFacetsResponse(result), nil
}

// Categories lists the taxonomy with product counts
func (s *CatalogService) Categories(ctx context.Context) (*models.StorefrontCategoriesResponse, error) {
	counts, err := s.engine.CategoryCounts(ctx)
	middleware.RecordCatalogQuery("categories", err == nil)
	if err != nil {
		return nil, err
	}

	defs := catalog.Categories()
	response := &models.StorefrontCategoriesResponse{
		Categories:   make([]models.StorefrontCategory, 0, len(defs)),
		PriceBuckets: catalog.PriceBucketLabels(),
	}
	for i := range defs {
		def := &defs[i]
		facets := make([]string, 0, len(def.Dimensions))
		for _, d := range def.Dimensions {
			facets = append(facets, string(d))
		}
		response.Categories = append(response.Categories, models.StorefrontCategory{
			Name:              def.Name,
			Slug:              catalog.CategorySlug(def.Name),
			Facets:            facets,
			SubCategorySource: def.SubCategorySource(),
			ProductCount:      counts[def.Name],
		})
	}
	return response, nil
}

// BuildFacetsResponse maps engine facet counts onto the response fields.
// The four always-present maps are never nil.
func BuildFacetsResponse(result catalog.FacetResult) *models.FacetsResponse {
	counts := func(d catalog.Dimension) models.FacetCounts {
		if values, ok := result[d]; ok {
			return values
		}
		return nil
	}
	orEmpty := func(values models.FacetCounts) models.FacetCounts {
		if values == nil {
			return models.FacetCounts{}
		}
		return values
	}

	return &models.FacetsResponse{
		PriceBuckets:    orEmpty(counts(catalog.DimPriceRange)),
		Genders:         orEmpty(counts(catalog.DimGender)),
		Colors:          orEmpty(counts(catalog.DimColor)),
		SubCategories:   orEmpty(counts(catalog.DimSubCategory)),
		Brands:          counts(catalog.DimBrand),
		FrameShapes:     counts(catalog.DimFrameShape),
		FrameMaterials:  counts(catalog.DimFrameMaterial),
		FrameColors:     counts(catalog.DimFrameColor),
		Disposabilities: counts(catalog.DimDisposability),
	}
}

// cachedSource serves category snapshots from the in-process cache,
// filling it from the store on a miss.
type cachedSource struct {
	next catalog.Source
}

func (s *cachedSource) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	if products, ok := catalog_cache.GetSnapshot(category); ok {
		middleware.RecordSnapshotLookup(true)
		return products, nil
	}
	middleware.RecordSnapshotLookup(false)

	gen := catalog_cache.Generation()
	products, err := s.next.ListProducts(ctx, category)
	if err != nil {
		return nil, err
	}
	if !catalog_cache.StoreSnapshot(category, products, gen) {
		log.Printf("⚠️ catalog changed while loading %q, snapshot not cached", category)
	}
	return products, nil
}

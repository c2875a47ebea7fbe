// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

// StorefrontProductsResponse is the body of GET /products.
type StorefrontProductsResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// StorefrontCategory describes one catalog category and the filters it supports
type StorefrontCategory struct {
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Facets            []string `json:"facets"`
	SubCategorySource string   `json:"subCategorySource"`
	ProductCount      int      `json:"productCount"`
}

// StorefrontCategoriesResponse is the data payload of GET /categories.
type StorefrontCategoriesResponse struct {
	Categories   []StorefrontCategory `json:"categories"`
	PriceBuckets []string             `json:"priceBuckets"`
}

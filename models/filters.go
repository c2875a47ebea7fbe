// models/filters.go
package models

// FacetCounts maps an uppercased facet value to the number of matching products
type FacetCounts map[string]int

// FacetsResponse is the body of GET /products/facets.
// The first four maps are always present; the rest only for categories that use them.
type FacetsResponse struct {
	PriceBuckets    FacetCounts `json:"priceBuckets"`
	Genders         FacetCounts `json:"genders"`
	Colors          FacetCounts `json:"colors"`
	SubCategories   FacetCounts `json:"subCategories"`
	Brands          FacetCounts `json:"brands,omitempty"`
	FrameShapes     FacetCounts `json:"frameShapes,omitempty"`
	FrameMaterials  FacetCounts `json:"frameMaterials,omitempty"`
	FrameColors     FacetCounts `json:"frameColors,omitempty"`
	Disposabilities FacetCounts `json:"disposabilities,omitempty"`
}

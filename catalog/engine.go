package catalog

import (
	"context"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
)

// Source is the read-only product store. ListProducts returns every product
// of the category (case-insensitive), or the whole catalog for "", in a
// stable order that serves as the relevance ordering.
type Source interface {
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
}

// Engine answers storefront queries against a Source. Each query fetches its
// snapshot once and reuses it across filtering, faceting and sorting.
type Engine struct {
	source Source
}

// NewEngine creates an engine over source
func NewEngine(source Source) *Engine {
	return &Engine{source: source}
}

// Products returns the filtered, sorted page for sel. Unknown categories
// produce an empty page without touching the store.
func (e *Engine) Products(ctx context.Context, sel Selection) (PageResult, error) {
	def, ok := LookupCategory(sel.Category)
	if !ok {
		return Paginate(nil, sel.Page, sel.Limit), nil
	}

	snapshot, err := e.snapshot(ctx, def.Name)
	if err != nil {
		return PageResult{}, err
	}

	matched := Filter(snapshot, Compile(sel, ""))
	SortProducts(matched, def.Name, sel.Sort)
	return Paginate(matched, sel.Page, sel.Limit), nil
}

// Facets returns the facet counts for sel.
func (e *Engine) Facets(ctx context.Context, sel Selection) (FacetResult, error) {
	def, ok := LookupCategory(sel.Category)
	if !ok {
		return ComputeFacets(nil, sel), nil
	}

	snapshot, err := e.snapshot(ctx, def.Name)
	if err != nil {
		return nil, err
	}
	return ComputeFacets(snapshot, sel), nil
}

// CategoryCounts counts the catalog's products per taxonomy category.
// Products whose category is not in the taxonomy are not counted.
func (e *Engine) CategoryCounts(ctx context.Context) (map[string]int, error) {
	snapshot, err := e.snapshot(ctx, "")
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(taxonomy))
	for _, def := range taxonomy {
		counts[def.Name] = 0
	}
	for i := range snapshot {
		if def, ok := taxonomyIndex[NormalizeCategory(snapshot[i].Category)]; ok {
			counts[def.Name]++
		}
	}
	return counts, nil
}

func (e *Engine) snapshot(ctx context.Context, category string) ([]models.Product, error) {
	products, err := e.source.ListProducts(ctx, category)
	if err != nil {
		return nil, &StoreError{Op: "list products", Category: category, Err: err}
	}
	return products, nil
}

package catalog

import (
	"sync"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
)

// FacetResult maps a dimension to its value counts. Values are uppercased.
type FacetResult map[Dimension]map[string]int

// ComputeFacets counts, for every dimension of the selected category, the
// products that match all other active filters, grouped by their value for
// that dimension. Values with no products are omitted except price buckets,
// which are always listed so empty ones can be shown disabled.
func ComputeFacets(products []models.Product, sel Selection) FacetResult {
	result := make(FacetResult)

	def, ok := LookupCategory(sel.Category)
	if !ok {
		result[DimPriceRange] = emptyBucketCounts()
		return result
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, d := range def.Dimensions {
		wg.Add(1)
		go func(d Dimension) {
			defer wg.Done()
			counts := countDimension(products, Compile(sel, d), d)
			mu.Lock()
			defer mu.Unlock()
			result[d] = counts
		}(d)
	}
	wg.Wait()

	return result
}

func countDimension(products []models.Product, pred Predicate, d Dimension) map[string]int {
	counts := make(map[string]int)
	if d == DimPriceRange {
		counts = emptyBucketCounts()
	}

	for i := range products {
		p := &products[i]
		if !pred(p) {
			continue
		}
		key := normalizeValue(Value(p, d))
		if key == "" {
			continue
		}
		counts[key]++
	}
	return counts
}

func emptyBucketCounts() map[string]int {
	counts := make(map[string]int, len(priceBuckets))
	for _, b := range priceBuckets {
		counts[b.Label] = 0
	}
	return counts
}

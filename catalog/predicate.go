package catalog

import "github.com/digitalbuddiesspune/stylishtouches-sub000/models"

// Predicate decides whether a product belongs to a filtered set.
type Predicate func(p *models.Product) bool

func matchNothing(*models.Product) bool { return false }

type attributeCheck struct {
	dim  Dimension
	want string
}

// Compile turns sel into a predicate over products. The relaxed dimension is
// left out of the filter; pass "" to apply every selected dimension.
// Selections on dimensions the category does not use are ignored.
func Compile(sel Selection, relaxed Dimension) Predicate {
	def, ok := LookupCategory(sel.Category)
	if !ok {
		return matchNothing
	}

	var (
		bucket    *PriceBucket
		checks    []attributeCheck
		wantedCat = NormalizeCategory(def.Name)
	)
	for _, d := range def.Dimensions {
		if d == relaxed {
			continue
		}
		want, set := sel.Filter(d)
		if !set {
			continue
		}
		if d == DimPriceRange {
			b, ok := LookupBucket(want)
			if !ok {
				return matchNothing
			}
			bucket = &b
			continue
		}
		checks = append(checks, attributeCheck{dim: d, want: normalizeValue(want)})
	}

	return func(p *models.Product) bool {
		if wantedCat != "" && NormalizeCategory(p.Category) != wantedCat {
			return false
		}
		if bucket != nil && !bucket.Contains(p.EffectivePrice()) {
			return false
		}
		for _, c := range checks {
			if normalizeValue(Value(p, c.dim)) != c.want {
				return false
			}
		}
		return true
	}
}

// Filter returns the products matching pred as a new slice; the input is
// never modified, so cached snapshots can be shared between requests.
func Filter(products []models.Product, pred Predicate) []models.Product {
	out := make([]models.Product, 0, len(products))
	for i := range products {
		if pred(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}

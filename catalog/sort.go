package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
)

type comparator func(a, b *models.Product) int

var sortKeyComparators = map[SortKey]comparator{
	SortKeySubCategory: compareSubCategory,
	SortKeyGender:      compareGender,
}

// SortProducts orders products in place: the category's sort keys first,
// then the user's mode. The sort is stable, so relevance keeps store order.
func SortProducts(products []models.Product, category string, mode SortMode) {
	var chain []comparator
	if def, ok := LookupCategory(category); ok {
		for _, key := range def.SortKeys {
			chain = append(chain, sortKeyComparators[key])
		}
	}
	if c := modeComparator(mode); c != nil {
		chain = append(chain, c)
	}
	if len(chain) == 0 {
		return
	}

	slices.SortStableFunc(products, func(a, b models.Product) int {
		for _, c := range chain {
			if r := c(&a, &b); r != 0 {
				return r
			}
		}
		return 0
	})
}

func modeComparator(mode SortMode) comparator {
	switch mode {
	case SortNewest:
		return func(a, b *models.Product) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case SortPriceAsc:
		return func(a, b *models.Product) int { return cmp.Compare(a.EffectivePrice(), b.EffectivePrice()) }
	case SortPriceDesc:
		return func(a, b *models.Product) int { return cmp.Compare(b.EffectivePrice(), a.EffectivePrice()) }
	default:
		return nil
	}
}

// empty sub-categories sort last
func compareSubCategory(a, b *models.Product) int {
	va := normalizeValue(Value(a, DimSubCategory))
	vb := normalizeValue(Value(b, DimSubCategory))
	switch {
	case va == vb:
		return 0
	case va == "":
		return 1
	case vb == "":
		return -1
	}
	return strings.Compare(va, vb)
}

func compareGender(a, b *models.Product) int {
	return cmp.Compare(genderRank(a), genderRank(b))
}

func genderRank(p *models.Product) int {
	switch normalizeValue(Value(p, DimGender)) {
	case "MEN":
		return 1
	case "WOMEN":
		return 2
	case "UNISEX":
		return 3
	default:
		return 4
	}
}

// Package catalog implements the storefront's faceted product search:
// compiling filter selections into predicates, counting facet values with
// each dimension relaxed, and the category-aware sort and pagination.
package catalog

import (
	"strings"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
)

// Dimension is a filterable product attribute.
type Dimension string

const (
	DimPriceRange    Dimension = "priceRange"
	DimGender        Dimension = "gender"
	DimColor         Dimension = "color"
	DimSubCategory   Dimension = "subCategory"
	DimBrand         Dimension = "brand"
	DimFrameShape    Dimension = "frameShape"
	DimFrameMaterial Dimension = "frameMaterial"
	DimFrameColor    Dimension = "frameColor"
	DimDisposability Dimension = "disposability"
)

// AllDimensions lists every dimension in response order.
var AllDimensions = []Dimension{
	DimPriceRange,
	DimGender,
	DimColor,
	DimSubCategory,
	DimBrand,
	DimFrameShape,
	DimFrameMaterial,
	DimFrameColor,
	DimDisposability,
}

// product_info keys backing the attribute dimensions
var attributeKeys = map[Dimension]string{
	DimGender:        "gender",
	DimColor:         "color",
	DimBrand:         "brand",
	DimFrameShape:    "frameShape",
	DimFrameMaterial: "frameMaterial",
	DimFrameColor:    "frameColor",
	DimDisposability: "disposability",
}

// SortKey is a category-level ordering applied before the user's sort mode.
type SortKey int

const (
	SortKeySubCategory SortKey = iota + 1
	SortKeyGender
)

// CategorySpec is one row of the taxonomy table.
type CategorySpec struct {
	Name string
	// Dimensions that can be filtered and faceted in this category.
	Dimensions []Dimension
	// SubCategoryAttr names the product_info key that backs subCategory.
	// Empty means the top-level subCategory field.
	SubCategoryAttr string
	SortKeys        []SortKey
}

// Applies reports whether d is a filter dimension of the category.
func (s *CategorySpec) Applies(d Dimension) bool {
	for _, dim := range s.Dimensions {
		if dim == d {
			return true
		}
	}
	return false
}

// SubCategorySource names where subCategory values are read from.
func (s *CategorySpec) SubCategorySource() string {
	if s.SubCategoryAttr == "" {
		return "subCategory"
	}
	return "product_info." + s.SubCategoryAttr
}

var eyewearDimensions = []Dimension{
	DimPriceRange, DimGender, DimSubCategory, DimBrand,
	DimFrameShape, DimFrameMaterial, DimFrameColor,
}

var taxonomy = []CategorySpec{
	{Name: "Eyeglasses", Dimensions: eyewearDimensions},
	{Name: "Sunglasses", Dimensions: eyewearDimensions},
	{Name: "Computer Glasses", Dimensions: eyewearDimensions},
	{
		Name:       "Contact Lenses",
		Dimensions: []Dimension{DimPriceRange, DimColor, DimSubCategory, DimBrand, DimDisposability},
	},
	{
		Name:            "Accessories",
		Dimensions:      []Dimension{DimPriceRange, DimSubCategory, DimBrand},
		SubCategoryAttr: "accessoryType",
		SortKeys:        []SortKey{SortKeySubCategory},
	},
	{
		Name:            "Bags",
		Dimensions:      []Dimension{DimPriceRange, DimGender, DimSubCategory, DimBrand},
		SubCategoryAttr: "bagType",
		SortKeys:        []SortKey{SortKeySubCategory, SortKeyGender},
	},
	{
		Name:            "Shoes",
		Dimensions:      []Dimension{DimPriceRange, DimSubCategory, DimBrand},
		SubCategoryAttr: "shoeType",
	},
	{
		Name:            "Skincare",
		Dimensions:      []Dimension{DimPriceRange, DimSubCategory, DimBrand},
		SubCategoryAttr: "skincareType",
	},
}

// shopAll is the whole-catalog scope used when no category is requested.
var shopAll = CategorySpec{Dimensions: AllDimensions}

var taxonomyIndex = func() map[string]*CategorySpec {
	index := make(map[string]*CategorySpec, len(taxonomy))
	for i := range taxonomy {
		index[NormalizeCategory(taxonomy[i].Name)] = &taxonomy[i]
	}
	return index
}()

// NormalizeCategory folds case and slug separators so that
// "Contact Lenses", "contact-lenses" and "CONTACT_LENSES" compare equal.
func NormalizeCategory(name string) string {
	name = strings.ToLower(name)
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}

// CategorySlug is the URL form of a category name.
func CategorySlug(name string) string {
	return strings.ReplaceAll(NormalizeCategory(name), " ", "-")
}

// LookupCategory resolves a requested category. The empty name is the
// whole catalog; names missing from the taxonomy are reported as unknown.
func LookupCategory(name string) (*CategorySpec, bool) {
	if strings.TrimSpace(name) == "" {
		return &shopAll, true
	}
	def, ok := taxonomyIndex[NormalizeCategory(name)]
	return def, ok
}

// Categories returns the taxonomy table in display order.
func Categories() []CategorySpec {
	out := make([]CategorySpec, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// Value returns the product's raw value for d, or "" when it has none.
// subCategory is resolved through the product's own category entry.
func Value(p *models.Product, d Dimension) string {
	switch d {
	case DimPriceRange:
		if bucket, ok := BucketFor(p.EffectivePrice()); ok {
			return bucket.Label
		}
		return ""
	case DimSubCategory:
		if def, ok := taxonomyIndex[NormalizeCategory(p.Category)]; ok && def.SubCategoryAttr != "" {
			if v := p.ProductInfo.Get(def.SubCategoryAttr); v != "" {
				return v
			}
		}
		return strings.TrimSpace(p.SubCategory)
	default:
		return p.ProductInfo.Get(attributeKeys[d])
	}
}

func normalizeValue(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}

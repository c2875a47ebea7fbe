package catalog

import (
	"net/url"
	"testing"
)

func TestParseSelection(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
		wantSort  SortMode
	}{
		{"defaults", "", 1, 18, SortRelevance},
		{"explicit", "page=3&limit=24&sort=price-desc", 3, 24, SortPriceDesc},
		{"non-numeric", "page=abc&limit=x", 1, 18, SortRelevance},
		{"clamped low", "page=-4&limit=0", 1, 1, SortRelevance},
		{"limit capped", "limit=5000", 1, 100, SortRelevance},
		{"unknown sort", "sort=popular", 1, 18, SortRelevance},
		{"sort case", "sort=NEWEST", 1, 18, SortNewest},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			if err != nil {
				t.Fatalf("bad query: %v", err)
			}
			sel := ParseSelection(values, DefaultPageDefaults)
			if sel.Page != tc.wantPage || sel.Limit != tc.wantLimit || sel.Sort != tc.wantSort {
				t.Errorf("expected page=%d limit=%d sort=%s, got page=%d limit=%d sort=%s",
					tc.wantPage, tc.wantLimit, tc.wantSort, sel.Page, sel.Limit, sel.Sort)
			}
		})
	}
}

func TestParseSelection_Filters(t *testing.T) {
	values, _ := url.ParseQuery("category=%20Contact%20Lenses%20&color=Blue&gender=&brand=+Acuvue+&priceRange=5000+&unknown=x")
	sel := ParseSelection(values, PageDefaults{})

	if sel.Category != "Contact Lenses" {
		t.Errorf("unexpected category %q", sel.Category)
	}
	if v, ok := sel.Filter(DimColor); !ok || v != "Blue" {
		t.Errorf("color: got %q %v", v, ok)
	}
	if v, ok := sel.Filter(DimBrand); !ok || v != "Acuvue" {
		t.Errorf("brand should be trimmed, got %q", v)
	}
	if _, ok := sel.Filter(DimGender); ok {
		t.Error("empty gender should be unset")
	}
	if v, _ := sel.Filter(DimPriceRange); v != "5000" {
		t.Errorf("priceRange: got %q", v)
	}
	if _, ok := LookupBucket("5000"); !ok {
		t.Error("decoded 5000+ should still resolve")
	}
	if len(sel.Filters) != 3 {
		t.Errorf("unexpected filters %v", sel.Filters)
	}
	if sel.Limit != DefaultPageDefaults.Limit {
		t.Errorf("zero defaults should fall back to %d, got %d", DefaultPageDefaults.Limit, sel.Limit)
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"Contact Lenses":      "contact lenses",
		"contact-lenses":      "contact lenses",
		"CONTACT_LENSES":      "contact lenses",
		"  computer  glasses": "computer glasses",
	}
	for in, want := range cases {
		if got := NormalizeCategory(in); got != want {
			t.Errorf("%q: expected %q, got %q", in, want, got)
		}
	}

	if got := CategorySlug("Computer Glasses"); got != "computer-glasses" {
		t.Errorf("unexpected slug %q", got)
	}
}

func TestLookupCategory(t *testing.T) {
	if def, ok := LookupCategory(""); !ok || len(def.Dimensions) != len(AllDimensions) {
		t.Error("empty category should be the whole catalog")
	}
	if def, ok := LookupCategory("sunglasses"); !ok || def.Name != "Sunglasses" {
		t.Error("sunglasses should resolve")
	}
	if _, ok := LookupCategory("Watches"); ok {
		t.Error("watches is not in the taxonomy")
	}

	def, _ := LookupCategory("Bags")
	if def.SubCategorySource() != "product_info.bagType" || !def.Applies(DimGender) || def.Applies(DimColor) {
		t.Errorf("unexpected bags def %+v", def)
	}
	def, _ = LookupCategory("Eyeglasses")
	if def.SubCategorySource() != "subCategory" {
		t.Errorf("eyeglasses should use the top-level field, got %s", def.SubCategorySource())
	}
}
